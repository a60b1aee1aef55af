package strfmt

import (
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// timeBufSize is the fixed capacity of a TimeFormatter's scratch buffer.
// A rendered timestamp that would not fit is reported as an empty view.
const timeBufSize = 128

// DefaultTimePattern is the strftime pattern used when callers have no
// opinion: whole-second local time with the numeric UTC offset.
const DefaultTimePattern = "%Y-%m-%dT%H:%M:%S%z"

const iso8601Pattern = "%Y-%m-%dT%H:%M:%S%z:"

// TimeFormatter renders timestamps into a reusable fixed-capacity scratch
// buffer. Every Format/ISO8601/Microseconds result is a view into that
// buffer: it stays valid only until the next call on the same formatter,
// and must be copied before then if kept.
//
// A TimeFormatter is meant to be per execution context (one per goroutine,
// or one per worker owning it). It is not safe for concurrent use.
//
// Formatting failure is reported as an empty view, never as an error: the
// typical call sites are logging and diagnostics paths where a missing
// timestamp beats a panic or an error branch.
type TimeFormatter struct {
	buf [timeBufSize]byte
	now func() time.Time
}

// NewTimeFormatter returns a formatter using the system clock for the Now
// convenience methods.
func NewTimeFormatter() *TimeFormatter {
	return &TimeFormatter{now: time.Now}
}

// NewTimeFormatterWithClock returns a formatter whose Now methods read the
// supplied clock. A nil clock falls back to time.Now.
func NewTimeFormatterWithClock(now func() time.Time) *TimeFormatter {
	return &TimeFormatter{now: now}
}

// Format renders t through the C-strftime pattern into the scratch buffer
// and returns a view over the written bytes. The pattern is passed through
// verbatim; strfmt neither validates nor extends the strftime grammar.
// Rendering happens in t's own location. Output that would exceed the
// scratch capacity yields an empty view.
func (f *TimeFormatter) Format(t time.Time, pattern string) []byte {
	out := strftime.AppendFormat(f.buf[:0], pattern, t)
	if len(out) > timeBufSize {
		// The append outgrew the scratch buffer and reallocated; the
		// result no longer lives in f.buf, so report failure.
		return nil
	}
	return out
}

// ISO8601 renders t as YYYY-MM-DDTHH:MM:SS±HH:MM. The underlying pattern
// produces a bare ±HHMM offset followed by a literal colon; the final three
// bytes are then rotated in place to move that colon inside the offset.
// This is safe because the %z field is always exactly five bytes wide.
func (f *TimeFormatter) ISO8601(t time.Time) []byte {
	out := f.Format(t, iso8601Pattern)
	if n := len(out); n >= 3 {
		out[n-3], out[n-2], out[n-1] = out[n-1], out[n-3], out[n-2]
	}
	return out
}

// Microseconds renders t as YYYY-MM-DDTHH:MM:SS.UUUUUU, where UUUUUU is the
// sub-second remainder truncated to microseconds, zero-padded to six
// digits. When the whole-second rendering already failed, the microsecond
// step is skipped and the empty view is returned.
func (f *TimeFormatter) Microseconds(t time.Time) []byte {
	out := f.Format(t, "%Y-%m-%dT%H:%M:%S")
	if len(out) == 0 {
		return nil
	}
	return appendMicros(out, t.Nanosecond()/1000)
}

// appendMicros appends '.' plus the six-digit microsecond count, bounds
// checked against the remaining scratch capacity.
func appendMicros(out []byte, us int) []byte {
	if len(out)+7 > timeBufSize {
		return nil
	}
	var digits [6]byte
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + us%10)
		us /= 10
	}
	out = append(out, '.')
	return append(out, digits[:]...)
}

// Now renders the current time of the formatter's clock through pattern.
func (f *TimeFormatter) Now(pattern string) []byte {
	return f.Format(f.nowTime(), pattern)
}

// NowISO8601 renders the current time of the formatter's clock as ISO 8601.
func (f *TimeFormatter) NowISO8601() []byte {
	return f.ISO8601(f.nowTime())
}

// NowMicroseconds renders the current time of the formatter's clock with
// microsecond precision.
func (f *TimeFormatter) NowMicroseconds() []byte {
	return f.Microseconds(f.nowTime())
}

func (f *TimeFormatter) nowTime() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}
