package strfmt

import (
	"errors"
	"fmt"
)

// ByteFormat selects how each input byte is rendered by EncodeBytes.
type ByteFormat int

const (
	// FormatRaw renders each byte as the single identical output character.
	FormatRaw ByteFormat = iota
	// FormatHex renders each byte as two lowercase hex digits, most
	// significant nibble first.
	FormatHex
)

// ErrByteFormat is returned by EncodeBytes for a format value outside the
// recognized enumeration. This is a caller-configuration error, not a
// runtime condition.
var ErrByteFormat = errors.New("strfmt: unsupported byte format")

const hexDigits = "0123456789abcdef"

// fixedWriter appends into a buffer of fixed capacity and rejects any write
// that would exceed it. The rejection is sticky so a sequence of writes can
// be checked once at the end.
type fixedWriter struct {
	buf      []byte
	overflow bool
}

func newFixedWriter(capacity int) fixedWriter {
	return fixedWriter{buf: make([]byte, 0, capacity)}
}

func (w *fixedWriter) writeByte(c byte) {
	if len(w.buf)+1 > cap(w.buf) {
		w.overflow = true
		return
	}
	w.buf = append(w.buf, c)
}

func (w *fixedWriter) writeHexByte(c byte) {
	if len(w.buf)+2 > cap(w.buf) {
		w.overflow = true
		return
	}
	w.buf = append(w.buf, hexDigits[c>>4], hexDigits[c&0x0f])
}

func (w *fixedWriter) writeString(s string) {
	if len(w.buf)+len(s) > cap(w.buf) {
		w.overflow = true
		return
	}
	w.buf = append(w.buf, s...)
}

// EncodeBytes renders input under format with separator between consecutive
// rendered units (no trailing separator). Empty input yields "". An
// unrecognized format fails with ErrByteFormat.
func EncodeBytes(input []byte, format ByteFormat, separator string) (string, error) {
	var elemSize int
	switch format {
	case FormatRaw:
		elemSize = 1
	case FormatHex:
		elemSize = 2
	default:
		return "", fmt.Errorf("%w: %d", ErrByteFormat, format)
	}
	if len(input) == 0 {
		return "", nil
	}
	if format == FormatRaw && separator == "" {
		// Fast path: the output is the input reinterpreted as text.
		return string(input), nil
	}
	return encodeSlow(input, elemSize, format, separator)
}

// encodeSlow is the generic path. The buffer is sized for every unit plus a
// separator after each one, including the last; the surplus separator is
// trimmed after the loop. Every write is bounds-checked against that
// precomputed capacity.
func encodeSlow(input []byte, elemSize int, format ByteFormat, separator string) (string, error) {
	w := newFixedWriter(len(input)*elemSize + len(input)*len(separator))
	for _, c := range input {
		if format == FormatHex {
			w.writeHexByte(c)
		} else {
			w.writeByte(c)
		}
		w.writeString(separator)
	}
	if w.overflow {
		return "", errors.New("strfmt: encode buffer overflow")
	}
	return string(w.buf[:len(w.buf)-len(separator)]), nil
}

// SparsedString returns s with delimiter inserted between consecutive
// characters. It is EncodeBytes(s, FormatRaw, delimiter) without the error
// surface, since raw rendering cannot fail.
func SparsedString(s, delimiter string) string {
	if s == "" || delimiter == "" {
		return s
	}
	out, _ := encodeSlow([]byte(s), 1, FormatRaw, delimiter)
	return out
}
