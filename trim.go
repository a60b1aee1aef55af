package strfmt

// Trim selects which ends of a sequence are candidates for whitespace
// removal. Values combine as a bitset: TrimAll == TrimLeft|TrimRight.
type Trim uint8

const (
	// TrimLeft strips leading whitespace.
	TrimLeft Trim = 1 << iota
	// TrimRight strips trailing whitespace.
	TrimRight

	// TrimNone leaves both ends untouched.
	TrimNone Trim = 0
	// TrimAll strips whitespace from both ends.
	TrimAll = TrimLeft | TrimRight
)

// TrimBytes removes a maximal run of whitespace from the ends selected by
// mode, mutating b's backing array and returning the narrowed slice.
// Interior whitespace is untouched. When the left boundary moves, the kept
// range is shifted to offset 0 with a single forward copy, so the result
// always starts at b's first element. Input consisting entirely of
// whitespace yields b[:0].
func TrimBytes(b []byte, mode Trim) []byte {
	if len(b) == 0 || mode == TrimNone {
		return b
	}

	start := 0
	if mode&TrimLeft != 0 {
		for start < len(b) && isSpace(b[start]) {
			start++
		}
		if start == len(b) {
			// All whitespace; nothing to keep or shift.
			return b[:0]
		}
	}
	end := len(b)
	if mode&TrimRight != 0 {
		for end > start && isSpace(b[end-1]) {
			end--
		}
	}
	if start == 0 {
		return b[:end]
	}
	n := copy(b, b[start:end])
	return b[:n]
}

// TrimString is the view form of TrimBytes: it re-slices s without copying.
// All-whitespace input returns the zero-length view anchored at the
// original start.
func TrimString(s string, mode Trim) string {
	if len(s) == 0 || mode == TrimNone {
		return s
	}

	start := 0
	if mode&TrimLeft != 0 {
		for start < len(s) && isSpace(s[start]) {
			start++
		}
		if start == len(s) {
			return s[:0]
		}
	}
	end := len(s)
	if mode&TrimRight != 0 {
		for end > start && isSpace(s[end-1]) {
			end--
		}
	}
	return s[start:end]
}
