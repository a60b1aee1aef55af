package strfmt

// Terminate returns s guaranteed to end with c: unchanged when it already
// does, with c appended otherwise. The empty string gets c appended.
func Terminate(s string, c byte) string {
	if len(s) > 0 && s[len(s)-1] == c {
		return s
	}
	return s + string(c)
}

// TerminateBytes is the append form of Terminate. Like append, it may
// reallocate when b lacks spare capacity.
func TerminateBytes(b []byte, c byte) []byte {
	if len(b) > 0 && b[len(b)-1] == c {
		return b
	}
	return append(b, c)
}

// Coalesce returns the first non-empty value, or "" when every value is
// empty.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NextNonSpace returns the view of s past its leading whitespace. The view
// is empty for all-whitespace input.
func NextNonSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}
