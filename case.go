package strfmt

// Lowercase rewrites every ASCII uppercase byte in b to its lowercase form,
// in place and in one pass. Non-alphabetic bytes are untouched.
func Lowercase(b []byte) {
	for i, c := range b {
		b[i] = lowerTable[c]
	}
}

// Uppercase rewrites every ASCII lowercase byte in b to its uppercase form,
// in place and in one pass. Non-alphabetic bytes are untouched.
func Uppercase(b []byte) {
	for i, c := range b {
		b[i] = upperTable[c]
	}
}

// ToLower returns a copy of s with ASCII uppercase bytes lowercased.
func ToLower(s string) string {
	b := []byte(s)
	Lowercase(b)
	return string(b)
}

// ToUpper returns a copy of s with ASCII lowercase bytes uppercased.
func ToUpper(s string) string {
	b := []byte(s)
	Uppercase(b)
	return string(b)
}

// IsLowercased reports whether every byte of s is ASCII lowercase. The empty
// string is trivially lowercased.
func IsLowercased(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLower(s[i]) {
			return false
		}
	}
	return true
}

// IsUppercased reports whether every byte of s is ASCII uppercase. The empty
// string is trivially uppercased.
func IsUppercased(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}
