package strfmt

// Classification matches the C locale: only the six ASCII whitespace bytes
// are space, only A-Z/a-z are upper/lower. Bytes >= 0x80 fall outside every
// class. Go bytes are unsigned, so there is no sign-extension hazard here.

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// lowerTable and upperTable map a byte to its case-folded form and leave
// every non-alphabetic byte untouched. Shared by case.go.
var (
	lowerTable [256]byte
	upperTable [256]byte
)

func init() {
	for i := range lowerTable {
		c := byte(i)
		lowerTable[i] = c
		upperTable[i] = c
		if c >= 'A' && c <= 'Z' {
			lowerTable[i] = c + ('a' - 'A')
		}
		if c >= 'a' && c <= 'z' {
			upperTable[i] = c - ('a' - 'A')
		}
	}
}

func isSpace(c byte) bool { return asciiSpace[c] }

func isNonSpace(c byte) bool { return !asciiSpace[c] }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
