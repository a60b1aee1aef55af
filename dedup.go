package strfmt

// EliminateDuplicates compacts b in place so that each distinct byte value
// appears exactly once, at the position of its first occurrence, preserving
// the relative order of first occurrences. It returns the narrowed slice.
//
// The scan is O(n²) on pathological high-duplication input. That is
// deliberate: the intended inputs are short tag/flag strings where the
// simple compaction wins, and callers rely on the stable first-seen
// ordering, not on throughput.
func EliminateDuplicates(b []byte) []byte {
	end := len(b)
	for i := 0; i < end; i++ {
		c := b[i]
		// Compact every later occurrence of c out of b[i+1:end].
		w := i + 1
		for r := i + 1; r < end; r++ {
			if b[r] != c {
				b[w] = b[r]
				w++
			}
		}
		end = w
	}
	return b[:end]
}
