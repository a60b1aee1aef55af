// Package strfmt is a small byte/text formatting toolkit: in-place and
// copy-producing string transforms (trim, ASCII case folding, duplicate
// elimination), a byte-to-text encoder with raw and hex renderings, and a
// timestamp formatter that renders into a reusable fixed-capacity scratch
// buffer.
//
// # Design overview
//
//   - Single-byte semantics: classification and case mapping use 256-entry
//     lookup tables matching the C locale. No Unicode awareness, by contract;
//     inputs are treated as Latin-1/ASCII byte sequences.
//   - In-place mutators: TrimBytes, Lowercase, Uppercase and EliminateDuplicates
//     rewrite the caller's backing array and return the narrowed slice. They
//     never grow or reallocate.
//   - View transforms: TrimString and NextNonSpace re-slice without copying.
//   - Bounds-checked encoding: EncodeBytes pre-computes the exact output
//     length and writes through a fixed-capacity writer that rejects any
//     write past the precomputed end. A raw/no-separator fast path skips the
//     per-byte loop entirely.
//   - Scratch time buffer: TimeFormatter owns a 128-byte buffer reused across
//     calls. Format, ISO8601 and Microseconds return views into that buffer;
//     a returned view is only valid until the next call on the same
//     formatter. Formatting failure yields an empty view, never an error.
//
// # Usage
//
//	buf := []byte("  mixed CASE text  ")
//	buf = strfmt.TrimBytes(buf, strfmt.TrimAll)
//	strfmt.Lowercase(buf)
//
//	s, err := strfmt.EncodeBytes([]byte{0xde, 0xad}, strfmt.FormatHex, ":")
//	// s == "de:ad"
//
// The timestamp formatter is a per-goroutine object, not a global:
//
//	tf := strfmt.NewTimeFormatter()
//	fmt.Printf("%s\n", tf.NowISO8601())
//
// TimeFormatter is not safe for concurrent use; give each goroutine its own
// instance. Snapshot (copy) a returned view before issuing the next call if
// you need to keep it.
package strfmt
