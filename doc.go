// Package listcrunch run-length encodes ordered lists of repeated values into a
// short, human-readable string and decodes them back.
//
// Identical items are grouped by value and their positions are written as
// contiguous ranges. Values appear in order of first occurrence:
//
//	listcrunch.Crunch([]int{50, 50, 3, 50, 50, 3, 60, 70, 70})
//	// "50:0-1,3-4;3:2,5;60:6;70:7-8"
//
//	listcrunch.Uncrunch("50:0-1,3-4;3:2,5;60:6;70:7-8")
//	// ["50" "50" "3" "50" "50" "3" "60" "70" "70"], nil
//
// A typical use is page metadata of a document: seven identical page sizes
// crunch to "595.0x842.0:0-6".
//
// # Round Trip
//
// Decoding returns the textual rendering of each item (fmt.Sprint by default,
// or the renderer given to CrunchFunc), not the original values. The default
// grammar has no escaping: values containing ':' or ';' produce output that
// does not decode. Use WithEscaping and WithUnescaping on both sides, or the
// packed envelope, when values are arbitrary text.
//
// # Decoding Permissiveness
//
// Uncrunch does not check that decoded positions are exactly 0..n-1. Gaps and
// duplicates are returned as-is, sorted by position. WithStrictCoverage turns
// both into errors and WithMaxPositions bounds the expansion of large ranges.
//
// # Packed Envelope
//
// Pack and Unpack wrap a crunched string in a small binary header carrying an
// xxHash64 checksum and compress the text with Zstd, S2 or LZ4. See the pack
// and compress packages.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package listcrunch
