package listcrunch

import (
	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/pack"
)

// Pack crunches items with escaping enabled and wraps the result in a packed
// envelope compressed with the given algorithm.
//
// Escaping is always on because the envelope records it, so values containing
// ':' or ';' survive the round trip through Unpack.
//
// Parameters:
//   - items: Sequence to compress (read-only)
//   - compression: Payload compression (format.CompressionNone, Zstd, S2 or LZ4)
//
// Returns:
//   - []byte: Packed envelope
//   - error: Invalid compression type or compression failure
func Pack[T comparable](items []T, compression format.CompressionType) ([]byte, error) {
	crunched := Crunch(items, WithEscaping())

	return pack.Encode(crunched,
		pack.WithCompression(compression),
		pack.WithEscapedValues(true),
	)
}

// Unpack reverses Pack, or any envelope produced by pack.Encode.
//
// Values are unescaped when the envelope header says they were escaped.
// Additional decoding options such as WithStrictCoverage are applied after
// that.
func Unpack(data []byte, opts ...UncrunchOption) ([]string, error) {
	crunched, header, err := pack.Decode(data)
	if err != nil {
		return nil, err
	}

	if header.EscapedValues() {
		opts = append([]UncrunchOption{WithUnescaping()}, opts...)
	}

	return Uncrunch(crunched, opts...)
}
