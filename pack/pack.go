package pack

import (
	"fmt"
	"math"

	"github.com/arloliu/listcrunch/compress"
	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/internal/hash"
	"github.com/arloliu/listcrunch/internal/options"
)

// Encode packs a crunched string into an envelope.
//
// When compression does not make the payload smaller, the text is stored with
// format.CompressionNone and the header records that instead.
//
// Parameters:
//   - crunched: Crunched string, typically from listcrunch.Crunch
//   - opts: Optional configuration (WithCompression, WithEscapedValues)
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: Invalid option or compression failure
func Encode(crunched string, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateLength(uint64(len(crunched))); err != nil {
		return nil, err
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		Length:      uint32(len(crunched)), //nolint:gosec
		Checksum:    hash.Checksum(crunched),
	}
	if cfg.escaped {
		h.Flags |= FlagEscapedValues
	}

	payload, err := compressPayload(&h, []byte(crunched))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.appendTo(out)

	return append(out, payload...), nil
}

// validateLength reports whether n bytes fit the header's uint32 length field.
func validateLength(n uint64) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, n)
	}

	return nil
}

func compressPayload(h *Header, raw []byte) ([]byte, error) {
	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", h.Compression, err)
	}
	if len(payload) >= len(raw) {
		h.Compression = format.CompressionNone
		return raw, nil
	}

	return payload, nil
}

// Decode unpacks an envelope and returns the crunched text with its header.
//
// The payload is decompressed into exactly the length recorded in the header.
// Returns an error if the header is malformed, the payload fails to
// decompress, or the length or checksum do not match.
func Decode(data []byte) (string, Header, error) {
	h, err := parseHeader(data)
	if err != nil {
		return "", Header{}, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return "", Header{}, err
	}

	raw, err := codec.DecompressSized(data[HeaderSize:], int(h.Length))
	if err != nil {
		return "", Header{}, fmt.Errorf("decompress %s payload: %w", h.Compression, err)
	}

	if sum := hash.ChecksumBytes(raw); sum != h.Checksum {
		return "", Header{}, fmt.Errorf("%w: expected 0x%016x, got 0x%016x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	return string(raw), h, nil
}

// Inspect parses and validates the header of an envelope without touching
// the payload.
func Inspect(data []byte) (Header, error) {
	return parseHeader(data)
}
