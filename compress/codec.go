package compress

import (
	"fmt"

	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
)

// Compressor compresses a crunched string payload.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. The returned slice is owned by the
	// caller, except for the no-op codec which returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original payload, or an error if data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressSized is like Decompress when the caller already knows the
	// decompressed size, as the envelope header records it. At most size
	// bytes are allocated; output of any other size fails with
	// errs.ErrLengthMismatch.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

func sizeMismatch(want, got int) error {
	return fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrLengthMismatch, want, got)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared, stateless codec instance
//   - error: ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}
