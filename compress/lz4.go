package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Size bounds the decompression buffer to stop corrupted input from
// exhausting memory.
const maxLZ4Size = 128 * 1024 * 1024

// LZ4Compressor provides LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4 block data.
//
// The decompressed size is not stored in the block, so the buffer starts at
// 4x the input and doubles on ErrInvalidSourceShortBuffer, up to maxLZ4Size.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxLZ4Size; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}

// DecompressSized decompresses LZ4 block data into a buffer of exactly size
// bytes.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(size, 0)
		}
		return nil, nil
	}

	buf := make([]byte, size)
	// Output longer than size also surfaces as ErrInvalidSourceShortBuffer.
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != size {
		return nil, sizeMismatch(size, n)
	}

	return buf, nil
}
