package compress

// ZstdCompressor provides Zstandard compression for crunched payloads.
//
// It gives the best ratio of the built-in codecs and is the default for
// packed envelopes. The implementation is selected at build time, see
// zstd_pure.go and zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress([]byte("595.0x842.0:0-6"))
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
