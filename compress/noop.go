package compress


// NoOpCompressor stores payloads uncompressed.
//
// Short crunched strings often do not shrink under general-purpose
// compression; the no-op codec avoids paying framing overhead for them.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSized returns data unchanged if it is exactly size bytes long.
func (c NoOpCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, sizeMismatch(size, len(data))
	}

	return data, nil
}
