package pack

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
)

const (
	HeaderSize   = 20
	MagicNumber  = 0x4C43
	Version      = 1
	reservedSize = 3
)

// Header flag bits.
const (
	FlagEscapedValues uint8 = 1 << 0
)

// Header is the fixed-size prefix of a packed envelope.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	// Length is the size of the uncompressed crunched text in bytes.
	Length uint32
	// Checksum is the xxHash64 of the uncompressed crunched text.
	Checksum uint64
}

// EscapedValues reports whether the crunched text was written with escaping.
func (h Header) EscapedValues() bool {
	return h.Flags&FlagEscapedValues != 0
}

// appendTo serializes the header to dst.
func (h Header) appendTo(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, MagicNumber)
	dst = append(dst, h.Version, h.Flags, uint8(h.Compression))
	dst = append(dst, make([]byte, reservedSize)...)
	dst = binary.LittleEndian.AppendUint32(dst, h.Length)

	return binary.LittleEndian.AppendUint64(dst, h.Checksum)
}

// parseHeader parses and validates the header at the start of data.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != MagicNumber {
		return Header{}, fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	h := Header{
		Version:     data[2],
		Flags:       data[3],
		Compression: format.CompressionType(data[4]),
		Length:      binary.LittleEndian.Uint32(data[8:12]),
		Checksum:    binary.LittleEndian.Uint64(data[12:20]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.IsValid() {
		return Header{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	return h, nil
}
