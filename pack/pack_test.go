package pack

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/internal/hash"
	"github.com/stretchr/testify/require"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func pageSizes() string {
	return strings.Repeat("595.0x842.0:0-6,9,12-40;612.0x792.0:7-8,10-11;", 20) + "1:41"
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	crunched := pageSizes()

	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode(crunched, WithCompression(ct))
			require.NoError(t, err)

			got, h, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, crunched, got)
			require.Equal(t, ct, h.Compression)
			require.Equal(t, uint32(len(crunched)), h.Length)
			require.Equal(t, hash.Checksum(crunched), h.Checksum)
			require.False(t, h.EscapedValues())
		})
	}
}

func TestEncode_DefaultsToZstd(t *testing.T) {
	data, err := Encode(pageSizes())
	require.NoError(t, err)

	h, err := Inspect(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, h.Compression)
	require.Equal(t, uint8(Version), h.Version)
	require.Less(t, len(data), len(pageSizes()))
}

func TestEncode_Empty(t *testing.T) {
	for _, ct := range allCompressions {
		data, err := Encode("", WithCompression(ct))
		require.NoError(t, err)

		got, _, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, "", got)
	}
}

func TestEncode_EscapedFlag(t *testing.T) {
	data, err := Encode(`a\:b:0`, WithEscapedValues(true), WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+len(`a\:b:0`))

	h, err := Inspect(data)
	require.NoError(t, err)
	require.True(t, h.EscapedValues())
	require.Equal(t, FlagEscapedValues, data[3])
}

func TestEncode_StoresUncompressedWhenNotSmaller(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode("77:0", WithCompression(ct))
			require.NoError(t, err)
			require.Len(t, data, HeaderSize+len("77:0"))

			h, err := Inspect(data)
			require.NoError(t, err)
			require.Equal(t, format.CompressionNone, h.Compression)

			got, _, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, "77:0", got)
		})
	}
}

func TestValidateLength(t *testing.T) {
	require.NoError(t, validateLength(0))
	require.NoError(t, validateLength(math.MaxUint32))

	err := validateLength(math.MaxUint32 + 1)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
	require.Contains(t, err.Error(), "4294967296 bytes")
}

func TestEncode_InvalidCompression(t *testing.T) {
	_, err := Encode("1:0", WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestHeader_Layout(t *testing.T) {
	data, err := Encode("77:0", WithCompression(format.CompressionNone))
	require.NoError(t, err)

	require.Equal(t, uint16(MagicNumber), binary.LittleEndian.Uint16(data[0:2]))
	require.Equal(t, byte(Version), data[2])
	require.Equal(t, byte(0), data[3])
	require.Equal(t, byte(format.CompressionNone), data[4])
	require.Equal(t, []byte{0, 0, 0}, data[5:8])
	require.Equal(t, uint32(4), binary.LittleEndian.Uint32(data[8:12]))
	require.Equal(t, hash.Checksum("77:0"), binary.LittleEndian.Uint64(data[12:20]))
	require.Equal(t, "77:0", string(data[HeaderSize:]))
}

func TestDecode_Corruption(t *testing.T) {
	valid, err := Encode("50:0-1,3-4;3:2,5;60:6;70:7-8", WithCompression(format.CompressionNone))
	require.NoError(t, err)

	corrupt := func(fn func(b []byte) []byte) []byte {
		b := append([]byte(nil), valid...)
		return fn(b)
	}

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"too short", valid[:HeaderSize-1], errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(b []byte) []byte { b[0] = 0; return b }), errs.ErrInvalidMagicNumber},
		{"bad version", corrupt(func(b []byte) []byte { b[2] = 9; return b }), errs.ErrUnsupportedVersion},
		{"bad compression", corrupt(func(b []byte) []byte { b[4] = 0x7f; return b }), errs.ErrInvalidCompression},
		{"truncated payload", valid[:len(valid)-1], errs.ErrLengthMismatch},
		{"flipped payload byte", corrupt(func(b []byte) []byte { b[HeaderSize] ^= 0x01; return b }), errs.ErrChecksumMismatch},
		{"flipped checksum", corrupt(func(b []byte) []byte { b[12] ^= 0xff; return b }), errs.ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.err)
			require.Empty(t, got)
		})
	}
}

func TestDecode_LengthFieldMismatch(t *testing.T) {
	crunched := pageSizes()

	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode(crunched, WithCompression(ct))
			require.NoError(t, err)

			binary.LittleEndian.PutUint32(data[8:12], uint32(len(crunched))+1)

			got, _, err := Decode(data)
			require.ErrorIs(t, err, errs.ErrLengthMismatch)
			require.Empty(t, got)
		})
	}
}

func TestDecode_CorruptedCompressedPayload(t *testing.T) {
	data, err := Encode(pageSizes(), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	data = data[:HeaderSize+4]
	_, _, err = Decode(data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decompress Zstd payload")
}

func BenchmarkEncode(b *testing.B) {
	crunched := pageSizes()
	for _, ct := range allCompressions {
		b.Run(ct.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = Encode(crunched, WithCompression(ct))
			}
		})
	}
}
