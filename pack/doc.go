// Package pack wraps crunched strings in a small, self-describing binary
// envelope suitable for storage or transport.
//
// The envelope is a fixed 20-byte little-endian header followed by the
// compressed crunched text:
//
//	offset  size  field
//	0       2     magic number 0x4C43 ("LC")
//	2       1     version (1)
//	3       1     flags (bit 0: values are backslash-escaped)
//	4       1     compression type (format.CompressionType)
//	5       3     reserved, zero
//	8       4     uncompressed length in bytes
//	12      8     xxHash64 of the uncompressed crunched text
//	20      n     compressed payload
//
// Decode verifies the magic number, version, compression type, length and
// checksum before returning the crunched text.
package pack
