// Package hash computes the checksums stored in packed envelopes.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of a crunched string.
func Checksum(text string) uint64 {
	return xxhash.Sum64String(text)
}

// ChecksumBytes computes the xxHash64 of raw bytes.
// It yields the same value as Checksum for the same content.
func ChecksumBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
