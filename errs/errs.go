// Package errs defines the sentinel errors returned by listcrunch.
//
// Errors are wrapped with context (the offending segment or token) using
// fmt.Errorf("%w: ..."), so callers should match them with errors.Is.
package errs

import "errors"

// Crunched string errors.
var (
	// ErrMalformedSegment indicates a ';'-delimited region without exactly one ':'.
	ErrMalformedSegment = errors.New("each ';'-delimited region must have exactly one ':'")
	// ErrMalformedRange indicates a range token that is not of the form START-END.
	ErrMalformedRange = errors.New("each range (e.g. 3-5) must have exactly one '-' between two integers")
	// ErrMalformedPosition indicates a single-position token that is not an unsigned integer.
	ErrMalformedPosition = errors.New("couldn't parse position")
	// ErrInvalidCoverage indicates decoded positions that are not exactly 0..n-1.
	ErrInvalidCoverage = errors.New("positions do not cover 0..n-1 exactly once")
	// ErrTooManyPositions indicates the expanded position count exceeds the configured limit.
	ErrTooManyPositions = errors.New("too many positions")
	// ErrInvalidMaxPositions indicates a non-positive position limit.
	ErrInvalidMaxPositions = errors.New("max positions must be positive")
)

// Packed envelope errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrLengthMismatch     = errors.New("payload length mismatch")
	ErrPayloadTooLarge    = errors.New("crunched payload too large")
)
