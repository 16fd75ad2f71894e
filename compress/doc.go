// Package compress provides the byte codecs used by packed crunched strings.
//
// Crunching already removes positional repetition; compression removes what
// is left, mostly repeated value text such as "595.0x842.0" page sizes that
// recur across segments. Four algorithms are supported:
//   - None: payload stored as-is
//   - Zstd: best ratio, default for packed envelopes
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation. Building with the
// gozstd tag (and cgo enabled) switches to the cgo valyala/gozstd binding.
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders that benefit from warm-up are pooled internally.
package compress
