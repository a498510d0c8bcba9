// Package compress provides the payload compression codecs used by the
// run-length blob format.
//
// A blob's three columnar sections (start times, end times, run lengths) are
// concatenated into a single payload and compressed as one unit; the codec in
// use is recorded in the blob flag word so decoders can pick the matching
// Codec through GetCodec.
//
// Available codecs:
//   - None: passthrough, for payloads too small to benefit
//   - Zstd: best ratio; uses the cgo libzstd binding when cgo is available
//     and a pure Go implementation otherwise
//   - S2: fastest, moderate ratio
//   - LZ4: fast block compression, broad interoperability
//
// Raw float64 boundary times compress well under any of these: consecutive
// run boundaries share exponent and high mantissa bits.
package compress
