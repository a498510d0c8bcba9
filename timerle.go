// Package timerle compresses uniformly-sampled timestamp streams with
// run-length encoding and persists them as compact self-describing blobs.
//
// Telemetry instruments emit timestamps at a nominally constant rate,
// interrupted by gaps. Each maximal gap-free stretch collapses to a
// (start, end, count) triple: run boundaries round-trip exactly, interior
// samples are reconstructed by linear interpolation. See the rle package
// documentation for the algorithm and its loss bound.
//
// # Basic Usage
//
// Compressing and reconstructing a stream:
//
//	times := []float64{0, 1, 2, 3, 7, 8, 10, 11, 15, 21, 22, 23}
//	enc, err := timerle.Compress(times)
//	if err != nil {
//	    return err
//	}
//	restored, err := timerle.Decompress(enc)
//
// Persisting the encoding as a blob:
//
//	data, err := timerle.Marshal(enc,
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithStreamName("pol0/DEM0/Q1"),
//	)
//	enc, header, err := timerle.Unmarshal(data)
//
// # Package Structure
//
// This package provides thin wrappers over the functional packages:
//   - rle: the codec itself, plus JSON interchange and time adapters
//   - blob: the binary persisted form
//   - compress: payload compression codecs (Zstd, S2, LZ4)
//   - section: the blob header layout
//   - format, endian, errs: shared constants, byte-order engines, sentinels
package timerle

import (
	"github.com/telqor/timerle/blob"
	"github.com/telqor/timerle/internal/hash"
	"github.com/telqor/timerle/rle"
	"github.com/telqor/timerle/section"
)

// Compress encodes a monotonic timestamp sequence as runs of
// uniformly-sampled values. See rle.Compress.
func Compress(times []float64, opts ...rle.Option) (rle.Encoding, error) {
	return rle.Compress(times, opts...)
}

// Decompress reconstructs a timestamp sequence of the original length from a
// run-length encoding. See rle.Decompress.
func Decompress(enc rle.Encoding) ([]float64, error) {
	return rle.Decompress(enc)
}

// Marshal serializes an encoding into a blob with the given encoder options.
func Marshal(enc rle.Encoding, opts ...blob.Option) ([]byte, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(enc)
}

// Unmarshal parses a blob back into its encoding and header.
func Unmarshal(data []byte) (rle.Encoding, section.Header, error) {
	return blob.Decode(data)
}

// StreamID computes the xxHash64 stream identity used in blob headers.
func StreamID(name string) uint64 {
	return hash.StreamID(name)
}
