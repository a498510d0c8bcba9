// Package blob implements the persisted binary form of a run-length time
// encoding.
//
// A blob is a 24-byte header (see the section package) followed by one
// payload holding the encoding's three columnar sections in order: start
// times, end times, run lengths. Boundary times are stored as their IEEE-754
// bit patterns, varint-delta encoded with zigzag deltas after the first value
// of each section; the integer deltas are exact, so the persisted form
// round-trips bit-for-bit. Run lengths are plain uvarints. The payload as a
// whole may be compressed with any codec from the compress package, and the
// choice is recorded in the header flag.
//
// Encoding:
//
//	encoder, _ := blob.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithStreamName("pol0/DEM0/Q1"),
//	)
//	data, err := encoder.Encode(encoding)
//
// Decoding:
//
//	encoding, header, err := blob.Decode(data)
//
// The header travels back to the caller so stream identity and time format
// survive storage without a side channel.
package blob
