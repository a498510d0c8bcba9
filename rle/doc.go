// Package rle implements run-length compression for timestamp sequences.
//
// Telemetry acquisition produces long streams of timestamps sampled at a
// nominally constant rate, interrupted by gaps (dropped packets, paused
// acquisition, instrument mode changes). Classic run-length encoding
// compresses repetitions of a value; here the repeated quantity is the
// interval between consecutive samples, so each maximal gap-free stretch of
// uniformly-sampled times collapses to a (start, end, count) triple.
//
// # Algorithm
//
// Compress estimates the reference sampling interval as the median of the
// consecutive differences of the whole input. The median keeps the estimate
// robust when a minority of the steps are gaps: a mean would be dragged
// upward and misclassify every run boundary. A single forward scan then
// closes the current run whenever a step exceeds
//
//	(1 + relativeTolerance) * referenceInterval
//
// and records each closed run's first and last timestamp by position.
//
// For the sequence sampled once per second
//
//	0, 1, 2, 3,    7, 8,    10, 11,    15,    21, 22, 23
//
// (spacing added at the discontinuities) the encoding is
//
//	StartTimes: [0, 7, 10, 15, 21]
//	EndTimes:   [3, 8, 11, 15, 23]
//	RunLengths: [4, 2,  2,  1,  3]
//
// # Lossy interior reconstruction
//
// Decompress rebuilds each run by linear interpolation between its stored
// boundary times. Run boundaries are reproduced exactly; interior samples are
// exact only if the run was genuinely uniform. Any jitter that stayed within
// the tolerance during compression is smoothed away by the reconstruction.
// This is intentional, bounded information loss: the error of an interior
// sample never exceeds the jitter the tolerance admitted.
//
// The codec is unit-agnostic. Inputs are plain float64 sample values; any
// monotonic numeric representation (relative seconds, Unix seconds, Modified
// Julian Date) works as long as subtraction and interpolation are meaningful.
// Adapters for time.Time and MJD streams live in this package as free
// functions.
//
// Both Compress and Decompress are pure functions with no shared state and
// are safe to call concurrently on independent inputs.
package rle
