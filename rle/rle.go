package rle

import (
	"fmt"

	"github.com/telqor/timerle/errs"
	"github.com/telqor/timerle/internal/options"
)

// DefaultRelativeTolerance is the fraction by which a sample-to-sample step
// may exceed the reference interval before it is classified as a run
// boundary. 10% absorbs the clock jitter typical of instrument acquisition
// streams without merging genuine gaps.
const DefaultRelativeTolerance = 0.1

// Encoding is a timestamp sequence compressed with run-length encoding.
//
// The three slices are parallel: run i spans RunLengths[i] samples, the first
// at StartTimes[i] and the last at EndTimes[i]. Runs appear in stream order
// and partition the original sequence, so the sum of RunLengths equals the
// original sample count.
//
// An Encoding is immutable by convention once returned from Compress; none of
// the methods on it mutate its slices.
type Encoding struct {
	StartTimes []float64
	EndTimes   []float64
	RunLengths []int
}

// NumRuns returns the number of runs in the encoding.
func (e Encoding) NumRuns() int {
	return len(e.RunLengths)
}

// NumSamples returns the total number of samples the encoding represents,
// i.e. the length of the sequence Decompress reconstructs.
func (e Encoding) NumSamples() int {
	total := 0
	for _, n := range e.RunLengths {
		total += n
	}

	return total
}

// Validate checks the structural invariants of the encoding.
//
// It returns an error wrapping errs.ErrMalformedEncoding when the parallel
// arrays differ in length, when any run length is below 1, or when a
// single-sample run carries differing start and end times.
func (e Encoding) Validate() error {
	if len(e.EndTimes) != len(e.StartTimes) || len(e.RunLengths) != len(e.StartTimes) {
		return fmt.Errorf("%w: parallel array lengths %d/%d/%d",
			errs.ErrMalformedEncoding, len(e.StartTimes), len(e.EndTimes), len(e.RunLengths))
	}

	for i, n := range e.RunLengths {
		if n < 1 {
			return fmt.Errorf("%w: run %d has length %d", errs.ErrMalformedEncoding, i, n)
		}
		if n == 1 && e.StartTimes[i] != e.EndTimes[i] {
			return fmt.Errorf("%w: single-sample run %d has start %v but end %v",
				errs.ErrMalformedEncoding, i, e.StartTimes[i], e.EndTimes[i])
		}
	}

	return nil
}

type compressConfig struct {
	relativeTolerance float64
}

// Option configures a single Compress call.
type Option = options.Option[*compressConfig]

// WithRelativeTolerance overrides DefaultRelativeTolerance for one call.
//
// A tolerance of 0 starts a new run at any step that is not exactly the
// reference interval. A negative tolerance is accepted and makes the detector
// hypersensitive: every step may appear as a discontinuity, producing
// maximally fragmented output. That is a caller responsibility, not a
// validated precondition.
func WithRelativeTolerance(tolerance float64) Option {
	return options.NoError(func(cfg *compressConfig) {
		cfg.relativeTolerance = tolerance
	})
}

// Compress encodes a monotonically non-decreasing timestamp sequence as runs
// of uniformly-sampled values.
//
// The reference sampling interval is the median of the consecutive
// differences of times. A single forward scan closes the current run at every
// step exceeding (1 + tolerance) * reference interval; each closed run
// records its first and last timestamp by position, never by recomputation.
//
// Guarantees on the result: the run lengths sum to len(times), the first
// run starts at times[0], and the last run ends at times[len(times)-1]. A
// perfectly uniform input yields a single run for any tolerance >= 0.
//
// Compress returns an error wrapping errs.ErrInvalidInputLength when times
// has fewer than 2 samples, since no reference interval can be estimated.
func Compress(times []float64, opts ...Option) (Encoding, error) {
	if len(times) < 2 {
		return Encoding{}, fmt.Errorf("%w: got %d", errs.ErrInvalidInputLength, len(times))
	}

	cfg := compressConfig{relativeTolerance: DefaultRelativeTolerance}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Encoding{}, err
	}

	runs := findRuns(times, referenceInterval(times), cfg.relativeTolerance)

	enc := Encoding{
		StartTimes: make([]float64, len(runs)),
		EndTimes:   make([]float64, len(runs)),
		RunLengths: runs,
	}

	cursor := 0
	for i, n := range runs {
		enc.StartTimes[i] = times[cursor]
		enc.EndTimes[i] = times[cursor+n-1]
		cursor += n
	}

	return enc, nil
}

// Decompress reconstructs a timestamp sequence of the original length from a
// run-length encoding.
//
// Each run is filled by inclusive linear interpolation between its stored
// boundary times, so the first and last sample of every run are reproduced
// exactly and interior samples are a linear approximation (see the package
// documentation for the loss bound). A single-sample run emits its start
// time.
//
// Decompress returns an error wrapping errs.ErrMalformedEncoding when enc
// fails Validate; it never silently truncates or pads the output.
func Decompress(enc Encoding) ([]float64, error) {
	if err := enc.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, enc.NumSamples())

	cursor := 0
	for i, n := range enc.RunLengths {
		fillRun(out[cursor:cursor+n], enc.StartTimes[i], enc.EndTimes[i])
		cursor += n
	}

	return out, nil
}

// fillRun writes len(run) values linearly interpolated between start and end
// into run. Boundary values are assigned, not interpolated, so they round
// trip bit-for-bit.
func fillRun(run []float64, start, end float64) {
	n := len(run)
	run[0] = start
	if n == 1 {
		return
	}

	span := end - start
	for k := 1; k < n-1; k++ {
		run[k] = start + float64(k)/float64(n-1)*span
	}
	run[n-1] = end
}
