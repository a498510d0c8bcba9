package rle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/telqor/timerle/errs"
)

// gappedTimes is a once-per-second stream with three gaps and one isolated
// sample, the worked example from the package documentation.
var gappedTimes = []float64{0, 1, 2, 3, 7, 8, 10, 11, 15, 21, 22, 23}

func TestCompress_GappedStream(t *testing.T) {
	enc, err := Compress(gappedTimes)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 7, 10, 15, 21}, enc.StartTimes)
	require.Equal(t, []float64{3, 8, 11, 15, 23}, enc.EndTimes)
	require.Equal(t, []int{4, 2, 2, 1, 3}, enc.RunLengths)

	require.Equal(t, 5, enc.NumRuns())
	require.Equal(t, len(gappedTimes), enc.NumSamples())
}

func TestCompress_UniformStreamSingleRun(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}

	enc, err := Compress(times, WithRelativeTolerance(0))
	require.NoError(t, err)

	require.Equal(t, 1, enc.NumRuns())
	require.Equal(t, []float64{0}, enc.StartTimes)
	require.Equal(t, []float64{4}, enc.EndTimes)
	require.Equal(t, []int{5}, enc.RunLengths)

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Equal(t, times, restored)
}

func TestCompress_MinimalLength(t *testing.T) {
	enc, err := Compress([]float64{0, 1})
	require.NoError(t, err)

	require.Equal(t, []float64{0}, enc.StartTimes)
	require.Equal(t, []float64{1}, enc.EndTimes)
	require.Equal(t, []int{2}, enc.RunLengths)

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, restored)
}

func TestCompress_TooShort(t *testing.T) {
	_, err := Compress([]float64{42})
	require.ErrorIs(t, err, errs.ErrInvalidInputLength)

	_, err = Compress(nil)
	require.ErrorIs(t, err, errs.ErrInvalidInputLength)
}

func TestCompress_NegativeToleranceFragments(t *testing.T) {
	times := []float64{0, 1, 2, 3}

	enc, err := Compress(times, WithRelativeTolerance(-0.5))
	require.NoError(t, err)

	// Every step exceeds half the reference interval, so every sample is its
	// own run.
	require.Equal(t, len(times), enc.NumRuns())
	require.Equal(t, times, enc.StartTimes)
	require.Equal(t, times, enc.EndTimes)

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Equal(t, times, restored)
}

func TestCompress_SumInvariant(t *testing.T) {
	inputs := [][]float64{
		gappedTimes,
		{0, 1},
		{0, 0.5, 1.0, 1.5, 10, 10.5, 11},
		{100, 101, 105, 106, 107, 120},
	}

	for _, times := range inputs {
		for _, tol := range []float64{0, 0.1, 0.5, 2} {
			enc, err := Compress(times, WithRelativeTolerance(tol))
			require.NoError(t, err)
			require.Equal(t, len(times), enc.NumSamples(),
				"sum of run lengths must equal the input length (tol=%v)", tol)
			require.Equal(t, times[0], enc.StartTimes[0])
			require.Equal(t, times[len(times)-1], enc.EndTimes[enc.NumRuns()-1])
		}
	}
}

func TestCompress_RunCountMonotonicInTolerance(t *testing.T) {
	times := []float64{0, 1, 2.05, 3, 3.9, 7, 8, 8.5, 10, 11.2, 15, 21, 22, 23.1}

	prevRuns := 0
	for _, tol := range []float64{2, 1, 0.5, 0.2, 0.1, 0.05, 0} {
		enc, err := Compress(times, WithRelativeTolerance(tol))
		require.NoError(t, err)

		if prevRuns > 0 {
			require.GreaterOrEqual(t, enc.NumRuns(), prevRuns,
				"tightening tolerance to %v must not merge runs", tol)
		}
		prevRuns = enc.NumRuns()
	}
}

func TestDecompress_RoundTripBoundaries(t *testing.T) {
	enc, err := Compress(gappedTimes)
	require.NoError(t, err)

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Len(t, restored, len(gappedTimes))

	// Every run boundary sample is reproduced exactly.
	cursor := 0
	for i, n := range enc.RunLengths {
		require.Equal(t, enc.StartTimes[i], restored[cursor])
		require.Equal(t, enc.EndTimes[i], restored[cursor+n-1])
		cursor += n
	}

	// The whole stream is gap-free inside each run, so the reconstruction is
	// exact up to interpolation rounding.
	for i, want := range gappedTimes {
		require.InDelta(t, want, restored[i], 1e-12)
	}
}

func TestDecompress_SmoothsToleratedJitter(t *testing.T) {
	// One interior sample drifts by 0.05s, within the 10% tolerance of the
	// 1s reference interval. The run stays whole and the jitter is smoothed
	// away by reconstruction.
	times := []float64{0, 1, 2.05, 3, 4}

	enc, err := Compress(times)
	require.NoError(t, err)
	require.Equal(t, 1, enc.NumRuns())

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Len(t, restored, len(times))

	require.Equal(t, times[0], restored[0])
	require.Equal(t, times[len(times)-1], restored[len(times)-1])
	// Interior samples are linear: the drifted sample comes back at 2.
	require.InDelta(t, 2.0, restored[2], 1e-12)
}

func TestDecompress_SingleSampleRun(t *testing.T) {
	enc := Encoding{
		StartTimes: []float64{15},
		EndTimes:   []float64{15},
		RunLengths: []int{1},
	}

	restored, err := Decompress(enc)
	require.NoError(t, err)
	require.Equal(t, []float64{15}, restored)
}

func TestDecompress_MismatchedArrays(t *testing.T) {
	enc := Encoding{
		StartTimes: []float64{0},
		EndTimes:   []float64{3, 8},
		RunLengths: []int{3, 2},
	}

	_, err := Decompress(enc)
	require.ErrorIs(t, err, errs.ErrMalformedEncoding)
}

func TestDecompress_InvalidRunLength(t *testing.T) {
	enc := Encoding{
		StartTimes: []float64{0, 5},
		EndTimes:   []float64{3, 5},
		RunLengths: []int{4, 0},
	}

	_, err := Decompress(enc)
	require.ErrorIs(t, err, errs.ErrMalformedEncoding)
}

func TestDecompress_SingleSampleRunBoundaryMismatch(t *testing.T) {
	enc := Encoding{
		StartTimes: []float64{15},
		EndTimes:   []float64{16},
		RunLengths: []int{1},
	}

	_, err := Decompress(enc)
	require.ErrorIs(t, err, errs.ErrMalformedEncoding)
}

func TestValidate_AcceptsCompressOutput(t *testing.T) {
	enc, err := Compress(gappedTimes)
	require.NoError(t, err)
	require.NoError(t, enc.Validate())
}
