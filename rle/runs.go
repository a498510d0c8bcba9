package rle

import "sort"

// referenceInterval estimates the nominal sampling interval of times as the
// median of its consecutive differences. Requires len(times) >= 2.
func referenceInterval(times []float64) float64 {
	diffs := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		diffs[i-1] = times[i] - times[i-1]
	}
	sort.Float64s(diffs)

	mid := len(diffs) / 2
	if len(diffs)%2 == 1 {
		return diffs[mid]
	}

	return (diffs[mid-1] + diffs[mid]) / 2
}

// findRuns returns the length of each maximal run of uniformly-sampled values
// in times. A run closes at every step larger than
// (1 + relativeTolerance) * referenceInterval; the last open run is closed at
// the end of the scan, so the returned lengths always sum to len(times).
func findRuns(times []float64, referenceInterval, relativeTolerance float64) []int {
	limit := (1 + relativeTolerance) * referenceInterval

	runs := make([]int, 0, 8)
	runLength := 1
	for i := 1; i < len(times); i++ {
		if times[i]-times[i-1] > limit {
			runs = append(runs, runLength)
			runLength = 1
		} else {
			runLength++
		}
	}

	return append(runs, runLength)
}
