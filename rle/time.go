package rle

import (
	"math"
	"time"
)

// mjdEpochUnix is the origin of the Modified Julian Date scale,
// 1858-11-17 00:00:00 UTC, as Unix seconds (MJD of the Unix epoch is 40587).
const mjdEpochUnix int64 = -40587 * 86400

const secondsPerDay = 86400.0

// FromTimes converts wall-clock samples to seconds relative to the first
// sample, the float64 view Compress operates on. An empty input yields an
// empty slice.
//
// Working relative to the first sample keeps the float64 values small, so the
// sub-second resolution of the samples survives the conversion even for
// streams anchored far from the Unix epoch.
func FromTimes(samples []time.Time) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}

	base := samples[0]
	out := make([]float64, len(samples))
	for i, t := range samples {
		out[i] = t.Sub(base).Seconds()
	}

	return out
}

// ToTimes converts relative seconds back to wall-clock samples anchored at
// base, inverting FromTimes for base equal to the original first sample.
func ToTimes(base time.Time, seconds []float64) []time.Time {
	out := make([]time.Time, len(seconds))
	for i, s := range seconds {
		out[i] = base.Add(time.Duration(s * float64(time.Second)))
	}

	return out
}

// TimeToMJD converts a wall-clock time to Modified Julian Date days.
//
// The conversion goes through Unix seconds rather than a time.Duration, so it
// is not limited by Duration's ~292-year range from the 1858 MJD origin.
// MJD values near the present are around 6e4 days; at float64 precision that
// leaves roughly microsecond resolution, which matches the acquisition
// streams this codec targets.
func TimeToMJD(t time.Time) float64 {
	seconds := float64(t.Unix()-mjdEpochUnix) + float64(t.Nanosecond())/1e9

	return seconds / secondsPerDay
}

// MJDToTime converts Modified Julian Date days to a wall-clock time in UTC.
func MJDToTime(mjd float64) time.Time {
	seconds := mjd * secondsPerDay
	whole := math.Floor(seconds)
	nanos := math.Round((seconds - whole) * 1e9)

	return time.Unix(int64(whole)+mjdEpochUnix, int64(nanos)).UTC()
}
