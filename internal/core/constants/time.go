package constants

import "time"

const (
	// Clock-skew correction. The accounting backend is known to report
	// session timestamps up to a few minutes in the future; the observed
	// skew clusters around 5 minutes, so corrupted timestamps are shifted
	// back by this fixed offset. Heuristic, not a measured skew.
	ClockSkewOffset = 5 * time.Minute

	// A timestamp more than this far in the future is treated as corrupted.
	FutureTolerance = time.Minute

	// Minimum duration reported to the caller when corrected timestamps
	// still yield a negative span.
	DurationFloorSeconds = int64(60)

	// Two events closer than this describe the same physical transition.
	DedupTolerance = 60 * time.Second

	// Reported durations matching a static placeholder are only trusted
	// when the timestamp-derived duration agrees within this tolerance.
	StaticDurationTolerance = 60 * time.Second

	// Adjacent timeline events further apart than this produce a Gap.
	GapThreshold = time.Hour
)

// StaticDurationValue reports whether a backend-reported duration matches one
// of the known placeholder constants (300 and 240 seconds).
func StaticDurationValue(seconds int64) bool {
	return seconds == 300 || seconds == 240
}
