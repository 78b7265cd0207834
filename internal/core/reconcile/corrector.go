package reconcile

import (
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// Corrector compensates for the accounting backend's clock-skew defect, where
// session timestamps can be reported several minutes in the future relative
// to the caller's clock. The fixed offset is a heuristic (the skew clusters
// around 5 minutes in this environment), not a measured value.
type Corrector struct {
	skewOffset      time.Duration
	futureTolerance time.Duration
}

// NewCorrector creates a corrector with the given skew offset. A
// non-positive offset falls back to the default 5 minutes.
func NewCorrector(skewOffset time.Duration) *Corrector {
	if skewOffset <= 0 {
		skewOffset = constants.ClockSkewOffset
	}
	return &Corrector{
		skewOffset:      skewOffset,
		futureTolerance: constants.FutureTolerance,
	}
}

// CorrectTimestamp shifts a timestamp that is more than a minute in the
// future back by the skew offset. Returns the corrected timestamp and
// whether a correction was applied.
func (c *Corrector) CorrectTimestamp(ts, now time.Time) (time.Time, bool) {
	if ts.IsZero() {
		return ts, false
	}
	if now.Sub(ts) < -c.futureTolerance {
		corrected := ts.Add(-c.skewOffset)
		util.LogDebugf("Corrected future timestamp %s -> %s (skew offset %s)",
			ts.Format(time.RFC3339), corrected.Format(time.RFC3339), c.skewOffset)
		return corrected, true
	}
	return ts, false
}

// FloorDuration clamps a negative derived duration to the minimum floor
// instead of reporting a nonsense value. Returns the clamped duration and
// whether clamping happened.
func (c *Corrector) FloorDuration(seconds int64) (int64, bool) {
	if seconds < 0 {
		return constants.DurationFloorSeconds, true
	}
	return seconds, false
}

// StaticDurationMismatch reports whether a backend-reported duration looks
// like a static placeholder: it matches one of the known constant values
// while the timestamp-derived duration disagrees beyond tolerance.
func (c *Corrector) StaticDurationMismatch(reported, derived int64) bool {
	if !constants.StaticDurationValue(reported) {
		return false
	}
	diff := derived - reported
	if diff < 0 {
		diff = -diff
	}
	return diff > int64(constants.StaticDurationTolerance/time.Second)
}
