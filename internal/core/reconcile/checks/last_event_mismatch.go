package checks

import (
	"fmt"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// LastEventMismatchCheck flags a realtime feed whose reported last-event
// time does not match the newest event on the assembled timeline.
type LastEventMismatchCheck struct {
	BaseCheck
	tolerance time.Duration
}

// NewLastEventMismatchCheck creates the check with the given match tolerance.
func NewLastEventMismatchCheck(tolerance time.Duration) *LastEventMismatchCheck {
	if tolerance <= 0 {
		tolerance = constants.DedupTolerance
	}
	return &LastEventMismatchCheck{
		BaseCheck: NewBaseCheck(model.InconsistencyLastEventMismatch, "Realtime last-event time disagrees with the timeline"),
		tolerance: tolerance,
	}
}

// Run compares the realtime snapshot against the assembled timeline.
func (c *LastEventMismatchCheck) Run(input Input) []model.Inconsistency {
	if input.Realtime == nil || input.Realtime.LastEventTime.IsZero() || len(input.Events) == 0 {
		return nil
	}

	last := input.Events[len(input.Events)-1].Timestamp
	reported := input.Realtime.LastEventTime.Time

	delta := last.Sub(reported)
	if delta < 0 {
		delta = -delta
	}
	if delta <= c.tolerance {
		return nil
	}

	return []model.Inconsistency{{
		Kind:        model.InconsistencyLastEventMismatch,
		Description: fmt.Sprintf("realtime feed's last event (%s) does not match newest timeline event (%s)", formatTimestamp(reported), formatTimestamp(last)),
		Details: map[string]string{
			"realtime_last_event": formatTimestamp(reported),
			"timeline_last_event": formatTimestamp(last),
			"difference":          formatDuration(int64(delta / time.Second)),
		},
	}}
}
