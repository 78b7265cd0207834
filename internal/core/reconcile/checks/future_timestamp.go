package checks

import (
	"fmt"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// FutureTimestampCheck flags history sessions whose uncorrected start time
// lies strictly in the future. One inconsistency per offending session, with
// the original and corrected timestamps in the payload.
type FutureTimestampCheck struct {
	BaseCheck
	skewOffset time.Duration
}

// NewFutureTimestampCheck creates the check using the given skew offset for
// the corrected-value payload.
func NewFutureTimestampCheck(skewOffset time.Duration) *FutureTimestampCheck {
	return &FutureTimestampCheck{
		BaseCheck:  NewBaseCheck(model.InconsistencyFutureTimestamp, "History sessions starting in the future"),
		skewOffset: skewOffset,
	}
}

// Run inspects the raw history records, prior to correction.
func (c *FutureTimestampCheck) Run(input Input) []model.Inconsistency {
	found := make([]model.Inconsistency, 0)

	for _, raw := range input.Raw {
		if raw.StartTime.IsZero() || !raw.StartTime.Time.After(input.Now) {
			continue
		}

		id := raw.ID.String()
		if id == "" {
			id = model.Unknown
		}
		ahead := int64(raw.StartTime.Time.Sub(input.Now).Seconds())
		corrected := raw.StartTime.Time.Add(-c.skewOffset)

		found = append(found, model.Inconsistency{
			Kind:        model.InconsistencyFutureTimestamp,
			Description: fmt.Sprintf("session %s starts %s in the future", id, formatDuration(ahead)),
			Details: map[string]string{
				"session_id": id,
				"original":   formatTimestamp(raw.StartTime.Time),
				"corrected":  formatTimestamp(corrected),
			},
		})
	}

	return found
}
