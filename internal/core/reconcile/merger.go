package reconcile

import (
	"strings"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// Merger folds the uptime feed's recent events into the working event set.
// The history and uptime feeds describe the same physical transitions
// observed two ways; without deduplication the timeline would double-count
// every transition.
type Merger struct {
	tolerance time.Duration
}

// NewMerger creates a merger with the given dedup tolerance. A non-positive
// tolerance falls back to the default 60 seconds.
func NewMerger(tolerance time.Duration) *Merger {
	if tolerance <= 0 {
		tolerance = constants.DedupTolerance
	}
	return &Merger{tolerance: tolerance}
}

// Merge appends uptime events that do not collide with an existing event
// within the tolerance window. Surviving events carry medium confidence and
// the uptime feed's detection metadata.
func (m *Merger) Merge(events []model.Event, uptime *model.UptimeData) []model.Event {
	if uptime == nil {
		return events
	}

	merged := events
	for _, ue := range uptime.RecentEvents {
		if ue.Time.IsZero() {
			continue
		}
		if m.hasEventNear(merged, ue.Time.Time) {
			util.LogDebugf("Dropped duplicate uptime event at %s (within %s of an existing event)",
				ue.Time.Time.Format(time.RFC3339), m.tolerance)
			continue
		}

		evType := model.EventConnect
		if strings.EqualFold(strings.TrimSpace(ue.Type.String()), model.StatusOffline) {
			evType = model.EventDisconnect
		}

		age := strings.TrimSpace(ue.FormattedTime.String())
		if age == "" {
			age = util.FormatAge(int64(ue.SecondsAgo))
		}

		merged = append(merged, model.Event{
			Timestamp:  ue.Time.Time,
			Type:       evType,
			Source:     model.SourceUptime,
			Confidence: model.ConfidenceMedium,
			Meta: model.EventMeta{
				DetectionMethod: stringOrUnknown(ue.DetectionMethod),
				Age:             age,
			},
		})
	}

	return merged
}

// hasEventNear reports whether any event in the working set lies within the
// tolerance window of the given timestamp.
func (m *Merger) hasEventNear(events []model.Event, ts time.Time) bool {
	for _, e := range events {
		delta := e.Timestamp.Sub(ts)
		if delta < 0 {
			delta = -delta
		}
		if delta <= m.tolerance {
			return true
		}
	}
	return false
}
