package reconcile

import (
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// Assembler orders the merged event set chronologically and detects spans
// long enough to suggest missing data.
type Assembler struct {
	gapThreshold time.Duration
}

// NewAssembler creates an assembler with the given gap threshold. A
// non-positive threshold falls back to the default 1 hour.
func NewAssembler(gapThreshold time.Duration) *Assembler {
	if gapThreshold <= 0 {
		gapThreshold = constants.GapThreshold
	}
	return &Assembler{gapThreshold: gapThreshold}
}

// Assemble returns the events sorted ascending by timestamp (stable with
// respect to insertion order for ties) plus the gaps between adjacent
// events. Gaps are descriptive, never errors.
func (a *Assembler) Assemble(events []model.Event) ([]model.Event, []model.Gap) {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	gaps := make([]model.Gap, 0)
	for i := 1; i < len(sorted); i++ {
		delta := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp)
		if delta > a.gapThreshold {
			gaps = append(gaps, model.Gap{
				Start:         sorted[i-1].Timestamp,
				End:           sorted[i].Timestamp,
				DurationHours: delta.Hours(),
				Description:   fmt.Sprintf("no events for %s, possible missing data", util.FormatDuration(delta)),
			})
		}
	}

	if len(gaps) > 0 {
		util.LogDebugf("Detected %d gaps above %s threshold", len(gaps), a.gapThreshold)
	}
	return sorted, gaps
}
