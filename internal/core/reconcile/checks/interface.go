package checks

import (
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Input contains everything a check may inspect: the raw feeds, the
// normalized sessions, and the assembled timeline. Checks are pure
// predicates over this data; they never mutate it.
type Input struct {
	// Current time for validation
	Now time.Time

	// Raw history records, prior to correction
	Raw []model.RawSession

	// Normalized sessions with corrected timestamps
	Sessions []model.Session

	// Uptime feed payload, nil when the feed was absent
	Uptime *model.UptimeData

	// Realtime feed payload, nil when the feed was absent
	Realtime *model.RealtimeData

	// Assembled timeline, sorted ascending by timestamp
	Events []model.Event
}

// Check is one independent data-quality rule. Rules share no state and no
// priority; new rules can be added without touching existing ones.
type Check interface {
	// Name returns the unique name of this check
	Name() string

	// Run inspects the input and returns any inconsistencies found
	Run(input Input) []model.Inconsistency

	// Description returns a human-readable description of what this check looks for
	Description() string
}

// BaseCheck provides common functionality for all checks
type BaseCheck struct {
	name        string
	description string
}

// NewBaseCheck creates a new base check
func NewBaseCheck(name, description string) BaseCheck {
	return BaseCheck{
		name:        name,
		description: description,
	}
}

// Name returns the check name
func (c BaseCheck) Name() string {
	return c.name
}

// Description returns the check description
func (c BaseCheck) Description() string {
	return c.description
}
