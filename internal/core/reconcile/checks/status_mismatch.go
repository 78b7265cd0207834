package checks

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// StatusMismatchCheck flags disagreement between the realtime feed's status
// and the uptime feed's status.
type StatusMismatchCheck struct {
	BaseCheck
}

// NewStatusMismatchCheck creates the check.
func NewStatusMismatchCheck() *StatusMismatchCheck {
	return &StatusMismatchCheck{
		BaseCheck: NewBaseCheck(model.InconsistencyStatusMismatch, "Realtime and uptime feeds disagree on status"),
	}
}

// Run compares the two feeds when both are present.
func (c *StatusMismatchCheck) Run(input Input) []model.Inconsistency {
	if input.Realtime == nil || input.Uptime == nil {
		return nil
	}

	realtime := strings.ToLower(strings.TrimSpace(input.Realtime.Status.String()))
	uptime := strings.ToLower(strings.TrimSpace(input.Uptime.Status.String()))
	if realtime == "" || uptime == "" {
		return nil
	}

	// Each feed's vocabulary collapses to online/offline the same way the
	// status resolver reads it.
	realtimeNorm := model.StatusOffline
	if realtime == model.StatusOnline {
		realtimeNorm = model.StatusOnline
	}
	uptimeNorm := model.StatusOnline
	if uptime == model.StatusOffline {
		uptimeNorm = model.StatusOffline
	}

	if realtimeNorm == uptimeNorm {
		return nil
	}

	return []model.Inconsistency{{
		Kind:        model.InconsistencyStatusMismatch,
		Description: fmt.Sprintf("realtime feed reports %s while uptime feed reports %s", realtime, uptime),
		Details: map[string]string{
			"realtime_status": realtime,
			"uptime_status":   uptime,
		},
	}}
}
