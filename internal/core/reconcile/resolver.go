package reconcile

import (
	"strings"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Resolver determines the connection's current status from the three feeds
// using a fixed source-priority order: a current history session wins, then
// the realtime snapshot, then the uptime feed's coarse status.
type Resolver struct{}

// NewResolver creates a resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve applies the priority rules and records which sources contributed
// usable data to the determination.
func (r *Resolver) Resolve(sessions []model.Session, uptime *model.UptimeData, realtime *model.RealtimeData, now time.Time) model.CurrentStatus {
	status := model.CurrentStatus{
		Status:       model.StatusUnknown,
		Confidence:   model.ConfidenceLow,
		DeterminedAt: now,
		Sources:      make([]string, 0, 3),
	}

	hasCurrent := false
	for _, s := range sessions {
		if s.IsCurrent() {
			hasCurrent = true
			break
		}
	}

	realtimeStatus := ""
	if realtime != nil {
		realtimeStatus = strings.ToLower(strings.TrimSpace(realtime.Status.String()))
	}
	uptimeStatus := ""
	if uptime != nil {
		uptimeStatus = strings.ToLower(strings.TrimSpace(uptime.Status.String()))
	}

	if len(sessions) > 0 {
		status.Sources = append(status.Sources, model.SourceHistory)
	}
	if realtimeStatus != "" {
		status.Sources = append(status.Sources, model.SourceRealtime)
	}
	if uptimeStatus != "" {
		status.Sources = append(status.Sources, model.SourceUptime)
	}

	switch {
	case hasCurrent:
		status.Status = model.StatusOnline
		status.Confidence = model.ConfidenceHigh
	case realtimeStatus != "":
		if realtimeStatus == model.StatusOnline {
			status.Status = model.StatusOnline
		} else {
			status.Status = model.StatusOffline
		}
		status.Confidence = model.ConfidenceMedium
	case uptimeStatus != "":
		if uptimeStatus == model.StatusOffline {
			status.Status = model.StatusOffline
		} else {
			status.Status = model.StatusOnline
		}
		status.Confidence = model.ConfidenceLow
	}

	return status
}
