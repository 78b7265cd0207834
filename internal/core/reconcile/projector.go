package reconcile

import (
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Projector expands each canonical session into its connect/disconnect
// events.
type Projector struct{}

// NewProjector creates a projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Project returns zero, one, or two events for a session: a connect at the
// corrected start time, and a disconnect at the corrected end time for
// sessions that actually ended. A current session never emits a disconnect,
// regardless of any end time present in the raw data.
func (p *Projector) Project(s model.Session) []model.Event {
	events := make([]model.Event, 0, 2)
	if s.StartTime.IsZero() {
		return events
	}

	confidence := model.ConfidenceHigh
	if s.TimestampCorrected {
		confidence = model.ConfidenceMedium
	}
	events = append(events, model.Event{
		Timestamp:  s.StartTime,
		Type:       model.EventConnect,
		Source:     model.SourceHistory,
		Confidence: confidence,
		Meta: model.EventMeta{
			SessionID:          s.ID,
			DataSource:         s.DataSource,
			DurationSeconds:    s.DurationSeconds,
			OriginalTimestamp:  s.OriginalStart,
			TimestampCorrected: s.TimestampCorrected,
			DurationCorrected:  s.DurationCorrected,
		},
	})

	if !s.EndTime.IsZero() && !s.IsCurrent() {
		events = append(events, model.Event{
			Timestamp:  s.EndTime,
			Type:       model.EventDisconnect,
			Source:     model.SourceHistory,
			Confidence: model.ConfidenceHigh,
			Meta: model.EventMeta{
				SessionID:          s.ID,
				DataSource:         s.DataSource,
				DurationSeconds:    s.DurationSeconds,
				OriginalTimestamp:  s.OriginalEnd,
				TimestampCorrected: s.TimestampCorrected,
				DurationCorrected:  s.DurationCorrected,
				Reason:             s.Reason,
			},
		})
	}

	return events
}
