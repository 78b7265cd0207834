package reconcile

import (
	"testing"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCurrentSession(t *testing.T) {
	p := NewProjector()
	now := testNow()
	s := model.Session{
		ID:              "s1",
		Type:            "connected",
		Status:          "current",
		StartTime:       now.Add(-time.Hour),
		DurationSeconds: 3600,
		DataSource:      "radius",
		OriginalStart:   "2026-08-30 11:00:00",
	}

	events := p.Project(s)

	require.Len(t, events, 1, "a current session produces exactly one event")
	assert.Equal(t, model.EventConnect, events[0].Type)
	assert.Equal(t, model.SourceHistory, events[0].Source)
	assert.Equal(t, model.ConfidenceHigh, events[0].Confidence)
	assert.Equal(t, "s1", events[0].Meta.SessionID)
	assert.Equal(t, "radius", events[0].Meta.DataSource)
	assert.Equal(t, int64(3600), events[0].Meta.DurationSeconds)
	assert.Equal(t, "2026-08-30 11:00:00", events[0].Meta.OriginalTimestamp)
}

func TestProjectCurrentSessionIgnoresEndTime(t *testing.T) {
	p := NewProjector()
	now := testNow()
	s := model.Session{
		ID:        "s1",
		Status:    "current",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(-time.Minute), // stale end time in raw data
	}

	events := p.Project(s)

	require.Len(t, events, 1, "current sessions never emit a disconnect")
	assert.Equal(t, model.EventConnect, events[0].Type)
}

func TestProjectCompletedSession(t *testing.T) {
	p := NewProjector()
	now := testNow()
	s := model.Session{
		ID:              "s1",
		Status:          "completed",
		StartTime:       now.Add(-2 * time.Hour),
		EndTime:         now.Add(-time.Hour),
		DurationSeconds: 3600,
		Reason:          "lost carrier",
		OriginalEnd:     "2026-08-30 11:00:00",
	}

	events := p.Project(s)

	require.Len(t, events, 2)
	assert.Equal(t, model.EventConnect, events[0].Type)
	assert.Equal(t, model.EventDisconnect, events[1].Type)
	assert.Equal(t, model.ConfidenceHigh, events[1].Confidence)
	assert.Equal(t, "lost carrier", events[1].Meta.Reason)
	assert.Equal(t, "2026-08-30 11:00:00", events[1].Meta.OriginalTimestamp)
}

func TestProjectCorrectedSessionLowersConfidence(t *testing.T) {
	p := NewProjector()
	s := model.Session{
		ID:                 "s1",
		Status:             "completed",
		StartTime:          testNow().Add(-time.Hour),
		TimestampCorrected: true,
		DurationCorrected:  true,
	}

	events := p.Project(s)

	require.Len(t, events, 1)
	assert.Equal(t, model.ConfidenceMedium, events[0].Confidence)
	assert.True(t, events[0].Meta.TimestampCorrected)
	assert.True(t, events[0].Meta.DurationCorrected)
}

func TestProjectSessionWithoutStart(t *testing.T) {
	p := NewProjector()

	events := p.Project(model.Session{ID: "s1", Status: "completed"})

	assert.Empty(t, events)
}
