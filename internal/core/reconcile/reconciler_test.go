package reconcile

import (
	"testing"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedReconciler(now time.Time) *Reconciler {
	return New(WithNow(func() time.Time { return now }))
}

func completedSession(id string, start, end time.Time, reported int64) model.RawSession {
	return model.RawSession{
		ID:              model.FlexString(id),
		Type:            "connected",
		Status:          "completed",
		StartTime:       model.FlexTime{Time: start, Raw: start.Format(time.RFC3339)},
		EndTime:         model.FlexTime{Time: end, Raw: end.Format(time.RFC3339)},
		DurationSeconds: model.FlexInt(reported),
	}
}

func kindsOf(inconsistencies []model.Inconsistency) map[string]int {
	kinds := make(map[string]int)
	for _, inc := range inconsistencies {
		kinds[inc.Kind]++
	}
	return kinds
}

func TestReconcileEmptyInput(t *testing.T) {
	r := fixedReconciler(testNow())

	timeline := r.Reconcile("conn-1", nil, nil, nil)

	assert.Equal(t, "conn-1", timeline.ConnectionID)
	assert.Empty(t, timeline.Events)
	assert.Empty(t, timeline.Inconsistencies)
	assert.Empty(t, timeline.Gaps)
	assert.Equal(t, model.StatusUnknown, timeline.CurrentStatus.Status)
	assert.Equal(t, model.ConfidenceLow, timeline.CurrentStatus.Confidence)
	assert.Equal(t, 0, timeline.ConfidenceScore)
}

func TestReconcileIdempotent(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	history := []model.RawSession{
		completedSession("s1", now.Add(-10*time.Hour), now.Add(-9*time.Hour), 3600),
		completedSession("s2", now.Add(-5*time.Hour), now.Add(-4*time.Hour), 3600),
	}
	uptime := &model.UptimeData{
		Status: "online",
		RecentEvents: []model.UptimeEvent{
			{Type: "online", Time: model.FlexTime{Time: now.Add(-2 * time.Hour)}},
		},
	}
	realtime := &model.RealtimeData{Status: "online"}

	first := r.Reconcile("conn-1", history, uptime, realtime)
	second := r.Reconcile("conn-1", history, uptime, realtime)

	assert.Equal(t, first, second)
}

func TestReconcileOrdering(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	history := []model.RawSession{
		completedSession("s2", now.Add(-5*time.Hour), now.Add(-4*time.Hour), 3600),
		completedSession("s1", now.Add(-10*time.Hour), now.Add(-9*time.Hour), 3600),
	}
	uptime := &model.UptimeData{
		RecentEvents: []model.UptimeEvent{
			{Type: "offline", Time: model.FlexTime{Time: now.Add(-7 * time.Hour)}},
		},
	}

	timeline := r.Reconcile("conn-1", history, uptime, nil)

	require.Len(t, timeline.Events, 5)
	for i := 1; i < len(timeline.Events); i++ {
		assert.False(t, timeline.Events[i].Timestamp.Before(timeline.Events[i-1].Timestamp))
	}
}

func TestReconcileLiveDurationGrows(t *testing.T) {
	now := testNow()
	start := now.Add(-time.Hour)
	raw := []model.RawSession{{
		ID:        "s1",
		Type:      "connected",
		Status:    "current",
		StartTime: model.FlexTime{Time: start},
	}}

	first := fixedReconciler(now).Reconcile("conn-1", raw, nil, nil)
	second := fixedReconciler(now.Add(30 * time.Second)).Reconcile("conn-1", raw, nil, nil)

	require.Len(t, first.Events, 1)
	require.Len(t, second.Events, 1)
	assert.Greater(t, second.Events[0].Meta.DurationSeconds, first.Events[0].Meta.DurationSeconds)
}

func TestReconcileCorrectionSymmetry(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	raw := []model.RawSession{{
		ID:        "s1",
		Type:      "connected",
		Status:    "current",
		StartTime: model.FlexTime{Time: now.Add(3 * time.Minute), Raw: "2026-08-30T12:03:00Z"},
	}}

	timeline := r.Reconcile("conn-1", raw, nil, nil)

	require.Len(t, timeline.Events, 1)
	event := timeline.Events[0]
	assert.Equal(t, now.Add(-2*time.Minute), event.Timestamp, "3 minutes ahead corrects to 2 minutes behind")
	assert.True(t, event.Meta.TimestampCorrected)
	assert.Equal(t, model.ConfidenceMedium, event.Confidence)
	assert.Equal(t, "2026-08-30T12:03:00Z", event.Meta.OriginalTimestamp)

	kinds := kindsOf(timeline.Inconsistencies)
	assert.Equal(t, 1, kinds[model.InconsistencyFutureTimestamp])
}

func TestReconcileDedupAcrossFeeds(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	connectAt := now.Add(-time.Hour)
	history := []model.RawSession{{
		ID:        "s1",
		Type:      "connected",
		Status:    "current",
		StartTime: model.FlexTime{Time: connectAt},
	}}
	uptime := &model.UptimeData{
		Status: "online",
		RecentEvents: []model.UptimeEvent{
			{Type: "online", Time: model.FlexTime{Time: connectAt.Add(30 * time.Second)}},
		},
	}

	timeline := r.Reconcile("conn-1", history, uptime, nil)

	require.Len(t, timeline.Events, 1, "the uptime event describes the same transition")
	assert.Equal(t, model.SourceHistory, timeline.Events[0].Source)
}

func TestReconcileStaticDurationScenario(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	history := []model.RawSession{
		completedSession("s1", now.Add(-10*time.Hour), now.Add(-10*time.Hour).Add(300*time.Second), 300),
		completedSession("s2", now.Add(-8*time.Hour), now.Add(-8*time.Hour).Add(4500*time.Second), 300),
		completedSession("s3", now.Add(-4*time.Hour), now.Add(-4*time.Hour).Add(300*time.Second), 300),
	}

	timeline := r.Reconcile("conn-1", history, nil, nil)

	kinds := kindsOf(timeline.Inconsistencies)
	assert.Equal(t, 1, kinds[model.InconsistencyStaticDuration], "one finding per pass, not one per session")

	var deviatingConnect *model.Event
	for i, e := range timeline.Events {
		if e.Meta.SessionID == "s2" && e.Type == model.EventConnect {
			deviatingConnect = &timeline.Events[i]
			break
		}
	}
	require.NotNil(t, deviatingConnect)
	assert.Equal(t, int64(4500), deviatingConnect.Meta.DurationSeconds, "corrected value wins over the placeholder")
	assert.True(t, deviatingConnect.Meta.DurationCorrected)
}

func TestReconcileStatusMismatchScenario(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	uptime := &model.UptimeData{Status: "offline"}
	realtime := &model.RealtimeData{Status: "online"}

	timeline := r.Reconcile("conn-1", nil, uptime, realtime)

	kinds := kindsOf(timeline.Inconsistencies)
	assert.Equal(t, 1, kinds[model.InconsistencyStatusMismatch])
	assert.Equal(t, model.StatusOnline, timeline.CurrentStatus.Status, "realtime outranks uptime")
	assert.Equal(t, model.ConfidenceMedium, timeline.CurrentStatus.Confidence)
	assert.Equal(t, 15, timeline.ConfidenceScore)
}

func TestReconcileGapScenario(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	history := []model.RawSession{
		{
			ID:        "s1",
			Status:    "completed",
			StartTime: model.FlexTime{Time: now.Add(-5 * time.Hour)},
		},
		{
			ID:        "s2",
			Status:    "completed",
			StartTime: model.FlexTime{Time: now.Add(-2 * time.Hour)},
		},
	}

	timeline := r.Reconcile("conn-1", history, nil, nil)

	require.Len(t, timeline.Events, 2)
	require.Len(t, timeline.Gaps, 1)
	assert.InDelta(t, 3.0, timeline.Gaps[0].DurationHours, 0.01)
}

func TestReconcileLastEventMismatch(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)
	history := []model.RawSession{
		completedSession("s1", now.Add(-3*time.Hour), now.Add(-time.Hour), 7200),
	}
	realtime := &model.RealtimeData{
		Status:        "online",
		LastEventTime: model.FlexTime{Time: now.Add(-10 * time.Hour)},
	}

	timeline := r.Reconcile("conn-1", history, nil, realtime)

	kinds := kindsOf(timeline.Inconsistencies)
	assert.Equal(t, 1, kinds[model.InconsistencyLastEventMismatch])
}

func TestReconcileRunsOnPartialFeeds(t *testing.T) {
	now := testNow()
	r := fixedReconciler(now)

	timeline := r.Reconcile("conn-1", nil, nil, &model.RealtimeData{Status: "online"})

	assert.Empty(t, timeline.Events)
	assert.Equal(t, model.StatusOnline, timeline.CurrentStatus.Status)
	assert.Equal(t, model.ConfidenceMedium, timeline.CurrentStatus.Confidence)
	assert.NotEqual(t, 0, timeline.ConfidenceScore)
}
