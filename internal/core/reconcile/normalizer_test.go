package reconcile

import (
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(NewCorrector(0))
}

func TestNormalizeDefaults(t *testing.T) {
	n := newTestNormalizer()

	s := n.Normalize(model.RawSession{}, testNow())

	assert.True(t, strings.HasPrefix(s.ID, "session_"), "empty identifier gets a generated fallback")
	assert.Equal(t, model.Unknown, s.Type)
	assert.Equal(t, model.Unknown, s.Status)
	assert.Equal(t, model.Unknown, s.Reason)
	assert.Equal(t, model.Unknown, s.Method)
	assert.Equal(t, model.Unknown, s.ClientIP)
	assert.Equal(t, model.Unknown, s.DataSource)
	assert.Equal(t, model.TrafficStats{}, s.Traffic)
}

func TestNormalizeFallbackIDsAreUnique(t *testing.T) {
	n := newTestNormalizer()
	now := testNow()

	a := n.Normalize(model.RawSession{}, now)
	b := n.Normalize(model.RawSession{}, now)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNormalizeLiveDuration(t *testing.T) {
	n := newTestNormalizer()
	now := testNow()
	raw := model.RawSession{
		ID:              "s1",
		Status:          "current",
		Type:            "connected",
		StartTime:       model.FlexTime{Time: now.Add(-time.Hour), Raw: "2026-08-30 11:00:00"},
		DurationSeconds: 300,
	}

	s := n.Normalize(raw, now)
	assert.Equal(t, int64(3600), s.DurationSeconds, "live duration ignores the reported value")

	// A later call sees a strictly larger duration.
	later := n.Normalize(raw, now.Add(10*time.Second))
	assert.Greater(t, later.DurationSeconds, s.DurationSeconds)
}

func TestNormalizeDerivedDurationOverridesReported(t *testing.T) {
	n := newTestNormalizer()
	now := testNow()
	raw := model.RawSession{
		ID:              "s1",
		Status:          "completed",
		StartTime:       model.FlexTime{Time: now.Add(-2 * time.Hour)},
		EndTime:         model.FlexTime{Time: now.Add(-45 * time.Minute)},
		DurationSeconds: 300,
	}

	s := n.Normalize(raw, now)

	assert.Equal(t, int64(4500), s.DurationSeconds)
	assert.True(t, s.DurationCorrected, "static placeholder deviating from timestamps is corrected")
}

func TestNormalizeReportedDurationFallback(t *testing.T) {
	n := newTestNormalizer()
	raw := model.RawSession{
		ID:              "s1",
		Status:          "completed",
		DurationSeconds: 1234,
	}

	s := n.Normalize(raw, testNow())

	assert.Equal(t, int64(1234), s.DurationSeconds, "without timestamps the reported value is the last resort")
}

func TestNormalizeFutureStartCorrected(t *testing.T) {
	n := newTestNormalizer()
	now := testNow()
	raw := model.RawSession{
		ID:        "s1",
		Status:    "current",
		Type:      "connected",
		StartTime: model.FlexTime{Time: now.Add(3 * time.Minute), Raw: "2026-08-30T12:03:00Z"},
	}

	s := n.Normalize(raw, now)

	assert.True(t, s.TimestampCorrected)
	assert.Equal(t, now.Add(-2*time.Minute), s.StartTime)
	assert.Equal(t, int64(120), s.DurationSeconds)
	assert.Equal(t, "2026-08-30T12:03:00Z", s.OriginalStart)
}

func TestNormalizeNegativeDurationFloored(t *testing.T) {
	n := newTestNormalizer()
	now := testNow()
	raw := model.RawSession{
		ID:        "s1",
		Status:    "completed",
		StartTime: model.FlexTime{Time: now.Add(-time.Hour)},
		EndTime:   model.FlexTime{Time: now.Add(-70 * time.Minute)},
	}

	s := n.Normalize(raw, now)

	assert.Equal(t, int64(60), s.DurationSeconds)
	assert.True(t, s.DurationCorrected)
}

func TestNormalizeTraffic(t *testing.T) {
	n := newTestNormalizer()
	raw := model.RawSession{
		ID: "s1",
		Traffic: model.RawTraffic{
			AvgDownload:   12.5,
			MaxDownload:   80,
			DownloadBytes: 1024,
			UploadBytes:   512,
		},
	}

	s := n.Normalize(raw, testNow())

	assert.Equal(t, 12.5, s.Traffic.AvgDownload)
	assert.Equal(t, 80.0, s.Traffic.MaxDownload)
	assert.Equal(t, int64(1024), s.Traffic.DownloadBytes)
	assert.Equal(t, int64(512), s.Traffic.UploadBytes)
	assert.Equal(t, 0.0, s.Traffic.AvgUpload)
}
