package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// Normalizer converts raw history records into canonical sessions. Every
// pass rebuilds sessions from scratch; nothing is cached or mutated.
type Normalizer struct {
	corrector *Corrector
}

// NewNormalizer creates a normalizer using the given corrector.
func NewNormalizer(corrector *Corrector) *Normalizer {
	return &Normalizer{corrector: corrector}
}

// Normalize converts one raw session into its canonical form. Missing or
// malformed fields degrade to defaults; normalization never fails.
func (n *Normalizer) Normalize(raw model.RawSession, now time.Time) model.Session {
	s := model.Session{
		ID:            sessionID(raw.ID, now),
		Type:          stringOrUnknown(raw.Type),
		Status:        stringOrUnknown(raw.Status),
		Reason:        stringOrUnknown(raw.Reason),
		Method:        stringOrUnknown(raw.Method),
		ClientIP:      stringOrUnknown(raw.ClientIP),
		Router:        stringOrUnknown(raw.Router),
		DataSource:    stringOrUnknown(raw.DataSource),
		Traffic:       trafficStats(raw.Traffic),
		OriginalStart: raw.StartTime.Raw,
		OriginalEnd:   raw.EndTime.Raw,
	}

	start, startCorrected := n.corrector.CorrectTimestamp(raw.StartTime.Time, now)
	end, endCorrected := n.corrector.CorrectTimestamp(raw.EndTime.Time, now)
	s.StartTime = start
	s.EndTime = end
	s.TimestampCorrected = startCorrected || endCorrected

	// The backend-reported duration is known to be unreliable; it is only
	// used when the timestamps cannot answer the question themselves.
	reported := int64(raw.DurationSeconds)
	switch {
	case s.IsCurrent() && !start.IsZero():
		// Live duration, recomputed on every call.
		s.DurationSeconds = int64(now.Sub(start).Seconds())
	case !start.IsZero() && !end.IsZero():
		s.DurationSeconds = int64(end.Sub(start).Seconds())
		if n.corrector.StaticDurationMismatch(reported, s.DurationSeconds) {
			s.DurationCorrected = true
		}
	default:
		s.DurationSeconds = reported
	}

	if floored, wasFloored := n.corrector.FloorDuration(s.DurationSeconds); wasFloored {
		s.DurationSeconds = floored
		s.DurationCorrected = true
	}

	return s
}

// sessionID returns the raw identifier, or a generated fallback so every
// session stays addressable even with malformed input.
func sessionID(id model.FlexString, now time.Time) string {
	if v := strings.TrimSpace(id.String()); v != "" {
		return v
	}
	return fmt.Sprintf("session_%d_%s", now.Unix(), uuid.NewString()[:8])
}

// stringOrUnknown collapses absent or malformed values to "unknown" so null
// never propagates into the canonical model.
func stringOrUnknown(v model.FlexString) string {
	if trimmed := strings.TrimSpace(v.String()); trimmed != "" {
		return trimmed
	}
	return model.Unknown
}

func trafficStats(raw model.RawTraffic) model.TrafficStats {
	return model.TrafficStats{
		AvgDownload:   float64(raw.AvgDownload),
		MaxDownload:   float64(raw.MaxDownload),
		AvgUpload:     float64(raw.AvgUpload),
		MaxUpload:     float64(raw.MaxUpload),
		DownloadBytes: int64(raw.DownloadBytes),
		UploadBytes:   int64(raw.UploadBytes),
	}
}
