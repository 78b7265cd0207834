package model

import "time"

// Session status and type values recognized by the engine.
const (
	SessionStatusCurrent   = "current"
	SessionStatusCompleted = "completed"
	SessionTypeConnected   = "connected"
)

// Unknown is the canonical stand-in for absent or malformed string fields.
// The normalizer never lets a null escape into the canonical model.
const Unknown = "unknown"

// Session is the canonical form of one history record. It is rebuilt from
// scratch on every normalization pass and never mutated afterwards.
type Session struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Status          string       `json:"status"`
	StartTime       time.Time    `json:"start_time"`
	EndTime         time.Time    `json:"end_time"`
	DurationSeconds int64        `json:"duration_seconds"`
	Traffic         TrafficStats `json:"traffic"`
	Reason          string       `json:"reason"`
	Method          string       `json:"method"`
	ClientIP        string       `json:"client_ip"`
	Router          string       `json:"router"`
	DataSource      string       `json:"data_source"`

	// Correction audit trail, carried into event metadata.
	OriginalStart      string `json:"-"`
	OriginalEnd        string `json:"-"`
	TimestampCorrected bool   `json:"-"`
	DurationCorrected  bool   `json:"-"`
}

// TrafficStats aggregates per-session traffic; absent raw fields default to 0.
type TrafficStats struct {
	AvgDownload   float64 `json:"avg_download"`
	MaxDownload   float64 `json:"max_download"`
	AvgUpload     float64 `json:"avg_upload"`
	MaxUpload     float64 `json:"max_upload"`
	DownloadBytes int64   `json:"download_bytes"`
	UploadBytes   int64   `json:"upload_bytes"`
}

// IsCurrent reports whether the session is still open.
func (s Session) IsCurrent() bool {
	return s.Status == SessionStatusCurrent
}
