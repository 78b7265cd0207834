package model

import "time"

// Event types.
const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
)

// Event source tags.
const (
	SourceHistory  = "history"
	SourceUptime   = "uptime"
	SourceRealtime = "realtime"
)

// Confidence tags.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Connection status values.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusUnknown = "unknown"
)

// Inconsistency kinds.
const (
	InconsistencyFutureTimestamp   = "future_timestamp"
	InconsistencyStaticDuration    = "static_duration"
	InconsistencyStatusMismatch    = "status_mismatch"
	InconsistencyLastEventMismatch = "last_event_mismatch"
)

// Event is one connect/disconnect transition on the assembled timeline.
// Events are immutable once placed; assembly only orders them.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"`
	Source     string    `json:"source"`
	Confidence string    `json:"confidence"`
	Meta       EventMeta `json:"meta"`
}

// EventMeta carries the provenance of an event so the presentation layer can
// mark corrected entries; corrections are never silent.
type EventMeta struct {
	SessionID          string `json:"session_id,omitempty"`
	DataSource         string `json:"data_source,omitempty"`
	DurationSeconds    int64  `json:"duration_seconds,omitempty"`
	OriginalTimestamp  string `json:"original_timestamp,omitempty"`
	TimestampCorrected bool   `json:"timestamp_corrected,omitempty"`
	DurationCorrected  bool   `json:"duration_corrected,omitempty"`
	Reason             string `json:"reason,omitempty"`
	DetectionMethod    string `json:"detection_method,omitempty"`
	Age                string `json:"age,omitempty"`
}

// Inconsistency flags one cross-feed contradiction or data-quality defect.
// Purely informational; it never blocks timeline assembly.
type Inconsistency struct {
	Kind        string            `json:"kind"`
	Description string            `json:"description"`
	Details     map[string]string `json:"details,omitempty"`
}

// Gap marks a span between adjacent events long enough to suggest missing
// data. Descriptive only, never an error.
type Gap struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
	Description   string    `json:"description"`
}

// CurrentStatus is the resolved connection status with its provenance.
type CurrentStatus struct {
	Status       string    `json:"status"`
	Confidence   string    `json:"confidence"`
	DeterminedAt time.Time `json:"determined_at"`
	Sources      []string  `json:"sources"`
}

// Timeline is the complete reconciliation result for one connection. It is
// produced fresh on every pass; the caller owns its display lifetime.
type Timeline struct {
	ConnectionID    string          `json:"connection_id"`
	Events          []Event         `json:"events"`
	Inconsistencies []Inconsistency `json:"inconsistencies"`
	Gaps            []Gap           `json:"gaps"`
	CurrentStatus   CurrentStatus   `json:"current_status"`
	LastVerified    time.Time       `json:"last_verified"`
	ConfidenceScore int             `json:"confidence_score"`
}
