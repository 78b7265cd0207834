package model

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// RawSession is one record from the history feed. The feed aggregates several
// accounting backends that name the same fields differently, so decoding
// coalesces the known alternates instead of binding to a single schema.
// Records are immutable once fetched.
type RawSession struct {
	ID              FlexString
	Type            FlexString
	Status          FlexString
	StartTime       FlexTime
	EndTime         FlexTime
	DurationSeconds FlexInt
	Traffic         RawTraffic
	Reason          FlexString
	Method          FlexString
	ClientIP        FlexString
	Router          FlexString
	DataSource      FlexString
}

// RawTraffic carries the optional per-session traffic statistics.
type RawTraffic struct {
	AvgDownload   FlexFloat `json:"avg_download"`
	MaxDownload   FlexFloat `json:"max_download"`
	AvgUpload     FlexFloat `json:"avg_upload"`
	MaxUpload     FlexFloat `json:"max_upload"`
	DownloadBytes FlexInt   `json:"download_bytes"`
	UploadBytes   FlexInt   `json:"upload_bytes"`
}

func (r *RawSession) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &m); err != nil {
		return err
	}

	pick := func(keys ...string) []byte {
		for _, k := range keys {
			if v, ok := m[k]; ok {
				return v
			}
		}
		return nil
	}

	if v := pick("session_id", "acct_session_id", "id"); v != nil {
		_ = r.ID.UnmarshalJSON(v)
	}
	if v := pick("session_type", "type"); v != nil {
		_ = r.Type.UnmarshalJSON(v)
	}
	if v := pick("status", "state"); v != nil {
		_ = r.Status.UnmarshalJSON(v)
	}
	if v := pick("start_time", "acct_start_time", "started_at"); v != nil {
		_ = r.StartTime.UnmarshalJSON(v)
	}
	if v := pick("end_time", "acct_stop_time", "ended_at"); v != nil {
		_ = r.EndTime.UnmarshalJSON(v)
	}
	if v := pick("duration_seconds", "acct_session_time", "duration"); v != nil {
		_ = r.DurationSeconds.UnmarshalJSON(v)
	}
	if v := pick("terminate_cause", "reason", "disconnect_reason"); v != nil {
		_ = r.Reason.UnmarshalJSON(v)
	}
	if v := pick("connection_method", "method", "nas_port_type"); v != nil {
		_ = r.Method.UnmarshalJSON(v)
	}
	if v := pick("client_ip", "framed_ip_address", "ip"); v != nil {
		_ = r.ClientIP.UnmarshalJSON(v)
	}
	if v := pick("router", "nas_identifier", "nas"); v != nil {
		_ = r.Router.UnmarshalJSON(v)
	}
	if v := pick("data_source", "source"); v != nil {
		_ = r.DataSource.UnmarshalJSON(v)
	}
	if v := pick("traffic", "statistics", "stats"); v != nil {
		// Malformed traffic blocks degrade to zeroed statistics.
		_ = sonic.Unmarshal(v, &r.Traffic)
	}
	return nil
}

// UptimeEvent is one entry of the uptime feed's recent-events list.
type UptimeEvent struct {
	Type            FlexString `json:"type"`
	Time            FlexTime   `json:"time"`
	DetectionMethod FlexString `json:"detection_method"`
	SecondsAgo      FlexInt    `json:"seconds_ago"`
	FormattedTime   FlexString `json:"formatted_time"`
}

// UptimeData is the uptime feed's payload for one connection.
type UptimeData struct {
	Status       FlexString    `json:"status"`
	RecentEvents []UptimeEvent `json:"recent_events"`
}

// RealtimeData is the realtime feed's status snapshot.
type RealtimeData struct {
	Status        FlexString `json:"status"`
	LastEventTime FlexTime   `json:"last_event_time"`
}
