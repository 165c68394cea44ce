package domain

import (
	"encoding/json"
	"time"
)

// DeviceInfo is a static snapshot taken once per session and attached
// verbatim to every event.
type DeviceInfo map[string]any

// AnalyticsEvent is one queued usage event. Metadata keys are flattened
// into the top-level object on the wire, matching what the ingest
// endpoint has always received.
type AnalyticsEvent struct {
	EventType  string
	SessionID  string
	Timestamp  time.Time
	DeviceInfo DeviceInfo
	Metadata   map[string]any
}

func (e AnalyticsEvent) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Metadata)+4)
	for k, v := range e.Metadata {
		out[k] = v
	}
	out["eventType"] = e.EventType
	out["sessionId"] = e.SessionID
	out["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	if e.DeviceInfo != nil {
		out["deviceInfo"] = e.DeviceInfo
	}
	return json.Marshal(out)
}

// AnalyticsBatch is the body of POST /api/analytics.
type AnalyticsBatch struct {
	Events         []AnalyticsEvent `json:"events"`
	BatchTimestamp string           `json:"batchTimestamp"`
}

// AnalyticsEventRecord is the stored form of an ingested event. Payload
// keeps the full event object so metadata keys are never lost.
type AnalyticsEventRecord struct {
	ID             string          `db:"id"`
	EventType      string          `db:"event_type"`
	SessionID      string          `db:"session_id"`
	UserID         *string         `db:"user_id"`
	Payload        json.RawMessage `db:"payload"`
	BatchTimestamp string          `db:"batch_timestamp"`
}

type EventTypeCount struct {
	EventType string `db:"event_type" json:"eventType"`
	Count     int64  `db:"count" json:"count"`
}
