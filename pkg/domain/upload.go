package domain

import "time"

// Receipt is returned by the uploader once the storage network accepted a payload
type Receipt struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// UploadResult is what the relay reports back to the caller
type UploadResult struct {
	IrysID     string `json:"irysId"`
	GatewayURL string `json:"gatewayUrl"`
}

// UploadRecord is the stored trace of a completed upload
type UploadRecord struct {
	IrysID     string     `json:"irys_id"`
	GatewayURL string     `json:"gateway_url"`
	RecordType RecordType `json:"record_type"`
	RecordID   string     `json:"record_id"`
	ProjectID  string     `json:"project_id"`
	UserID     string     `json:"user_id"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

// Upload outcome labels
const (
	UploadStatusSucceeded = "succeeded"
	UploadStatusFailed    = "failed"
)

// EventType represents the type of an upload event
type EventType string

const (
	EventTypeUploadCompleted EventType = "upload.completed"
	EventTypeUploadFailed    EventType = "upload.failed"
)

// TopicUploadEvents is the bus topic carrying upload outcome events
const TopicUploadEvents = "upload.events"

// Event is published on the event bus after every upload attempt
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
