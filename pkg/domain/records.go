package domain

// RecordType identifies the kind of application record being uploaded
type RecordType string

const (
	RecordTypeVote     RecordType = "vote"
	RecordTypeFeedback RecordType = "feedback"
)

// ParseRecordType converts a path or query value into a RecordType
func ParseRecordType(s string) (RecordType, bool) {
	switch RecordType(s) {
	case RecordTypeVote:
		return RecordTypeVote, true
	case RecordTypeFeedback:
		return RecordTypeFeedback, true
	default:
		return "", false
	}
}

// VoteRecord is a vote as sent by the voting application.
// Fields keep the JSON value they arrived with.
type VoteRecord struct {
	ID        Field `json:"id"`
	ProjectID Field `json:"project_id"`
	UserID    Field `json:"user_id"`
	CreatedAt Field `json:"created_at"`
}

// FeedbackRecord is a feedback entry as sent by the voting application
type FeedbackRecord struct {
	ID        Field `json:"id"`
	ProjectID Field `json:"project_id"`
	UserID    Field `json:"user_id"`
	Title     Field `json:"title"`
	CreatedAt Field `json:"created_at"`
}

// Envelope is the canonical object serialized and stored on Irys.
// Field order is the serialized key order; absent fields are left out.
type Envelope struct {
	ID        Field      `json:"id,omitempty"`
	ProjectID Field      `json:"projectId,omitempty"`
	UserID    Field      `json:"userId,omitempty"`
	Title     Field      `json:"title,omitempty"`
	Timestamp Field      `json:"timestamp,omitempty"`
	Type      RecordType `json:"type"`
}

// Tag is a name/value annotation attached to an upload
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
