package relay

import "github.com/aescanero/irys-upload-service/pkg/domain"

// ContentTypeJSON is the Content-Type tag value of every upload
const ContentTypeJSON = "application/json"

// VoteEnvelope maps a vote onto its stored shape
func VoteEnvelope(rec *domain.VoteRecord) domain.Envelope {
	return domain.Envelope{
		ID:        rec.ID,
		ProjectID: rec.ProjectID,
		UserID:    rec.UserID,
		Timestamp: rec.CreatedAt,
		Type:      domain.RecordTypeVote,
	}
}

// FeedbackEnvelope maps a feedback entry onto its stored shape
func FeedbackEnvelope(rec *domain.FeedbackRecord) domain.Envelope {
	return domain.Envelope{
		ID:        rec.ID,
		ProjectID: rec.ProjectID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Timestamp: rec.CreatedAt,
		Type:      domain.RecordTypeFeedback,
	}
}

// BuildTags returns the five tags attached to every upload, in order
func BuildTags(applicationID string, recordType domain.RecordType, projectID, userID string) []domain.Tag {
	return []domain.Tag{
		{Name: "application-id", Value: applicationID},
		{Name: "data-type", Value: string(recordType)},
		{Name: "project-id", Value: projectID},
		{Name: "user-id", Value: userID},
		{Name: "Content-Type", Value: ContentTypeJSON},
	}
}
