package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service relays vote and feedback records to Irys
type Service struct {
	uploader  ports.Uploader
	store     ports.ReceiptStore
	eventBus  ports.EventBus
	metrics   ports.MetricsCollector
	validator *Validator
	logger    *zap.Logger

	applicationID string
	gatewayURL    string
	now           func() time.Time
}

// upload describes one record ready to be submitted
type upload struct {
	recordType domain.RecordType
	recordID   string
	projectID  string
	userID     string
	envelope   domain.Envelope
}

// NewService creates a new relay service
func NewService(
	uploader ports.Uploader,
	store ports.ReceiptStore,
	eventBus ports.EventBus,
	metrics ports.MetricsCollector,
	validator *Validator,
	logger *zap.Logger,
	applicationID, gatewayURL string,
) *Service {
	return &Service{
		uploader:      uploader,
		store:         store,
		eventBus:      eventBus,
		metrics:       metrics,
		validator:     validator,
		logger:        logger,
		applicationID: applicationID,
		gatewayURL:    gatewayURL,
		now:           time.Now,
	}
}

// UploadVote validates a vote and uploads its envelope
func (s *Service) UploadVote(ctx context.Context, rec *domain.VoteRecord) (*domain.UploadResult, error) {
	if err := s.validator.ValidateVote(rec); err != nil {
		s.rejected(domain.RecordTypeVote, err)
		return nil, err
	}

	return s.upload(ctx, upload{
		recordType: domain.RecordTypeVote,
		recordID:   rec.ID.String(),
		projectID:  rec.ProjectID.String(),
		userID:     rec.UserID.String(),
		envelope:   VoteEnvelope(rec),
	})
}

// UploadFeedback validates a feedback entry and uploads its envelope
func (s *Service) UploadFeedback(ctx context.Context, rec *domain.FeedbackRecord) (*domain.UploadResult, error) {
	if err := s.validator.ValidateFeedback(rec); err != nil {
		s.rejected(domain.RecordTypeFeedback, err)
		return nil, err
	}

	return s.upload(ctx, upload{
		recordType: domain.RecordTypeFeedback,
		recordID:   rec.ID.String(),
		projectID:  rec.ProjectID.String(),
		userID:     rec.UserID.String(),
		envelope:   FeedbackEnvelope(rec),
	})
}

// DecodeRecord decodes the truthy request value of field into a record
func (s *Service) DecodeRecord(field string, raw json.RawMessage, dst any) error {
	return s.validator.DecodeRecord(field, raw, dst)
}

// RecordRejected counts a request refused before reaching the service,
// such as an absent or undecodable record
func (s *Service) RecordRejected(recordType domain.RecordType, err error) {
	s.rejected(recordType, err)
}

// GetUpload returns a stored upload by its irys id
func (s *Service) GetUpload(ctx context.Context, irysID string) (*domain.UploadRecord, error) {
	return s.store.Get(ctx, irysID)
}

// ListRecordUploads returns every stored upload of a record
func (s *Service) ListRecordUploads(ctx context.Context, recordType domain.RecordType, recordID string) ([]*domain.UploadRecord, error) {
	return s.store.ListByRecord(ctx, recordType, recordID)
}

// GatewayURL returns the retrieval URL of an upload
func (s *Service) GatewayURL(irysID string) string {
	return s.gatewayURL + irysID
}

func (s *Service) upload(ctx context.Context, u upload) (*domain.UploadResult, error) {
	// Accepted uploads run to completion even if the client goes away
	ctx = context.WithoutCancel(ctx)
	start := s.now()

	if s.uploader == nil {
		return nil, s.failed(ctx, u, start, ErrUploaderNotConfigured)
	}

	payload, err := json.Marshal(u.envelope)
	if err != nil {
		return nil, s.failed(ctx, u, start, fmt.Errorf("failed to marshal envelope: %w", err))
	}

	tags := BuildTags(s.applicationID, u.recordType, u.projectID, u.userID)

	receipt, err := s.submit(ctx, payload, tags)
	if err != nil {
		return nil, s.failed(ctx, u, start, err)
	}
	if receipt == nil || receipt.ID == "" {
		return nil, s.failed(ctx, u, start, errors.New("uploader returned an empty receipt"))
	}

	result := &domain.UploadResult{
		IrysID:     receipt.ID,
		GatewayURL: s.GatewayURL(receipt.ID),
	}
	duration := s.now().Sub(start)

	s.logger.Info(fmt.Sprintf("%s uploaded to Irys: %s", label(u.recordType), result.GatewayURL),
		zap.String("record_type", string(u.recordType)),
		zap.String("record_id", u.recordID),
		zap.String("irys_id", result.IrysID),
		zap.String("gateway_url", result.GatewayURL),
		zap.Duration("duration", duration))

	s.metrics.RecordUpload(u.recordType, domain.UploadStatusSucceeded, duration)

	record := &domain.UploadRecord{
		IrysID:     result.IrysID,
		GatewayURL: result.GatewayURL,
		RecordType: u.recordType,
		RecordID:   u.recordID,
		ProjectID:  u.projectID,
		UserID:     u.userID,
		UploadedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save upload record",
			zap.String("irys_id", result.IrysID),
			zap.Error(err))
	}

	s.publish(ctx, domain.EventTypeUploadCompleted, map[string]interface{}{
		"record_type": string(u.recordType),
		"record_id":   u.recordID,
		"project_id":  u.projectID,
		"irys_id":     result.IrysID,
		"gateway_url": result.GatewayURL,
	})

	return result, nil
}

// submit calls the uploader, turning a panic into an upload error
func (s *Service) submit(ctx context.Context, payload []byte, tags []domain.Tag) (receipt *domain.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				err = rErr
			} else {
				err = errors.New(UnknownErrorMessage)
			}
			receipt = nil
		}
	}()

	return s.uploader.Upload(ctx, payload, tags)
}

// failed logs, counts and publishes an upload failure and returns it wrapped
func (s *Service) failed(ctx context.Context, u upload, start time.Time, err error) error {
	uploadErr := &UploadError{RecordType: u.recordType, Err: err}
	message := ErrorMessage(uploadErr)

	s.logger.Error(fmt.Sprintf("error uploading %s to Irys", u.recordType),
		zap.String("record_type", string(u.recordType)),
		zap.String("record_id", u.recordID),
		zap.String("error", message))

	s.metrics.RecordUpload(u.recordType, domain.UploadStatusFailed, s.now().Sub(start))

	s.publish(ctx, domain.EventTypeUploadFailed, map[string]interface{}{
		"record_type": string(u.recordType),
		"record_id":   u.recordID,
		"project_id":  u.projectID,
		"error":       message,
	})

	return uploadErr
}

func (s *Service) rejected(recordType domain.RecordType, err error) {
	reason := "invalid"
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		reason = "missing_field"
	}

	s.logger.Debug("upload request rejected",
		zap.String("record_type", string(recordType)),
		zap.String("reason", reason),
		zap.Error(err))

	s.metrics.RecordValidationFailure(recordType, reason)
}

// publish publishes an upload event, logging failures
func (s *Service) publish(ctx context.Context, eventType domain.EventType, data map[string]interface{}) {
	event := domain.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: s.now().UTC(),
		Data:      data,
	}

	if err := s.eventBus.Publish(ctx, domain.TopicUploadEvents, event); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", string(eventType)),
			zap.Error(err))
	}
}

// label returns the capitalised record type used in log messages
func label(recordType domain.RecordType) string {
	switch recordType {
	case domain.RecordTypeVote:
		return "Vote"
	case domain.RecordTypeFeedback:
		return "Feedback"
	default:
		return string(recordType)
	}
}
