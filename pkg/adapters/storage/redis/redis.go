package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReceiptStore implements ReceiptStore using Redis
type ReceiptStore struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewReceiptStore creates a new Redis receipt store
func NewReceiptStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ReceiptStore {
	return &ReceiptStore{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

// Save persists an upload record and indexes it under its source record
func (s *ReceiptStore) Save(ctx context.Context, record *domain.UploadRecord) error {
	if record == nil || record.IrysID == "" {
		return fmt.Errorf("upload record has no irys id")
	}

	// Serialize record
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal upload record: %w", err)
	}

	indexKey := getIndexKey(record.RecordType, record.RecordID)

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, getUploadKey(record.IrysID), data, s.ttl)
	pipe.RPush(ctx, indexKey, record.IrysID)
	pipe.Expire(ctx, indexKey, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save upload record: %w", err)
	}

	s.logger.Debug("upload record saved",
		zap.String("irys_id", record.IrysID),
		zap.String("record_type", string(record.RecordType)),
		zap.String("record_id", record.RecordID))

	return nil
}

// Get retrieves an upload record by irys id
func (s *ReceiptStore) Get(ctx context.Context, irysID string) (*domain.UploadRecord, error) {
	data, err := s.client.Get(ctx, getUploadKey(irysID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("upload %s: %w", irysID, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get upload record: %w", err)
	}

	var record domain.UploadRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upload record: %w", err)
	}

	return &record, nil
}

// ListByRecord returns every upload of a record, oldest first.
// Index entries whose upload key already expired are skipped.
func (s *ReceiptStore) ListByRecord(ctx context.Context, recordType domain.RecordType, recordID string) ([]*domain.UploadRecord, error) {
	ids, err := s.client.LRange(ctx, getIndexKey(recordType, recordID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read record index: %w", err)
	}

	records := make([]*domain.UploadRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// getUploadKey returns the Redis key for an upload record
func getUploadKey(irysID string) string {
	return fmt.Sprintf("irys:upload:%s", irysID)
}

// getIndexKey returns the Redis key listing the uploads of a record
func getIndexKey(recordType domain.RecordType, recordID string) string {
	return fmt.Sprintf("irys:record:%s:%s", recordType, recordID)
}
