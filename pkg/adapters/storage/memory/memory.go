package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
)

// ReceiptStore implements ReceiptStore using in-memory maps.
// Records never expire.
type ReceiptStore struct {
	records  map[string]*domain.UploadRecord
	byRecord map[string][]string
	mu       sync.RWMutex
}

// NewReceiptStore creates a new in-memory receipt store
func NewReceiptStore() *ReceiptStore {
	return &ReceiptStore{
		records:  make(map[string]*domain.UploadRecord),
		byRecord: make(map[string][]string),
	}
}

// Save stores a copy of the upload record
func (s *ReceiptStore) Save(ctx context.Context, record *domain.UploadRecord) error {
	if record == nil || record.IrysID == "" {
		return fmt.Errorf("upload record has no irys id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to avoid mutations
	recordCopy := *record
	if _, exists := s.records[record.IrysID]; !exists {
		key := indexKey(record.RecordType, record.RecordID)
		s.byRecord[key] = append(s.byRecord[key], record.IrysID)
	}
	s.records[record.IrysID] = &recordCopy

	return nil
}

// Get retrieves an upload record by irys id
func (s *ReceiptStore) Get(ctx context.Context, irysID string) (*domain.UploadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[irysID]
	if !ok {
		return nil, fmt.Errorf("upload %s: %w", irysID, ports.ErrNotFound)
	}

	recordCopy := *record
	return &recordCopy, nil
}

// ListByRecord returns every upload of a record, oldest first
func (s *ReceiptStore) ListByRecord(ctx context.Context, recordType domain.RecordType, recordID string) ([]*domain.UploadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byRecord[indexKey(recordType, recordID)]
	records := make([]*domain.UploadRecord, 0, len(ids))
	for _, id := range ids {
		recordCopy := *s.records[id]
		records = append(records, &recordCopy)
	}

	return records, nil
}

func indexKey(recordType domain.RecordType, recordID string) string {
	return string(recordType) + ":" + recordID
}
