package memory

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/google/uuid"
)

// Upload is a payload accepted by the in-memory uploader
type Upload struct {
	Receipt domain.Receipt
	Data    []byte
	Tags    []domain.Tag
}

// Uploader implements Uploader in process.
// Receipt ids mimic Irys transaction ids (43 base64url characters).
type Uploader struct {
	uploads map[string]Upload
	order   []string
	mu      sync.RWMutex
}

// NewUploader creates a new in-memory uploader
func NewUploader() *Uploader {
	return &Uploader{
		uploads: make(map[string]Upload),
	}
}

// Upload stores the payload and returns a fresh receipt
func (u *Uploader) Upload(ctx context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nonce := uuid.New()
	sum := sha256.Sum256(append(nonce[:], data...))
	receipt := domain.Receipt{
		ID:        base64.RawURLEncoding.EncodeToString(sum[:]),
		Timestamp: time.Now().UnixMilli(),
	}

	stored := Upload{
		Receipt: receipt,
		Data:    append([]byte(nil), data...),
		Tags:    append([]domain.Tag(nil), tags...),
	}

	u.mu.Lock()
	u.uploads[receipt.ID] = stored
	u.order = append(u.order, receipt.ID)
	u.mu.Unlock()

	return &receipt, nil
}

// Get returns a stored upload by receipt id
func (u *Uploader) Get(id string) (Upload, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	upload, ok := u.uploads[id]
	if !ok {
		return Upload{}, fmt.Errorf("upload not found: %s", id)
	}
	return upload, nil
}

// Uploads returns all uploads in submission order
func (u *Uploader) Uploads() []Upload {
	u.mu.RLock()
	defer u.mu.RUnlock()

	uploads := make([]Upload, 0, len(u.order))
	for _, id := range u.order {
		uploads = append(uploads, u.uploads[id])
	}
	return uploads
}

// Ping always succeeds
func (u *Uploader) Ping(ctx context.Context) error {
	return nil
}
