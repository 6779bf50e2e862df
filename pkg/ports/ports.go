//go:generate mockgen -source=ports.go -destination=../../internal/mock/ports_mock.go -package=mock

package ports

import (
	"context"
	"errors"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
)

// ErrNotFound is returned by stores when the requested item does not exist
var ErrNotFound = errors.New("not found")

// Uploader submits a payload with its tags to the storage network
type Uploader interface {
	Upload(ctx context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error)
}

// Pinger is implemented by adapters able to report reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReceiptStore keeps a trace of completed uploads
type ReceiptStore interface {
	Save(ctx context.Context, record *domain.UploadRecord) error
	Get(ctx context.Context, irysID string) (*domain.UploadRecord, error)
	ListByRecord(ctx context.Context, recordType domain.RecordType, recordID string) ([]*domain.UploadRecord, error)
}

// EventHandler processes a single event
type EventHandler func(ctx context.Context, event domain.Event) error

// EventBus publishes and delivers upload events
type EventBus interface {
	Publish(ctx context.Context, topic string, event domain.Event) error
	Subscribe(ctx context.Context, topic string, handler EventHandler) error
	Close() error
}

// MetricsCollector records relay metrics
type MetricsCollector interface {
	RecordUpload(recordType domain.RecordType, status string, duration time.Duration)
	RecordValidationFailure(recordType domain.RecordType, reason string)
	RecordDependencyStatus(name string, up bool)
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}
