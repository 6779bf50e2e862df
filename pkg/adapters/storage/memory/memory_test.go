package memory

import (
	"context"
	"testing"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(irysID, recordID string) *domain.UploadRecord {
	return &domain.UploadRecord{
		IrysID:     irysID,
		GatewayURL: "https://gateway.irys.xyz/" + irysID,
		RecordType: domain.RecordTypeVote,
		RecordID:   recordID,
		ProjectID:  "p1",
		UserID:     "u1",
		UploadedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReceiptStore_SaveAndGet(t *testing.T) {
	s := NewReceiptStore()
	ctx := context.Background()

	rec := record("abc123", "v1")
	require.NoError(t, s.Save(ctx, rec))

	// mutations after save must not leak into the store
	rec.UserID = "changed"

	got, err := s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "https://gateway.irys.xyz/abc123", got.GatewayURL)
}

func TestReceiptStore_GetMissing(t *testing.T) {
	_, err := NewReceiptStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestReceiptStore_SaveRejectsEmptyID(t *testing.T) {
	s := NewReceiptStore()
	assert.Error(t, s.Save(context.Background(), nil))
	assert.Error(t, s.Save(context.Background(), &domain.UploadRecord{}))
}

func TestReceiptStore_ListByRecord(t *testing.T) {
	s := NewReceiptStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, record("first", "v1")))
	require.NoError(t, s.Save(ctx, record("second", "v1")))
	require.NoError(t, s.Save(ctx, record("other", "v2")))
	// saving the same receipt twice does not duplicate the index
	require.NoError(t, s.Save(ctx, record("first", "v1")))

	got, err := s.ListByRecord(ctx, domain.RecordTypeVote, "v1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].IrysID)
	assert.Equal(t, "second", got[1].IrysID)

	none, err := s.ListByRecord(ctx, domain.RecordTypeFeedback, "v1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
