package prometheus

import (
	"testing"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordUpload(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordUpload(domain.RecordTypeVote, domain.UploadStatusSucceeded, 200*time.Millisecond)
	c.RecordUpload(domain.RecordTypeVote, domain.UploadStatusSucceeded, 300*time.Millisecond)
	c.RecordUpload(domain.RecordTypeFeedback, domain.UploadStatusFailed, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.uploads.WithLabelValues("vote", domain.UploadStatusSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.uploads.WithLabelValues("feedback", domain.UploadStatusFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.uploads.WithLabelValues("feedback", domain.UploadStatusSucceeded)))
}

func TestCollector_RecordValidationFailure(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordValidationFailure(domain.RecordTypeFeedback, "missing_field")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.validationFailures.WithLabelValues("feedback", "missing_field")))
}

func TestCollector_RecordDependencyStatus(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordDependencyStatus("redis", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.dependencyUp.WithLabelValues("redis")))

	c.RecordDependencyStatus("redis", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.dependencyUp.WithLabelValues("redis")))
}

func TestCollector_ObserveHTTPRequest(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveHTTPRequest("POST", "/api/upload-vote", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "/api/upload-vote", "200")))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	assert.NotPanics(t, func() { NewCollector(prometheus.NewRegistry()) })
	assert.Panics(t, func() { NewCollector(reg) })

	families, err := reg.Gather()
	require.NoError(t, err)
	// vectors without observations are not exported yet
	assert.Empty(t, families)
}
