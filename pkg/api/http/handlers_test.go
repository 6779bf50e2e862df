package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aescanero/irys-upload-service/internal/application/health"
	"github.com/aescanero/irys-upload-service/internal/application/relay"
	"github.com/aescanero/irys-upload-service/internal/config"
	"github.com/aescanero/irys-upload-service/internal/mock"
	eventsmemory "github.com/aescanero/irys-upload-service/pkg/adapters/events/memory"
	metrics "github.com/aescanero/irys-upload-service/pkg/adapters/metrics/prometheus"
	storagememory "github.com/aescanero/irys-upload-service/pkg/adapters/storage/memory"
	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/caarlos0/env/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubReadiness struct {
	status *health.Status
}

func (s stubReadiness) GetStatus() *health.Status { return s.status }

// newTestServer builds a Server in loose mode around a mocked uploader and in-memory adapters
func newTestServer(t *testing.T, readiness ReadinessChecker) (*Server, *mock.MockUploader) {
	t.Helper()
	return newTestServerWithValidator(t, readiness, relay.NewValidator(false))
}

func newTestServerWithValidator(t *testing.T, readiness ReadinessChecker, validator *relay.Validator) (*Server, *mock.MockUploader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	uploader := mock.NewMockUploader(ctrl)
	collector := metrics.NewCollector(prometheus.NewRegistry())

	svc := relay.NewService(
		uploader,
		storagememory.NewReceiptStore(),
		eventsmemory.NewEventBus(),
		collector,
		validator,
		zap.NewNop(),
		"ProjectVotingApp",
		"https://gateway.irys.xyz/",
	)

	s := NewServer(&Config{
		Port:        0,
		ServiceName: "irys-upload-service",
		Relay:       svc,
		Readiness:   readiness,
		Metrics:     collector,
		Logger:      zap.NewNop(),
	})

	return s, uploader
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// ── /health ─────────────────────────────────────────────────────────────────

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)

	for _, body := range []string{"", `{"anything":true}`} {
		rr := doRequest(s, http.MethodGet, "/health", body)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok","service":"irys-upload-service"}`, rr.Body.String())
	}
}

// ── /ready ──────────────────────────────────────────────────────────────────

func TestHandleReady(t *testing.T) {
	tests := []struct {
		name       string
		readiness  ReadinessChecker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no monitor",
			readiness:  nil,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{}}`,
		},
		{
			name:       "not checked yet",
			readiness:  stubReadiness{},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{}}`,
		},
		{
			name: "healthy",
			readiness: stubReadiness{status: &health.Status{
				Healthy: true,
				Checks:  map[string]string{"redis": "ok"},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"redis":"ok"}}`,
		},
		{
			name: "unhealthy",
			readiness: stubReadiness{status: &health.Status{
				Healthy: false,
				Checks:  map[string]string{"redis": "ok", "uploader": "connection refused"},
			}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"redis":"ok","uploader":"connection refused"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, tt.readiness)

			rr := doRequest(s, http.MethodGet, "/ready", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── /api/upload-vote ────────────────────────────────────────────────────────

func TestHandleUploadVote_Success(t *testing.T) {
	s, uploader := newTestServer(t, nil)

	uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error) {
			assert.JSONEq(t,
				`{"id":"v1","projectId":"p1","userId":"u1","timestamp":"2024-01-01T00:00:00Z","type":"vote"}`,
				string(data))
			assert.Equal(t, []domain.Tag{
				{Name: "application-id", Value: "ProjectVotingApp"},
				{Name: "data-type", Value: "vote"},
				{Name: "project-id", Value: "p1"},
				{Name: "user-id", Value: "u1"},
				{Name: "Content-Type", Value: "application/json"},
			}, tags)
			return &domain.Receipt{ID: "abc123"}, nil
		})

	rr := doRequest(s, http.MethodPost, "/api/upload-vote",
		`{"voteData":{"id":"v1","project_id":"p1","user_id":"u1","created_at":"2024-01-01T00:00:00Z"}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"success":true,"irysId":"abc123","gatewayUrl":"https://gateway.irys.xyz/abc123"}`,
		rr.Body.String())
}

func TestHandleUploadVote_EmptyObjectIsUploaded(t *testing.T) {
	s, uploader := newTestServer(t, nil)

	uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error) {
			assert.JSONEq(t, `{"type":"vote"}`, string(data))
			assert.Equal(t, domain.Tag{Name: "project-id", Value: ""}, tags[2])
			return &domain.Receipt{ID: "abc123"}, nil
		})

	rr := doRequest(s, http.MethodPost, "/api/upload-vote", `{"voteData":{}}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleUploadVote_MissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "empty object", body: `{}`},
		{name: "null", body: `{"voteData":null}`},
		{name: "false", body: `{"voteData":false}`},
		{name: "zero", body: `{"voteData":0}`},
		{name: "empty string", body: `{"voteData":""}`},
		{name: "other field", body: `{"feedbackData":{"id":"f1"}}`},
		{name: "array body", body: `[{"voteData":{}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: the uploader must not be called
			s, _ := newTestServer(t, nil)

			rr := doRequest(s, http.MethodPost, "/api/upload-vote", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"voteData is required"}`, rr.Body.String())
		})
	}
}

func TestHandleUploadVote_LooseUploadsAsSent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPayload string
	}{
		{name: "partial record", body: `{"voteData":{"id":"v1"}}`, wantPayload: `{"id":"v1","type":"vote"}`},
		{name: "numeric id", body: `{"voteData":{"id":5,"project_id":"p1"}}`, wantPayload: `{"id":5,"projectId":"p1","type":"vote"}`},
		{name: "empty timestamp kept", body: `{"voteData":{"id":"v1","created_at":""}}`, wantPayload: `{"id":"v1","timestamp":"","type":"vote"}`},
		{name: "true", body: `{"voteData":true}`, wantPayload: `{"type":"vote"}`},
		{name: "array", body: `{"voteData":[1]}`, wantPayload: `{"type":"vote"}`},
		{name: "string", body: `{"voteData":"v1"}`, wantPayload: `{"type":"vote"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, uploader := newTestServer(t, nil)
			uploader.EXPECT().
				Upload(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, data []byte, _ []domain.Tag) (*domain.Receipt, error) {
					assert.Equal(t, tt.wantPayload, string(data))
					return &domain.Receipt{ID: "abc123"}, nil
				})

			rr := doRequest(s, http.MethodPost, "/api/upload-vote", tt.body)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestHandleUploadVote_StrictRejectsInvalidRecord(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "true", body: `{"voteData":true}`, wantErr: "invalid voteData: must be an object"},
		{name: "array", body: `{"voteData":[]}`, wantErr: "invalid voteData: must be an object"},
		{name: "string", body: `{"voteData":"v1"}`, wantErr: "invalid voteData: must be an object"},
		{name: "wrong sub-field type", body: `{"voteData":{"id":42,"project_id":"p1","user_id":"u1"}}`, wantErr: "invalid voteData: id must be a string"},
		{name: "missing ids", body: `{"voteData":{"id":"v1"}}`, wantErr: "invalid voteData: missing project_id, user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: the uploader must not be called
			s, _ := newTestServerWithValidator(t, nil, relay.NewValidator(true))

			rr := doRequest(s, http.MethodPost, "/api/upload-vote", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, rr)["error"])
		})
	}
}

func TestHandleUploadVote_DefaultConfigUploadsLooseRecords(t *testing.T) {
	cfg, err := config.LoadWithOptions(env.Options{Environment: map[string]string{
		"IRYS_PROVIDER": "memory",
	}})
	require.NoError(t, err)

	s, uploader := newTestServerWithValidator(t, nil, relay.NewValidator(cfg.Relay.StrictValidation))

	var payloads []string
	uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte, _ []domain.Tag) (*domain.Receipt, error) {
			payloads = append(payloads, string(data))
			return &domain.Receipt{ID: "abc123"}, nil
		}).
		Times(3)

	for _, body := range []string{
		`{"voteData":{"id":"v1"}}`,
		`{"voteData":{}}`,
		`{"voteData":{"id":5,"project_id":"p1","user_id":"u1","created_at":""}}`,
	} {
		rr := doRequest(s, http.MethodPost, "/api/upload-vote", body)
		assert.Equal(t, http.StatusOK, rr.Code, body)
	}

	assert.Equal(t, []string{
		`{"id":"v1","type":"vote"}`,
		`{"type":"vote"}`,
		`{"id":5,"projectId":"p1","userId":"u1","timestamp":"","type":"vote"}`,
	}, payloads)
}

func TestHandleUploadVote_InvalidJSON(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rr := doRequest(s, http.MethodPost, "/api/upload-vote", `{"voteData":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"request body must be valid JSON"}`, rr.Body.String())
}

func TestHandleUploadVote_UploaderFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{name: "message passed through", err: errors.New("insufficient funds"), wantErr: "insufficient funds"},
		{name: "empty message", err: errors.New(""), wantErr: "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, uploader := newTestServer(t, nil)
			uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := doRequest(s, http.MethodPost, "/api/upload-vote", `{"voteData":{"id":"v1"}}`)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, map[string]interface{}{"error": tt.wantErr}, decodeBody(t, rr))
		})
	}
}

// ── /api/upload-feedback ────────────────────────────────────────────────────

func TestHandleUploadFeedback_Success(t *testing.T) {
	s, uploader := newTestServer(t, nil)

	uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte, tags []domain.Tag) (*domain.Receipt, error) {
			assert.JSONEq(t,
				`{"id":"f1","projectId":"p1","userId":"u1","title":"Great","timestamp":"2024-01-01T00:00:00Z","type":"feedback"}`,
				string(data))
			assert.Equal(t, domain.Tag{Name: "data-type", Value: "feedback"}, tags[1])
			return &domain.Receipt{ID: "fb1"}, nil
		})

	rr := doRequest(s, http.MethodPost, "/api/upload-feedback",
		`{"feedbackData":{"id":"f1","project_id":"p1","user_id":"u1","title":"Great","created_at":"2024-01-01T00:00:00Z"}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"success":true,"irysId":"fb1","gatewayUrl":"https://gateway.irys.xyz/fb1"}`,
		rr.Body.String())
}

func TestHandleUploadFeedback_MissingField(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rr := doRequest(s, http.MethodPost, "/api/upload-feedback", `{"voteData":{"id":"v1"}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"feedbackData is required"}`, rr.Body.String())
}

// ── receipts ────────────────────────────────────────────────────────────────

func TestHandleGetUploadAndListRecordUploads(t *testing.T) {
	s, uploader := newTestServer(t, nil)
	gomock.InOrder(
		uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Receipt{ID: "first"}, nil),
		uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Receipt{ID: "second"}, nil),
	)

	body := `{"voteData":{"id":"v1","project_id":"p1","user_id":"u1"}}`
	require.Equal(t, http.StatusOK, doRequest(s, http.MethodPost, "/api/upload-vote", body).Code)
	require.Equal(t, http.StatusOK, doRequest(s, http.MethodPost, "/api/upload-vote", body).Code)

	rr := doRequest(s, http.MethodGet, "/api/uploads/first", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody(t, rr)
	assert.Equal(t, "first", got["irys_id"])
	assert.Equal(t, "https://gateway.irys.xyz/first", got["gateway_url"])
	assert.Equal(t, "vote", got["record_type"])

	rr = doRequest(s, http.MethodGet, "/api/records/vote/v1/uploads", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Uploads []domain.UploadRecord `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Uploads, 2)
	assert.Equal(t, "first", list.Uploads[0].IrysID)
	assert.Equal(t, "second", list.Uploads[1].IrysID)
}

func TestHandleGetUpload_NotFound(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rr := doRequest(s, http.MethodGet, "/api/uploads/missing", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"upload not found"}`, rr.Body.String())
}

func TestHandleListRecordUploads(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rr := doRequest(s, http.MethodGet, "/api/records/feedback/none/uploads", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"uploads":[]}`, rr.Body.String())

	rr = doRequest(s, http.MethodGet, "/api/records/comment/c1/uploads", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid record type"}`, rr.Body.String())
}

// ── decoding helpers ────────────────────────────────────────────────────────

func TestIsFalsy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "", want: true},
		{raw: "null", want: true},
		{raw: "false", want: true},
		{raw: `""`, want: true},
		{raw: "0", want: true},
		{raw: "-0", want: true},
		{raw: "0.0", want: true},
		{raw: "1", want: false},
		{raw: "true", want: false},
		{raw: `"0"`, want: false},
		{raw: "{}", want: false},
		{raw: "[]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, isFalsy(json.RawMessage(tt.raw)))
		})
	}
}
