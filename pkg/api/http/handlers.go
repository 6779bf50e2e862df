package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aescanero/irys-upload-service/internal/application/relay"
	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/aescanero/irys-upload-service/pkg/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	voteDataField     = "voteData"
	feedbackDataField = "feedbackData"
)

// errInvalidJSON is reported when the request body cannot be parsed
var errInvalidJSON = errors.New("request body must be valid JSON")

// UploadResponse represents a successful upload response
type UploadResponse struct {
	Success    bool   `json:"success"`
	IrysID     string `json:"irysId"`
	GatewayURL string `json:"gatewayUrl"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReadyResponse represents a readiness response
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth handles liveness requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.serviceName,
	})
}

// handleReady reports whether the last dependency check passed
func (s *Server) handleReady(c *gin.Context) {
	if s.readiness == nil {
		c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Checks: map[string]string{}})
		return
	}

	status := s.readiness.GetStatus()
	if status == nil {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Checks: map[string]string{}})
		return
	}
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Checks: status.Checks})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Checks: status.Checks})
}

// handleUploadVote handles vote uploads
func (s *Server) handleUploadVote(c *gin.Context) {
	var rec domain.VoteRecord
	if err := s.decodeRecord(c, voteDataField, &rec); err != nil {
		s.reject(c, domain.RecordTypeVote, err)
		return
	}

	result, err := s.relay.UploadVote(c.Request.Context(), &rec)
	s.respondUpload(c, result, err)
}

// handleUploadFeedback handles feedback uploads
func (s *Server) handleUploadFeedback(c *gin.Context) {
	var rec domain.FeedbackRecord
	if err := s.decodeRecord(c, feedbackDataField, &rec); err != nil {
		s.reject(c, domain.RecordTypeFeedback, err)
		return
	}

	result, err := s.relay.UploadFeedback(c.Request.Context(), &rec)
	s.respondUpload(c, result, err)
}

// handleGetUpload returns a stored upload
func (s *Server) handleGetUpload(c *gin.Context) {
	record, err := s.relay.GetUpload(c.Request.Context(), c.Param("irysId"))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "upload not found"})
			return
		}
		s.logger.Error("failed to get upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: relay.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleListRecordUploads returns every upload of one record
func (s *Server) handleListRecordUploads(c *gin.Context) {
	recordType, ok := domain.ParseRecordType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid record type"})
		return
	}

	uploads, err := s.relay.ListRecordUploads(c.Request.Context(), recordType, c.Param("id"))
	if err != nil {
		s.logger.Error("failed to list uploads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: relay.ErrorMessage(err)})
		return
	}
	if uploads == nil {
		uploads = []*domain.UploadRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}

// reject answers a request refused before it reached the relay
func (s *Server) reject(c *gin.Context, recordType domain.RecordType, err error) {
	s.relay.RecordRejected(recordType, err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// respondUpload maps an upload outcome to the response
func (s *Server) respondUpload(c *gin.Context, result *domain.UploadResult, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if relay.IsClientError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: relay.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success:    true,
		IrysID:     result.IrysID,
		GatewayURL: result.GatewayURL,
	})
}

// decodeRecord extracts field from the JSON body into dst.
// A missing or falsy field yields a MissingFieldError; the relay decides
// how a truthy value is read.
func (s *Server) decodeRecord(c *gin.Context, field string, dst any) error {
	body, err := c.GetRawData()
	if err != nil {
		return errInvalidJSON
	}

	raw, err := lookupField(body, field)
	if err != nil {
		return err
	}
	if isFalsy(raw) {
		return &relay.MissingFieldError{Field: field}
	}

	return s.relay.DecodeRecord(field, raw, dst)
}

// lookupField returns the trimmed raw value of field, or nil when absent.
// An empty body counts as an empty object.
func lookupField(body []byte, field string) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, errInvalidJSON
	}
	if body[0] != '{' {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errInvalidJSON
	}

	return bytes.TrimSpace(fields[field]), nil
}

// isFalsy reports whether a JSON value is absent, null, false, zero or ""
func isFalsy(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "false", `""`:
		return true
	}

	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		n, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && n == 0
	}

	return false
}
