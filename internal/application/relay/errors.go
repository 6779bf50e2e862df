package relay

import (
	"errors"
	"fmt"

	"github.com/aescanero/irys-upload-service/pkg/domain"
)

// ErrUploaderNotConfigured is returned when the service has no uploader
var ErrUploaderNotConfigured = errors.New("uploader is not configured")

// UnknownErrorMessage is reported when a failure carries no message
const UnknownErrorMessage = "Unknown error"

// MissingFieldError reports an absent required request field
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// ValidationError reports a present but malformed record
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UploadError wraps a failure of the uploader.
// Its message is the underlying message, unchanged.
type UploadError struct {
	RecordType domain.RecordType
	Err        error
}

func (e *UploadError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err was caused by the request itself
func IsClientError(err error) bool {
	var missing *MissingFieldError
	var invalid *ValidationError
	return errors.As(err, &missing) || errors.As(err, &invalid)
}

// ErrorMessage returns the message reported to callers for err
func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return UnknownErrorMessage
	}
	return err.Error()
}
