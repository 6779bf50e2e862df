package relay

import (
	"encoding/json"
	"strings"

	"github.com/aescanero/irys-upload-service/pkg/domain"
)

// Validator validates records before upload.
// In loose mode any truthy record is accepted and its fields are uploaded
// as sent; strict mode requires an object whose identifying fields are
// non-empty strings.
type Validator struct {
	strict bool
}

// NewValidator creates a new record validator
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Strict reports whether the validator runs in strict mode
func (v *Validator) Strict() bool {
	return v.strict
}

// DecodeRecord decodes the truthy JSON value of field into dst.
// A value that is not an object decodes to an empty record in loose mode.
func (v *Validator) DecodeRecord(field string, raw json.RawMessage, dst any) error {
	if len(raw) == 0 || raw[0] != '{' {
		if v.strict {
			return &ValidationError{Field: field, Reason: "must be an object"}
		}
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &ValidationError{Field: field, Reason: err.Error()}
	}
	return nil
}

// ValidateVote validates a vote record
func (v *Validator) ValidateVote(rec *domain.VoteRecord) error {
	if rec == nil {
		return &MissingFieldError{Field: "voteData"}
	}
	if !v.strict {
		return nil
	}

	return requireFields("voteData", []namedField{
		{"id", rec.ID},
		{"project_id", rec.ProjectID},
		{"user_id", rec.UserID},
	})
}

// ValidateFeedback validates a feedback record
func (v *Validator) ValidateFeedback(rec *domain.FeedbackRecord) error {
	if rec == nil {
		return &MissingFieldError{Field: "feedbackData"}
	}
	if !v.strict {
		return nil
	}

	return requireFields("feedbackData", []namedField{
		{"id", rec.ID},
		{"project_id", rec.ProjectID},
		{"user_id", rec.UserID},
		{"title", rec.Title},
	})
}

type namedField struct {
	name  string
	value domain.Field
}

// requireFields reports every absent or blank field; a present non-string
// value is reported on its own
func requireFields(record string, fields []namedField) error {
	var missing []string
	for _, f := range fields {
		if !f.value.Present() || string(f.value) == "null" {
			missing = append(missing, f.name)
			continue
		}

		s, ok := f.value.Text()
		if !ok {
			return &ValidationError{Field: record, Reason: f.name + " must be a string"}
		}
		if strings.TrimSpace(s) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{
			Field:  record,
			Reason: "missing " + strings.Join(missing, ", "),
		}
	}
	return nil
}
