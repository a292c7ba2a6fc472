package services

import (
	"strings"

	"github.com/recruitkit/candidatesdb/internal/models"
	"github.com/recruitkit/candidatesdb/internal/types"
)

// CreateCandidateInput is the payload for registering a candidate.
type CreateCandidateInput struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	BirthDate models.Date `json:"birthDate" swaggertype:"string" example:"1990-05-15"`
}

// Validate reports every violated field at once.
func (in CreateCandidateInput) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "must not be empty"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "must not be empty"
	}
	if in.BirthDate.IsZero() {
		fields["birthDate"] = "must be a valid ISO-8601 date"
	}
	if len(fields) > 0 {
		return &types.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateCandidateInput is the partial payload for mutating a candidate.
// Omitted fields are left untouched; fields sent as explicit null are
// rejected rather than silently skipped.
type UpdateCandidateInput struct {
	FirstName types.Optional[string]      `json:"firstName" swaggertype:"string"`
	LastName  types.Optional[string]      `json:"lastName" swaggertype:"string"`
	BirthDate types.Optional[models.Date] `json:"birthDate" swaggertype:"string" example:"1990-05-15"`
}

// Validate reports every violated field at once.
func (in UpdateCandidateInput) Validate() error {
	fields := make(map[string]string)
	if in.FirstName.IsSet() && (in.FirstName.IsNull() || strings.TrimSpace(in.FirstName.Get()) == "") {
		fields["firstName"] = "must not be empty when provided"
	}
	if in.LastName.IsSet() && (in.LastName.IsNull() || strings.TrimSpace(in.LastName.Get()) == "") {
		fields["lastName"] = "must not be empty when provided"
	}
	if in.BirthDate.IsSet() && (in.BirthDate.IsNull() || in.BirthDate.Get().IsZero()) {
		fields["birthDate"] = "must be a valid ISO-8601 date when provided"
	}
	if len(fields) > 0 {
		return &types.ValidationError{Fields: fields}
	}
	return nil
}

// Empty reports whether the payload touches nothing at all.
func (in UpdateCandidateInput) Empty() bool {
	return !in.FirstName.IsSet() && !in.LastName.IsSet() && !in.BirthDate.IsSet()
}

// CreateDocumentInput is the payload for attaching a document to a candidate.
type CreateDocumentInput struct {
	Type     models.DocumentType `json:"type"`
	FileName string              `json:"fileName"`
	FilePath string              `json:"filePath"`
}

// Validate reports every violated field at once.
func (in CreateDocumentInput) Validate() error {
	fields := make(map[string]string)
	if !in.Type.Valid() {
		fields["type"] = "must be one of the accepted document types"
	}
	if strings.TrimSpace(in.FileName) == "" {
		fields["fileName"] = "must not be empty"
	}
	if strings.TrimSpace(in.FilePath) == "" {
		fields["filePath"] = "must not be empty"
	}
	if len(fields) > 0 {
		return &types.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateDocumentStatusInput is the payload for the status-update operation,
// the only mutation a document supports after creation.
type UpdateDocumentStatusInput struct {
	Status models.DocumentStatus `json:"status"`
}

// Validate reports every violated field at once.
func (in UpdateDocumentStatusInput) Validate() error {
	if !in.Status.Valid() {
		return types.NewValidationError("status", "must be one of PENDING, APPROVED, REJECTED")
	}
	return nil
}
