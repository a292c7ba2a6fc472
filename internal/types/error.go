package types

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError is raised by the domain services when a referenced entity
// id does not exist. The boundary maps it to a 404.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       uint64 `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ValidationError reports malformed or missing input. Fields lists every
// violated field with a human readable reason. The boundary maps it to a 400.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ConstraintError surfaces a referential integrity violation from the
// persistence layer. Not reachable through the API while every path checks
// existence first, but the mapping exists so a store error never leaks raw.
type ConstraintError struct {
	Message string `json:"message"`
}

func (e *ConstraintError) Error() string {
	return e.Message
}
