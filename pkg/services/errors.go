// Package services provides the application layer between the HTTP surface
// and the intake domain: request validation, session orchestration and the
// error taxonomy handlers map to status codes.
package services

import (
	"errors"
	"fmt"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/generation"
	"github.com/leadflow/intake/pkg/persistence"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrFieldNotAssistable = errors.New("field does not support assisted generation")

	// Not found (404).
	ErrAutomationNotFound = catalog.ErrAutomationNotFound
	ErrOptionNotFound     = catalog.ErrOptionNotFound
	ErrClientNotFound     = persistence.ErrClientNotFound
	ErrWorkflowNotFound   = persistence.ErrWorkflowNotFound
)

// ServiceError wraps service-level errors with operation context.
type ServiceError struct {
	Op      string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// ValidationError carries the per-field message map produced by a failed
// validation pass, keyed by field or step id.
type ValidationError struct {
	Op     string
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation failed for %d field(s)", e.Op, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}

	return ErrInvalidRequest
}

func NewValidationError(op string, fields map[string]string) *ValidationError {
	return &ValidationError{Op: op, Fields: fields}
}

// IsValidationError checks if an error should return HTTP 400.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrFieldNotAssistable) ||
		errors.Is(err, generation.ErrBusinessInfoTooLong)
}

// IsNotFoundError checks if an error should return HTTP 404.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAutomationNotFound) ||
		errors.Is(err, ErrOptionNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrWorkflowNotFound)
}

// IsRateLimitError checks if an error should return HTTP 429.
func IsRateLimitError(err error) bool {
	return errors.Is(err, generation.ErrRateLimited)
}

// IsUpstreamError checks if an error should return HTTP 502, meaning the
// text-generation upstream failed rather than this service.
func IsUpstreamError(err error) bool {
	var generationErr *generation.GenerationError

	return errors.As(err, &generationErr) ||
		errors.Is(err, generation.ErrTimeout) ||
		errors.Is(err, generation.ErrEmptyCompletion)
}
