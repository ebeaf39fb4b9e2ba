package persistence

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound indicates no client exists for the given identifier.
	ErrClientNotFound = errors.New("client not found")

	// ErrWorkflowNotFound indicates no workflow exists for the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// StoreError wraps a failed store operation with enough context to tell
// which entity and id were involved.
type StoreError struct {
	Op     string // Operation being performed (e.g. "InsertClient")
	Entity string // Entity kind (e.g. "client", "campaign")
	ID     string // Record id if known
	Err    error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s failed for %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}

	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewStoreError creates a store error with context.
func NewStoreError(op, entity, id string, err error) *StoreError {
	return &StoreError{Op: op, Entity: entity, ID: id, Err: err}
}

// IsClientNotFound checks if an error indicates a missing client.
func IsClientNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound)
}

// IsWorkflowNotFound checks if an error indicates a missing workflow.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}
