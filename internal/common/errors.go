// Package common provides shared error types and logging utilities used
// across the application.
package common

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by NotFoundError so callers can use
// errors.Is without caring which entity was missing.
var ErrNotFound = errors.New("not found")

// ValidationError reports a field-level rule violation. Callers surface it
// to the user; it must never trigger an automatic retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidStateError reports an operation invoked while the manager was in
// the wrong edit-mode state. Under correct UI sequencing it never happens,
// but it fails loudly instead of corrupting state.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not permitted in %s state", e.Op, e.State)
}

// NewInvalidStateError creates an InvalidStateError for op in state.
func NewInvalidStateError(op, state string) *InvalidStateError {
	return &InvalidStateError{Op: op, State: state}
}

// NotFoundError reports a referenced id that no longer exists, typically a
// record deleted by a concurrent session.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d %v", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StoreError wraps an opaque persistence failure. The core propagates it
// unchanged and leaves in-memory state untouched; retry policy belongs to
// the caller.
type StoreError struct {
	Err error
	Op  string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for the named operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
