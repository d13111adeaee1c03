// Package storage provides the SQLite persistence layer behind the
// service.Store contract.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Parameter validation errors, returned before any statement runs.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidID    = errors.New("id must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a surrogate id is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}
