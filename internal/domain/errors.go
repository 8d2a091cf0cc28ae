package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest indicates the caller supplied out-of-bounds or
// malformed parameters. It is always wrapped with a field-specific
// message; check with errors.Is.
var ErrInvalidRequest = errors.New("invalid request")

// CatalogError wraps a failure reading from the catalog store with the
// operation that failed. The underlying error is preserved via Unwrap so
// callers see it unchanged; the discovery engine never retries or
// swallows these.
type CatalogError struct {
	// Op names the catalog operation that failed (e.g. "find tours")
	Op string

	// Err is the underlying store error
	Err error
}

// NewCatalogError wraps err with the failing catalog operation.
func NewCatalogError(op string, err error) *CatalogError {
	return &CatalogError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("tour catalog: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying store error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}
