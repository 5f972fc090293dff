// Package common provides shared utilities and types used across the matcher.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog integrity errors. These abort startup; they are never
	// downgraded to warnings because a broken pattern silently disables
	// matching for a real product.
	ErrCatalogMalformed = errors.New("malformed catalog")
	ErrPatternInvalid   = errors.New("invalid pattern")

	// Correct-match store errors.
	ErrOverrideInconsistent = errors.New("inconsistent correct-match reference")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CatalogError reports a load-time failure with enough context for a
// curator to find the offending record: source file, brand, model, and
// the pattern that failed.
type CatalogError struct {
	Err     error
	File    string
	Brand   string
	Model   string
	Pattern string
}

func (e *CatalogError) Error() string {
	loc := e.File
	if e.Brand != "" {
		loc += ": " + e.Brand
	}
	if e.Model != "" {
		loc += " / " + e.Model
	}
	if e.Pattern != "" {
		return fmt.Sprintf("%s: pattern %q: %v", loc, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError builds a CatalogError with full location context.
func NewCatalogError(file, brand, model, pattern string, err error) error {
	return &CatalogError{File: file, Brand: brand, Model: model, Pattern: pattern, Err: err}
}
