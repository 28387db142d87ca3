package errors

import (
	"fmt"
	"time"
)

// Error types for the answerdesk system
type ErrorType string

const (
	// Data source errors
	ErrorTypeLoad          ErrorType = "load"
	ErrorTypeMissingColumn ErrorType = "missing_column"
	ErrorTypeFileNotFound  ErrorType = "file_not_found"
	ErrorTypeFormat        ErrorType = "format"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// LoadError represents an error while loading the knowledge table from a
// data source. Loading failures never reach the matcher; they are surfaced
// to the host before any query is resolved.
type LoadError struct {
	Type       ErrorType
	Path       string
	Sheet      string
	Column     string
	Underlying error
	Timestamp  time.Time
}

// NewLoadError creates a new load error for a data source path
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{
		Type:       ErrorTypeLoad,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// NewMissingColumnError creates a load error for a header row that lacks a
// required column
func NewMissingColumnError(path, column string) *LoadError {
	return &LoadError{
		Type:      ErrorTypeMissingColumn,
		Path:      path,
		Column:    column,
		Timestamp: time.Now(),
	}
}

// WithSheet adds the spreadsheet sheet name to the error
func (e *LoadError) WithSheet(sheet string) *LoadError {
	e.Sheet = sheet
	return e
}

// WithType overrides the error type
func (e *LoadError) WithType(t ErrorType) *LoadError {
	e.Type = t
	return e
}

// Error implements the error interface
func (e *LoadError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s: data source %s is missing required column %q", e.Type, e.location(), e.Column)
	case e.Underlying != nil:
		return fmt.Sprintf("%s: failed to load %s: %v", e.Type, e.location(), e.Underlying)
	default:
		return fmt.Sprintf("%s: failed to load %s", e.Type, e.location())
	}
}

func (e *LoadError) location() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s (sheet %q)", e.Path, e.Sheet)
	}
	return e.Path
}

// Unwrap returns the underlying error for errors.Is/As
func (e *LoadError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError collects errors from loading several data files
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error, dropping nil entries
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
