// Package errors provides custom error types for the rostersync system.
// These errors enable programmatic error checking at the orchestrator
// boundary and precise, row-addressed messages for validation failures.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the rostersync system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates that a gateway rejected the configured credentials
	ErrUnauthorized = errors.New("unauthorized")
)

// RowError represents a validation failure for a single roster row.
// Row numbering starts at 2 because row 1 is the CSV header.
type RowError struct {
	Row     int
	Column  string
	Message string
}

// Error implements the error interface
func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Is implements errors.Is support
func (e *RowError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewMissingFieldError creates a RowError for a required column that is
// empty after trimming.
func NewMissingFieldError(row int, column string) *RowError {
	return &RowError{Row: row, Column: column, Message: "value is required"}
}

// GroupError represents a roster row whose group selection does not
// resolve to any known directory group.
type GroupError struct {
	Row     int
	Value   string
	Allowed []string
}

// Error implements the error interface
func (e *GroupError) Error() string {
	return fmt.Sprintf("row %d: group must be one of [%s], got %q",
		e.Row, strings.Join(e.Allowed, ", "), e.Value)
}

// Is implements errors.Is support
func (e *GroupError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IdentityError represents a failure to reconcile a directory account
// for one officer record.
type IdentityError struct {
	BadgeNumber string
	Err         error
}

// Error implements the error interface
func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity reconcile failed for badge %s: %v", e.BadgeNumber, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IdentityError) Unwrap() error {
	return e.Err
}

// NewIdentityError creates a new IdentityError
func NewIdentityError(badgeNumber string, err error) *IdentityError {
	return &IdentityError{BadgeNumber: badgeNumber, Err: err}
}

// IdentifierError indicates that the directory returned an account
// record without the immutable user identifier attribute.
type IdentifierError struct {
	Email string
}

// Error implements the error interface
func (e *IdentifierError) Error() string {
	return fmt.Sprintf("unable to determine directory user ID for %s", e.Email)
}

// NewIdentifierError creates a new IdentifierError
func NewIdentifierError(email string) *IdentifierError {
	return &IdentifierError{Email: email}
}

// AssignmentError represents a failure to reconcile a registry
// assignment entry for one officer record.
type AssignmentError struct {
	BadgeNumber string
	Err         error
}

// Error implements the error interface
func (e *AssignmentError) Error() string {
	return fmt.Sprintf("assignment reconcile failed for badge %s: %v", e.BadgeNumber, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *AssignmentError) Unwrap() error {
	return e.Err
}

// NewAssignmentError creates a new AssignmentError
func NewAssignmentError(badgeNumber string, err error) *AssignmentError {
	return &AssignmentError{BadgeNumber: badgeNumber, Err: err}
}

// APIError represents an error from an external gateway API
type APIError struct {
	System     string // "directory" or "registry"
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.System, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.System, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return target == ErrUnauthorized
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(system string, statusCode int, message string) *APIError {
	return &APIError{
		System:     system,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnauthorized checks if an error indicates rejected credentials
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(system string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		System:     system,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
