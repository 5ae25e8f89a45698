// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	// A failed or non-successful call to the quotes API is reported with it.
	ErrUnavailable = errors.New("unavailable")

	// ErrEmptyResult indicates a well-formed response that carried zero items.
	ErrEmptyResult = errors.New("empty result")

	// ErrStorage indicates persisted state could not be read or written.
	ErrStorage = errors.New("storage failure")

	// ErrClipboard indicates every share and copy fallback failed.
	ErrClipboard = errors.New("clipboard unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// EmptyResultError reports a page of the quotes API that held no quotes.
type EmptyResultError struct {
	Page  int
	Limit int
}

// Error implements the error interface.
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("page %d (limit %d) returned no quotes", e.Page, e.Limit)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *EmptyResultError) Unwrap() error {
	return ErrEmptyResult
}

// NewEmptyResultError creates an empty result error for the given page.
func NewEmptyResultError(page, limit int) error {
	return &EmptyResultError{Page: page, Limit: limit}
}

// StorageError provides context for persisted state failures.
type StorageError struct {
	Key   string
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Cause)
	}

	return fmt.Sprintf("storage %s %q failed", e.Op, e.Key)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *StorageError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrStorage, e.Cause}
	}

	return []error{ErrStorage}
}

// NewStorageError creates a storage error for an operation on a key.
func NewStorageError(op, key string, cause error) error {
	return &StorageError{Op: op, Key: key, Cause: cause}
}

// ClipboardError records why each share/copy tier failed.
type ClipboardError struct {
	Attempts []error
}

// Error implements the error interface.
func (e *ClipboardError) Error() string {
	return fmt.Sprintf("all copy fallbacks failed: %v", errors.Join(e.Attempts...))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ClipboardError) Unwrap() error {
	return ErrClipboard
}

// NewClipboardError creates a clipboard error from the failed tier attempts.
func NewClipboardError(attempts ...error) error {
	return &ClipboardError{Attempts: attempts}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsEmptyResult checks if an error is an empty result error.
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}

// IsStorage checks if an error is a storage error.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsClipboard checks if an error is a clipboard error.
func IsClipboard(err error) bool {
	return errors.Is(err, ErrClipboard)
}
