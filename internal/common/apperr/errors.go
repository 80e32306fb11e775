// Package apperr defines the error kinds surfaced by the stores and operations
// and their mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidFlag         = errors.New("invalid access flag")
	ErrInvalidState        = errors.New("invalid state")
	ErrEmptyMessage        = errors.New("resolution message is required")
	ErrValidation          = errors.New("validation failed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError names the offending field of a rejected write
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a ValidationError for field
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

type upstreamError struct {
	err error
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUpstreamUnavailable, e.err)
}

func (e *upstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

func (e *upstreamError) Unwrap() error {
	return e.err
}

// Upstream marks err as a store or network failure. Errors that already carry
// a kind are returned unchanged.
func Upstream(err error) error {
	if err == nil || Kind(err) != nil {
		return err
	}
	return &upstreamError{err: err}
}

// NotFoundf wraps ErrNotFound with a description of the missing record
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

var kinds = []error{
	ErrDuplicateUsername,
	ErrNotFound,
	ErrInvalidFlag,
	ErrInvalidState,
	ErrEmptyMessage,
	ErrValidation,
	ErrUpstreamUnavailable,
}

// Kind returns the sentinel err belongs to, or nil for unclassified errors
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// HTTPStatus maps an error kind to the status returned to the dashboard
func HTTPStatus(err error) int {
	switch Kind(err) {
	case ErrDuplicateUsername, ErrInvalidState:
		return fiber.StatusConflict
	case ErrNotFound:
		return fiber.StatusNotFound
	case ErrInvalidFlag, ErrEmptyMessage, ErrValidation:
		return fiber.StatusBadRequest
	case ErrUpstreamUnavailable:
		return fiber.StatusServiceUnavailable
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
