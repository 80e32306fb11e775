package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "duplicate", err: fmt.Errorf("create: %w", ErrDuplicateUsername), want: fiber.StatusConflict},
		{name: "not found", err: NotFoundf("member %s", "abc"), want: fiber.StatusNotFound},
		{name: "invalid flag", err: ErrInvalidFlag, want: fiber.StatusBadRequest},
		{name: "invalid state", err: ErrInvalidState, want: fiber.StatusConflict},
		{name: "empty message", err: ErrEmptyMessage, want: fiber.StatusBadRequest},
		{name: "validation", err: Invalid("rating", "must be between 1 and 5"), want: fiber.StatusBadRequest},
		{name: "upstream", err: Upstream(errors.New("connection refused")), want: fiber.StatusServiceUnavailable},
		{name: "fiber error", err: fiber.NewError(fiber.StatusUnauthorized, "nope"), want: fiber.StatusUnauthorized},
		{name: "unknown", err: errors.New("boom"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestUpstreamKeepsKindAndCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := Upstream(cause)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Upstream(nil))

	// already classified errors pass through
	assert.Same(t, ErrNotFound, Upstream(ErrNotFound))
}

func TestValidationErrorMessage(t *testing.T) {
	err := Invalid("username", "is required")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "username: is required", err.Error())

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)
}
