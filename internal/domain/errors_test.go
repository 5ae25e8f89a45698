package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrUnavailable,
		ErrEmptyResult,
		ErrStorage,
		ErrClipboard,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quote",
			id:          "42",
			expectedMsg: `quote with id "42" not found`,
		},
		{
			name:        "with entity only",
			entity:      "quote",
			id:          "",
			expectedMsg: "quote not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.ErrorIs(t, err, ErrNotFound)
			assert.True(t, IsNotFound(err))
			assert.False(t, IsUnavailable(err))
		})
	}
}

func TestEmptyResultError(t *testing.T) {
	err := NewEmptyResultError(3, 10)

	assert.Equal(t, "page 3 (limit 10) returned no quotes", err.Error())
	assert.True(t, IsEmptyResult(err))

	var target *EmptyResultError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 3, target.Page)
	assert.Equal(t, 10, target.Limit)
}

func TestStorageError_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("write", "favorite-quotes", cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "favorite-quotes")
	assert.Contains(t, err.Error(), "disk full")
}

func TestStorageError_WithoutCause(t *testing.T) {
	err := NewStorageError("read", "favorite-quotes", nil)

	assert.True(t, IsStorage(err))
	assert.Equal(t, `storage read "favorite-quotes" failed`, err.Error())
}

func TestClipboardError_ListsAttempts(t *testing.T) {
	err := NewClipboardError(errors.New("share: not available"), errors.New("clipboard: denied"))

	assert.True(t, IsClipboard(err))
	assert.Contains(t, err.Error(), "share: not available")
	assert.Contains(t, err.Error(), "clipboard: denied")
}

func TestValidationError(t *testing.T) {
	err := NewValidationErrorWithValue("id", "must be positive", -1)

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation failed for id: must be positive", err.Error())

	var target *ValidationError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, -1, target.Value)

	assert.Equal(t, "validation failed: bad input", NewValidationError("", "bad input").Error())
}

func TestUnavailableError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("fetching page: %w", NewUnavailableError("quote-service", "HTTP 502"))

	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), `service "quote-service" unavailable: HTTP 502`)
	assert.Equal(t, `service "x" unavailable`, NewUnavailableError("x", "").Error())
}
