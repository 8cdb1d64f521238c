package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/service"
	"github.com/caseflow/task-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "task not found",
			err:      service.NewTaskNotFoundError(1),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped store not found",
			err:      fmt.Errorf("fetch failed: %w", store.ErrTaskNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "domain validation",
			err:      domain.NewValidationError("title", "cannot be blank", domain.ErrValidation),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid status",
			err:      domain.ErrInvalidStatus,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid entity from the store",
			err:      fmt.Errorf("%w: not null violation", store.ErrInvalidEntity),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error",
			err:      errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("not-found carries the exact ID", func(t *testing.T) {
		msg := GetSafeErrorMessage(service.NewTaskNotFoundError(9999))
		assert.Equal(t, "Task not found with id: 9999", msg)
	})

	t.Run("not-found survives service wrapping", func(t *testing.T) {
		wrapped := service.NewTaskServiceError("get_task", "lookup failed",
			service.NewTaskNotFoundError(7))
		assert.Equal(t, "Task not found with id: 7", GetSafeErrorMessage(wrapped))
	})

	t.Run("unknown errors stay generic", func(t *testing.T) {
		msg := GetSafeErrorMessage(errors.New("pq: password authentication failed"))
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "password")
	})

	t.Run("nil error stays generic", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New(
		"Key: 'TaskRequest.Title' Error:Field validation for 'Title' failed on the 'max' tag")
	assert.Equal(t, "Invalid Title: too long", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
