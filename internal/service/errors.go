package service

import (
	"fmt"

	"github.com/caseflow/task-api/internal/store"
)

// TaskNotFoundError is the recoverable domain condition raised whenever a
// lookup by ID has no matching row. The endpoint layer translates it to a
// 404 response carrying this exact message.
type TaskNotFoundError struct {
	ID int64
}

// Error implements the error interface for TaskNotFoundError.
func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task not found with id: %d", e.ID)
}

// Unwrap links the error to the store's not-found sentinel so callers can
// match with errors.Is(err, store.ErrTaskNotFound).
func (e *TaskNotFoundError) Unwrap() error {
	return store.ErrTaskNotFound
}

// NewTaskNotFoundError creates a TaskNotFoundError for the given ID.
func NewTaskNotFoundError(id int64) *TaskNotFoundError {
	return &TaskNotFoundError{ID: id}
}

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
