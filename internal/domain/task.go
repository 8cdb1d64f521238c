package domain

import (
	"errors"
	"strings"
)

// Field length limits for a Task.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Task-specific validation errors
var (
	// ErrTaskTitleBlank is returned when a task title is empty or whitespace-only.
	ErrTaskTitleBlank = errors.New("task title cannot be blank")

	// ErrTaskTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTaskTitleTooLong = errors.New("task title exceeds maximum length")

	// ErrTaskDescriptionTooLong is returned when a task description exceeds
	// MaxDescriptionLength.
	ErrTaskDescriptionTooLong = errors.New("task description exceeds maximum length")

	// ErrTaskDueDateRequired is returned when a task has no due date.
	ErrTaskDueDateRequired = errors.New("task due date is required")
)

// Task is the single managed entity: a titled, described, dated unit of work
// with a status. The ID is assigned by storage on creation and is never set
// by clients.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	DueDate     Date   `json:"dueDate"`
}

// NewTask creates a new unsaved Task with the given fields. The ID is left
// zero so the store assigns a fresh identity on save.
// Returns an error if validation fails.
func NewTask(title, description string, status Status, dueDate Date) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTaskTitleBlank
	}

	if len(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if len(t.Description) > MaxDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	if err := t.Status.Validate(); err != nil {
		return err
	}

	if t.DueDate.IsZero() {
		return ErrTaskDueDateRequired
	}

	return nil
}
