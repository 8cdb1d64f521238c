package api

import (
	"github.com/caseflow/task-api/internal/domain"
)

// TaskRequest is the request body for creating or fully updating a task.
// The ID is never taken from the client; storage assigns it on create and the
// path parameter identifies the row on update.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status"      validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
	DueDate     string `json:"dueDate"     validate:"required,datetime=2006-01-02"`
}

// toDomain converts a validated request into a domain Task with a zero ID.
func (r *TaskRequest) toDomain() (*domain.Task, error) {
	dueDate, err := domain.ParseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		DueDate:     dueDate,
	}, nil
}

// StatusUpdateRequest is the request body for the status-only patch.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

// taskToResponse transforms a domain Task into its wire representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		DueDate:     task.DueDate.String(),
	}
}

// tasksToResponse transforms a slice of tasks, returning an empty slice
// (not nil) so the JSON list is always an array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
