package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/service"
)

// mockTaskService is a mock implementation of the TaskService interface.
type mockTaskService struct {
	getAllFn       func(ctx context.Context) ([]*domain.Task, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.Task, error)
	addFn          func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	updateFn       func(ctx context.Context, id int64, newData *domain.Task) (*domain.Task, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.Status) (*domain.Task, error)
	deleteFn       func(ctx context.Context, id int64) error

	calls int
}

func (m *mockTaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	m.calls++
	return m.getAllFn(ctx)
}

func (m *mockTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.calls++
	return m.getByIDFn(ctx, id)
}

func (m *mockTaskService) AddTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.calls++
	return m.addFn(ctx, task)
}

func (m *mockTaskService) UpdateTask(
	ctx context.Context,
	id int64,
	newData *domain.Task,
) (*domain.Task, error) {
	m.calls++
	return m.updateFn(ctx, id, newData)
}

func (m *mockTaskService) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.Status,
) (*domain.Task, error) {
	m.calls++
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockTaskService) DeleteTaskByID(ctx context.Context, id int64) error {
	m.calls++
	return m.deleteFn(ctx, id)
}

// newRequest builds a request with an optional chi "id" path parameter.
func newRequest(t *testing.T, method, target, body, pathID string) *http.Request {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)

	if pathID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", pathID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

func storedTask() *domain.Task {
	return &domain.Task{
		ID:          1,
		Title:       "Schedule team meeting",
		Description: "Organise a 30-minute sync",
		Status:      domain.StatusPending,
		DueDate:     domain.NewDate(2025, time.June, 24),
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}

func TestListTasks(t *testing.T) {
	t.Run("returns tasks as an array", func(t *testing.T) {
		mock := &mockTaskService{
			getAllFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{storedTask()}, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.ListTasks(rr, newRequest(t, http.MethodGet, "/v1/tasks", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body []TaskResponse
		decodeBody(t, rr, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "2025-06-24", body[0].DueDate)
	})

	t.Run("empty store yields an empty array, not null", func(t *testing.T) {
		mock := &mockTaskService{
			getAllFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.ListTasks(rr, newRequest(t, http.MethodGet, "/v1/tasks", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestGetTask(t *testing.T) {
	tests := []struct {
		name           string
		pathID         string
		serviceResult  *domain.Task
		serviceError   error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "found",
			pathID:         "1",
			serviceResult:  storedTask(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			pathID:         "9999",
			serviceError:   service.NewTaskNotFoundError(9999),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Task not found with id: 9999",
		},
		{
			name:           "non-numeric ID",
			pathID:         "abc",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid task ID format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockTaskService{
				getByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewTaskHandler(mock, nil)

			rr := httptest.NewRecorder()
			handler.GetTask(rr, newRequest(t, http.MethodGet, "/v1/tasks/"+tc.pathID, "", tc.pathID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedMsg != "" {
				var body map[string]any
				decodeBody(t, rr, &body)
				assert.Equal(t, tc.expectedMsg, body["message"])
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	t.Run("valid body returns 201 with assigned ID", func(t *testing.T) {
		// Scenario: create a pending task and get it back with an ID.
		var received *domain.Task
		mock := &mockTaskService{
			addFn: func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
				received = task
				saved := *task
				saved.ID = 1
				return &saved, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		body := `{
			"title": "Schedule team meeting",
			"description": "Organise a 30-minute sync",
			"status": "PENDING",
			"dueDate": "2025-06-24"
		}`
		rr := httptest.NewRecorder()
		handler.CreateTask(rr, newRequest(t, http.MethodPost, "/v1/tasks", body, ""))

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, received)
		assert.Zero(t, received.ID, "client cannot supply an ID")

		var resp TaskResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Schedule team meeting", resp.Title)
		assert.Equal(t, "Organise a 30-minute sync", resp.Description)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "2025-06-24", resp.DueDate)
	})

	validationCases := []struct {
		name string
		body string
	}{
		{
			name: "missing title",
			body: `{"status": "PENDING", "dueDate": "2025-06-24"}`,
		},
		{
			name: "blank title",
			body: `{"title": "   ", "status": "PENDING", "dueDate": "2025-06-24"}`,
		},
		{
			name: "title over 255 characters",
			body: `{"title": "` + strings.Repeat("a", 256) + `", "status": "PENDING", "dueDate": "2025-06-24"}`,
		},
		{
			name: "description over 1000 characters",
			body: `{"title": "t", "description": "` + strings.Repeat("d", 1001) + `", "status": "PENDING", "dueDate": "2025-06-24"}`,
		},
		{
			name: "unknown status",
			body: `{"title": "t", "status": "DONE", "dueDate": "2025-06-24"}`,
		},
		{
			name: "missing due date",
			body: `{"title": "t", "status": "PENDING"}`,
		},
		{
			name: "malformed due date",
			body: `{"title": "t", "status": "PENDING", "dueDate": "24-06-2025"}`,
		},
		{
			name: "malformed JSON",
			body: `{"title": `,
		},
	}

	for _, tc := range validationCases {
		t.Run(tc.name+" is rejected before the service", func(t *testing.T) {
			mock := &mockTaskService{}
			handler := NewTaskHandler(mock, nil)

			rr := httptest.NewRecorder()
			handler.CreateTask(rr, newRequest(t, http.MethodPost, "/v1/tasks", tc.body, ""))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, mock.calls, "service must not be reached")
		})
	}

	t.Run("title of exactly 255 characters is accepted", func(t *testing.T) {
		mock := &mockTaskService{
			addFn: func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
				saved := *task
				saved.ID = 2
				return &saved, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		body := `{"title": "` + strings.Repeat("a", 255) + `", "status": "PENDING", "dueDate": "2025-06-24"}`
		rr := httptest.NewRecorder()
		handler.CreateTask(rr, newRequest(t, http.MethodPost, "/v1/tasks", body, ""))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestUpdateTask(t *testing.T) {
	body := `{
		"title": "Updated title",
		"description": "Updated description",
		"status": "COMPLETED",
		"dueDate": "2025-07-01"
	}`

	t.Run("replaces fields on an existing task", func(t *testing.T) {
		mock := &mockTaskService{
			updateFn: func(ctx context.Context, id int64, newData *domain.Task) (*domain.Task, error) {
				updated := *newData
				updated.ID = id
				return &updated, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTask(rr, newRequest(t, http.MethodPut, "/v1/tasks/1", body, "1"))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp TaskResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "COMPLETED", resp.Status)
	})

	t.Run("missing task yields 404", func(t *testing.T) {
		mock := &mockTaskService{
			updateFn: func(ctx context.Context, id int64, newData *domain.Task) (*domain.Task, error) {
				return nil, service.NewTaskNotFoundError(id)
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTask(rr, newRequest(t, http.MethodPut, "/v1/tasks/5", body, "5"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var respBody map[string]any
		decodeBody(t, rr, &respBody)
		assert.Equal(t, "Task not found with id: 5", respBody["message"])
	})

	t.Run("invalid body is rejected before the service", func(t *testing.T) {
		mock := &mockTaskService{}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTask(rr,
			newRequest(t, http.MethodPut, "/v1/tasks/1", `{"title": ""}`, "1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, mock.calls)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	t.Run("patches status on an existing task", func(t *testing.T) {
		// Scenario: stored task is PENDING, patch moves it to IN_PROGRESS.
		mock := &mockTaskService{
			updateStatusFn: func(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
				task := storedTask()
				task.ID = id
				task.Status = status
				return task, nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTaskStatus(rr, newRequest(t,
			http.MethodPatch, "/v1/tasks/1/status", `{"status": "IN_PROGRESS"}`, "1"))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp TaskResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
		assert.Equal(t, "Schedule team meeting", resp.Title, "other fields unchanged")
		assert.Equal(t, "2025-06-24", resp.DueDate)
	})

	t.Run("missing task yields 404 with the ID in the message", func(t *testing.T) {
		mock := &mockTaskService{
			updateStatusFn: func(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
				return nil, service.NewTaskNotFoundError(id)
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTaskStatus(rr, newRequest(t,
			http.MethodPatch, "/v1/tasks/9999/status", `{"status": "IN_PROGRESS"}`, "9999"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body map[string]any
		decodeBody(t, rr, &body)
		assert.Equal(t, "Task not found with id: 9999", body["message"])
	})

	t.Run("non-enumerated status yields 400 without touching storage", func(t *testing.T) {
		mock := &mockTaskService{}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTaskStatus(rr, newRequest(t,
			http.MethodPatch, "/v1/tasks/1/status", `{"status": "DONE"}`, "1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, mock.calls, "no storage mutation may occur")
	})

	t.Run("missing status yields 400", func(t *testing.T) {
		mock := &mockTaskService{}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.UpdateTaskStatus(rr, newRequest(t,
			http.MethodPatch, "/v1/tasks/1/status", `{}`, "1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, mock.calls)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("existing task yields 204 with empty body", func(t *testing.T) {
		mock := &mockTaskService{
			deleteFn: func(ctx context.Context, id int64) error {
				return nil
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.DeleteTask(rr, newRequest(t, http.MethodDelete, "/v1/tasks/1", "", "1"))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("missing task yields 404", func(t *testing.T) {
		mock := &mockTaskService{
			deleteFn: func(ctx context.Context, id int64) error {
				return service.NewTaskNotFoundError(id)
			},
		}
		handler := NewTaskHandler(mock, nil)

		rr := httptest.NewRecorder()
		handler.DeleteTask(rr, newRequest(t, http.MethodDelete, "/v1/tasks/3", "", "3"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body map[string]any
		decodeBody(t, rr, &body)
		assert.Equal(t, "Task not found with id: 3", body["message"])
	})
}
