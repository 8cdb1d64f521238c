package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseflow/task-api/internal/api/shared"
	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/platform/logger"
	"github.com/caseflow/task-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /v1/tasks requests.
// It returns every stored task as a JSON array.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.GetAllTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /v1/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /v1/tasks requests.
// The body must carry a valid task without an ID; the created task is
// returned with its storage-assigned ID and a 201 status.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	task, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	created, err := h.taskService.AddTask(r.Context(), task)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created task", slog.Int64("task_id", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(created))
}

// UpdateTask handles PUT /v1/tasks/{id} requests.
// All fields except the ID are replaced with the submitted values.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	newData, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.taskService.UpdateTask(r.Context(), id, newData)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(updated))
}

// UpdateTaskStatus handles PATCH /v1/tasks/{id}/status requests.
// Only the status field is changed; any enumerated value may be set at any
// time, there is no transition order enforcement.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req StatusUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("status validation failed", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	updated, err := h.taskService.UpdateStatus(r.Context(), id, domain.Status(req.Status))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(updated))
}

// DeleteTask handles DELETE /v1/tasks/{id} requests.
// A successful delete responds 204 with an empty body.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	if err := h.taskService.DeleteTaskByID(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeTaskRequest decodes and validates a TaskRequest body, writing a 400
// response and returning ok=false on any failure. Validation happens here,
// before the service is reached.
func (h *TaskHandler) decodeTaskRequest(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Task, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("task validation failed", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, SanitizeValidationError(err), err)
		return nil, false
	}

	task, err := req.toDomain()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			log.Warn("invalid due date", slog.String("due_date", req.DueDate))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid dueDate")
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "An unexpected error occurred", err)
		return nil, false
	}

	return task, true
}
