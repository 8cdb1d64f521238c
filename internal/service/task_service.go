package service

import (
	"context"
	"log/slog"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/platform/logger"
	"github.com/caseflow/task-api/internal/store"
)

// TaskService provides task lifecycle operations. It enforces "must exist"
// semantics for ID-keyed operations and applies field-level update rules;
// field validation happens at the API boundary before a task reaches it.
type TaskService interface {
	// GetAllTasks returns every stored task.
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTaskByID returns the task with the given ID.
	// Returns a TaskNotFoundError if no such task exists.
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// AddTask persists a new task. Any client-supplied ID is ignored; storage
	// issues a fresh identity.
	AddTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// UpdateTask overwrites title, description, status, and due date of the
	// task with the given ID from newData, preserving the stored ID.
	// Returns a TaskNotFoundError if no such task exists.
	UpdateTask(ctx context.Context, id int64, newData *domain.Task) (*domain.Task, error)

	// UpdateStatus overwrites only the status of the task with the given ID.
	// Returns a TaskNotFoundError if no such task exists.
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Task, error)

	// DeleteTaskByID removes the task with the given ID.
	// Returns a TaskNotFoundError if no such task exists.
	DeleteTaskByID(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	repo   TaskRepository
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the repository is nil.
func NewTaskService(repo TaskRepository, logger *slog.Logger) (TaskService, error) {
	if repo == nil {
		return nil, domain.NewValidationError("repo", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		repo:   repo,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// findTask fetches a task by ID from the given repository, translating a
// store-level miss into the domain not-found signal. All four ID-keyed
// operations go through this single call site.
func (s *taskServiceImpl) findTask(
	ctx context.Context,
	repo TaskRepository,
	id int64,
) (*domain.Task, error) {
	task, err := repo.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Warn("task not found",
				slog.Int64("task_id", id))
			return nil, NewTaskNotFoundError(id)
		}
		return nil, NewTaskServiceError("find_task", "failed to fetch task", err)
	}
	return task, nil
}

// GetAllTasks implements TaskService.GetAllTasks.
func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("fetching all tasks")

	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("failed to fetch tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("get_all_tasks", "failed to fetch tasks", err)
	}

	return tasks, nil
}

// GetTaskByID implements TaskService.GetTaskByID.
func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("fetching task", slog.Int64("task_id", id))

	return s.findTask(ctx, s.repo, id)
}

// AddTask implements TaskService.AddTask.
func (s *taskServiceImpl) AddTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("adding new task", slog.String("title", task.Title))

	// A new identity is always issued by storage.
	task.ID = 0

	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		log.Error("failed to save task",
			slog.String("title", task.Title),
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("add_task", "failed to save task", err)
	}

	log.Info("task created", slog.Int64("task_id", saved.ID))
	return saved, nil
}

// UpdateTask implements TaskService.UpdateTask.
// The fetch-mutate-save sequence runs in a single transaction so it is atomic
// with respect to concurrent writers of the same row.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	newData *domain.Task,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("updating task", slog.Int64("task_id", id))

	var updated *domain.Task
	err := s.repo.RunInTransaction(ctx, func(ctx context.Context, repo TaskRepository) error {
		task, err := s.findTask(ctx, repo, id)
		if err != nil {
			return err
		}

		task.Title = newData.Title
		task.Description = newData.Description
		task.Status = newData.Status
		task.DueDate = newData.DueDate

		updated, err = repo.Save(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return updated, nil
}

// UpdateStatus implements TaskService.UpdateStatus.
func (s *taskServiceImpl) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.Status,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("updating task status",
		slog.Int64("task_id", id),
		slog.String("status", status.String()))

	var updated *domain.Task
	err := s.repo.RunInTransaction(ctx, func(ctx context.Context, repo TaskRepository) error {
		task, err := s.findTask(ctx, repo, id)
		if err != nil {
			return err
		}

		task.Status = status

		updated, err = repo.Save(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("task status updated", slog.Int64("task_id", id))
	return updated, nil
}

// DeleteTaskByID implements TaskService.DeleteTaskByID.
// The fetch-before-delete is deliberate: the not-found signal is raised
// before any storage mutation is attempted, and the gateway's delete receives
// a concrete instance rather than a bare ID.
func (s *taskServiceImpl) DeleteTaskByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.repo.RunInTransaction(ctx, func(ctx context.Context, repo TaskRepository) error {
		task, err := s.findTask(ctx, repo, id)
		if err != nil {
			return err
		}

		log.Info("deleting task", slog.Int64("task_id", id))
		if err := repo.Delete(ctx, task); err != nil {
			return NewTaskServiceError("delete_task", "failed to delete task", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
