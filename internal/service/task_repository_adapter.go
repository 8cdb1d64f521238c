package service

import (
	"context"
	"database/sql"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/store"
)

// TaskRepository defines the repository interface for the service layer.
// RunInTransaction hands the callback a repository bound to a single
// transaction, so a fetch-mutate-save sequence is atomic with respect to
// concurrent writers of the same row.
type TaskRepository interface {
	// FindAll returns every stored task.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its unique ID.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Save persists a task, assigning a new ID when the task's ID is zero.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes the row matching the task's ID.
	Delete(ctx context.Context, task *domain.Task) error

	// RunInTransaction executes fn with a repository bound to a single
	// database transaction, committing on nil and rolling back on error.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error
}

// taskRepositoryAdapter adapts a store.TaskStore to the service-layer
// TaskRepository interface and carries the *sql.DB needed to open
// transactions.
type taskRepositoryAdapter struct {
	taskStore store.TaskStore
	db        *sql.DB
}

// NewTaskRepositoryAdapter creates a TaskRepository backed by the given
// task store and database connection.
func NewTaskRepositoryAdapter(taskStore store.TaskStore, db *sql.DB) TaskRepository {
	return &taskRepositoryAdapter{
		taskStore: taskStore,
		db:        db,
	}
}

func (a *taskRepositoryAdapter) FindAll(ctx context.Context) ([]*domain.Task, error) {
	return a.taskStore.FindAll(ctx)
}

func (a *taskRepositoryAdapter) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	return a.taskStore.FindByID(ctx, id)
}

func (a *taskRepositoryAdapter) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return a.taskStore.Save(ctx, task)
}

func (a *taskRepositoryAdapter) Delete(ctx context.Context, task *domain.Task) error {
	return a.taskStore.Delete(ctx, task)
}

// RunInTransaction implements TaskRepository.RunInTransaction using the
// store-level transaction helper and a transaction-bound task store.
func (a *taskRepositoryAdapter) RunInTransaction(
	ctx context.Context,
	fn func(ctx context.Context, repo TaskRepository) error,
) error {
	return store.RunInTransaction(ctx, a.db, func(ctx context.Context, tx *sql.Tx) error {
		txRepo := &taskRepositoryAdapter{
			taskStore: a.taskStore.WithTx(tx),
			db:        a.db,
		}
		return fn(ctx, txRepo)
	})
}
