package store

import (
	"context"
	"database/sql"

	"github.com/caseflow/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. It is a thin
// gateway keyed by the task's integer ID; callers are responsible for
// existence checks and field-level validation.
type TaskStore interface {
	// FindAll returns every stored task ordered by ID.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Save persists a task. If the task's ID is zero, a new row is inserted
	// and storage assigns the next identity; otherwise the existing row is
	// fully replaced with the given field values.
	// Returns the persisted representation, including the assigned ID.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes the row matching the task's ID. Callers are expected to
	// have confirmed existence first; a missing row surfaces as
	// ErrTaskNotFound.
	Delete(ctx context.Context, task *domain.Task) error

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. This allows a fetch-mutate-save sequence to be executed
	// atomically with respect to concurrent writers of the same row.
	// The transaction is created and managed by the caller (typically a
	// service) via RunInTransaction.
	WithTx(tx *sql.Tx) TaskStore
}
