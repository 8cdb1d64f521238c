package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/caseflow/task-api/internal/platform/logger"
	"github.com/caseflow/task-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// FindAll implements store.TaskStore.FindAll
// It returns every stored task ordered by ID.
func (s *PostgresTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, status, due_date
		FROM tasks
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// FindByID implements store.TaskStore.FindByID
// It retrieves a task by its unique ID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, status, due_date
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", store.ErrTaskNotFound, id)
		}
		log.Error("failed to get task by ID",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return task, nil
}

// Save implements store.TaskStore.Save
// A task with a zero ID is inserted and receives the next identity from the
// tasks sequence; a task with a non-zero ID fully replaces the stored row.
func (s *PostgresTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task.ID == 0 {
		query := `
			INSERT INTO tasks (title, description, status, due_date)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := s.db.QueryRowContext(ctx, query,
			task.Title,
			task.Description,
			task.Status,
			task.DueDate,
		).Scan(&task.ID)
		if err != nil {
			log.Error("failed to insert task",
				slog.String("title", task.Title),
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		return task, nil
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, due_date = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete implements store.TaskStore.Delete
// It removes the row matching the task's ID.
// Returns store.ErrNotFound (wrapped) if no row matches.
func (s *PostgresTaskStore) Delete(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, task.ID)
	if err != nil {
		log.Error("failed to delete task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return CheckRowsAffected(result, "task")
}

// Count implements store.TaskStore.Count
// It returns the number of stored tasks.
func (s *PostgresTaskStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.TaskStore.WithTx
// It returns a new TaskStore that executes against the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanning a single task.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row in the column order used by the queries above.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var description sql.NullString

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Status,
		&task.DueDate,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	return &task, nil
}
