package todo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasklane/tasklane/internal/shared"
)

// Repository defines persistence operations for tasks. Every read and write
// is filtered by the owning user id.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const taskColumns = `id, title, COALESCE(description, ''), completed, user_id, created_at, updated_at`

// Create inserts a new task row, assigning id and timestamps.
func (r *PGRepository) Create(ctx context.Context, task *Task) error {
	now := time.Now().UTC()
	task.ID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`,
		task.ID, task.Title, task.Description, task.Completed, task.UserID, task.CreatedAt, task.UpdatedAt)
	return err
}

// ListByOwner returns the owner's tasks, newest first.
func (r *PGRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.UserID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByOwner fetches one task; a row owned by someone else is
// indistinguishable from a missing one.
func (r *PGRepository) FindByOwner(ctx context.Context, ownerID, id uuid.UUID) (*Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	var task Task
	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update writes the task's mutable fields back, owner-filtered.
func (r *PGRepository) Update(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET title = $3, description = NULLIF($4, ''), completed = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`,
		task.ID, task.UserID, task.Title, task.Description, task.Completed, task.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the task, owner-filtered.
func (r *PGRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
