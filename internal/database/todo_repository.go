package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/todo/internal/models"
)

// TodoRepo handles all todo-related database operations
type TodoRepo struct {
	db *sql.DB
}

// NewTodoRepo creates a repository over an initialized database
func NewTodoRepo(db *sql.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

var _ TodoRepository = (*TodoRepo)(nil)

// ============================================================================
// Todo Operations
// ============================================================================

// Create inserts a pending todo and returns it with the id assigned by the
// store. The insert and the read-back share one transaction.
func (r *TodoRepo) Create(ctx context.Context, description string) (*models.Todo, error) {
	var todo *models.Todo
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO todos (description, completed) VALUES (?, 0)",
			description,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		todo, err = scanTodo(tx.QueryRowContext(ctx,
			`SELECT id, description, completed, created_at FROM todos WHERE id = ?`, id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// List retrieves the todos selected by filter, ordered by id
func (r *TodoRepo) List(ctx context.Context, filter models.ListFilter) ([]*models.Todo, error) {
	query := `SELECT id, description, completed, created_at FROM todos`
	var args []any

	switch filter {
	case models.FilterCompleted:
		query += ` WHERE completed = ?`
		args = append(args, true)
	case models.FilterPending:
		query += ` WHERE completed = ?`
		args = append(args, false)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// Complete sets completed = 1. Completing an already completed todo still
// matches the row, so the operation is idempotent.
func (r *TodoRepo) Complete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE todos SET completed = 1 WHERE id = ?", id)
	return affected(result, err)
}

// Delete removes a todo from the database
func (r *TodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	return affected(result, err)
}

// UpdateDescription replaces the description, leaving id and completed untouched
func (r *TodoRepo) UpdateDescription(ctx context.Context, id int64, description string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE todos SET description = ? WHERE id = ?",
		description, id,
	)
	return affected(result, err)
}
