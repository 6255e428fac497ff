package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"dotdo/internal/models"
	"dotdo/pkg/logger"
)

// TodoStore provides CRUD over the todos table.
type TodoStore struct {
	db *sql.DB
}

// NewTodoStore returns a TodoStore backed by the given pool.
func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

const todoColumns = `id, text, description, deadline, completed, user_id, created_by_bot, created_at, updated_at`

func scanTodo(row interface{ Scan(...interface{}) error }) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Description, &t.Deadline, &t.Completed,
		&t.UserID, &t.CreatedByBot, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// FindByUser returns all todos for a user, newest first.
func (s *TodoStore) FindByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Error(ctx, "Repository FindByUser failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var todos []models.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan todo failed", "error", err)
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// FindByUserAndText returns the oldest todo whose text contains the
// fragment, case-insensitive, or nil when no todo matches.
func (s *TodoStore) FindByUserAndText(ctx context.Context, userID, fragment string) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos
		 WHERE user_id = $1 AND text ILIKE '%' || $2 || '%'
		 ORDER BY created_at ASC LIMIT 1`, userID, fragment)
	t, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "Repository FindByUserAndText failed", "error", err)
		return nil, err
	}
	return &t, nil
}

// Get returns a single todo by id, scoped to the owning user.
func (s *TodoStore) Get(ctx context.Context, id, userID string) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	t, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new todo, assigning id and timestamps.
func (s *TodoStore) Create(ctx context.Context, todo *models.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		todo.ID, todo.Text, todo.Description, todo.Deadline, todo.Completed,
		todo.UserID, todo.CreatedByBot, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		logger.Error(ctx, "Repository Create todo failed", "error", err)
	}
	return err
}

// Save writes the mutable fields of an existing todo back to the store.
func (s *TodoStore) Save(ctx context.Context, todo *models.Todo) error {
	todo.UpdatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos SET text = $1, description = $2, deadline = $3, completed = $4, updated_at = $5
		 WHERE id = $6 AND user_id = $7`,
		todo.Text, todo.Description, todo.Deadline, todo.Completed, todo.UpdatedAt,
		todo.ID, todo.UserID)
	if err != nil {
		logger.Error(ctx, "Repository Save todo failed", "error", err, "id", todo.ID)
	}
	return err
}

// Delete removes a todo by id, scoped to the owning user.
func (s *TodoStore) Delete(ctx context.Context, id, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error(ctx, "Repository Delete todo failed", "error", err, "id", id)
	}
	return err
}
