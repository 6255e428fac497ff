package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"dotdo/internal/models"
	"dotdo/pkg/logger"
)

// MemoStore provides CRUD over the memos table.
type MemoStore struct {
	db *sql.DB
}

// NewMemoStore returns a MemoStore backed by the given pool.
func NewMemoStore(db *sql.DB) *MemoStore {
	return &MemoStore{db: db}
}

const memoColumns = `id, content, user_id, x, y, width, height, color, completed, image, created_at, updated_at`

func scanMemo(row interface{ Scan(...interface{}) error }) (models.Memo, error) {
	var m models.Memo
	err := row.Scan(&m.ID, &m.Content, &m.UserID, &m.X, &m.Y, &m.Width, &m.Height,
		&m.Color, &m.Completed, &m.Image, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// FindByUser returns all memos for a user, newest first.
func (s *MemoStore) FindByUser(ctx context.Context, userID string) ([]models.Memo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memoColumns+` FROM memos WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Error(ctx, "Repository FindByUser memos failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var memos []models.Memo
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			logger.Error(ctx, "Repository scan memo failed", "error", err)
			return nil, err
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

// Get returns a single memo by id, scoped to the owning user.
func (s *MemoStore) Get(ctx context.Context, id, userID string) (*models.Memo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+memoColumns+` FROM memos WHERE id = $1 AND user_id = $2`, id, userID)
	m, err := scanMemo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new memo, assigning id and timestamps.
func (s *MemoStore) Create(ctx context.Context, memo *models.Memo) error {
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}
	now := time.Now()
	memo.CreatedAt = now
	memo.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memos (`+memoColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		memo.ID, memo.Content, memo.UserID, memo.X, memo.Y, memo.Width, memo.Height,
		memo.Color, memo.Completed, memo.Image, memo.CreatedAt, memo.UpdatedAt)
	if err != nil {
		logger.Error(ctx, "Repository Create memo failed", "error", err)
	}
	return err
}

// Save writes the mutable fields of an existing memo back to the store.
func (s *MemoStore) Save(ctx context.Context, memo *models.Memo) error {
	memo.UpdatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`UPDATE memos SET content = $1, x = $2, y = $3, width = $4, height = $5,
		 color = $6, completed = $7, image = $8, updated_at = $9
		 WHERE id = $10 AND user_id = $11`,
		memo.Content, memo.X, memo.Y, memo.Width, memo.Height,
		memo.Color, memo.Completed, memo.Image, memo.UpdatedAt,
		memo.ID, memo.UserID)
	if err != nil {
		logger.Error(ctx, "Repository Save memo failed", "error", err, "id", memo.ID)
	}
	return err
}

// Delete removes a memo by id, scoped to the owning user.
func (s *MemoStore) Delete(ctx context.Context, id, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM memos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error(ctx, "Repository Delete memo failed", "error", err, "id", id)
	}
	return err
}
