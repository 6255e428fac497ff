package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"dotdo/internal/models"
	"dotdo/pkg/logger"
)

// UserStore provides account lookups and creation.
type UserStore struct {
	db *sql.DB
}

// NewUserStore returns a UserStore backed by the given pool.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, email, username, password_hash, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// Create inserts a new user, assigning id and creation time.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		logger.Error(ctx, "Repository Create user failed", "error", err)
	}
	return err
}

// FindByEmail returns the user with the given email, or nil.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmailOrUsername returns the first user matching either field, or nil.
func (s *UserStore) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR username = $2 LIMIT 1`, email, username)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given id, or nil.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
