package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/google/uuid"
)

// UserStore persists accounts in the 'users' table.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

const userColumns = "id, role, email, password_hash, full_name, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Role, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert writes a new user row, assigning its UUID.
func (s *UserStore) Insert(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, role, email, password_hash, full_name)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Role, u.Email, u.PasswordHash, u.FullName,
	)
	if isDuplicate(err) {
		return apperr.BusinessRule("an account with this email already exists")
	}
	return err
}

// GetByEmail returns the user with the given email, or (nil, nil) if absent.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// GetByID returns the user with the given ID, or (nil, nil) if absent.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}
