package postgres

import (
	"context"
	"database/sql"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of
// repository.UserRepository using database/sql with parameterized queries.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, email, hashed_password, is_active, created_at, updated_at`

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.UserRecord) (*model.UserRecord, error) {
	const q = `
		INSERT INTO users (name, email, hashed_password, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q, u.Name, u.Email, u.HashedPassword, u.IsActive)
	return scanUser(row)
}

// FindByEmail fetches a user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByID fetches a user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func scanUser(row *sql.Row) (*model.UserRecord, error) {
	var u model.UserRecord
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
