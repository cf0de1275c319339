// Package repository contains data access abstractions. Implementations
// live in subpackages (e.g. postgres).
package repository

import (
	"context"

	"resumeapi/internal/model"
)

// UserRepository defines persistence for user accounts. No business logic
// here, strictly storage operations; not-found is reported as sql.ErrNoRows
// for the caller to translate.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record,
	// including values set by database defaults.
	Create(ctx context.Context, u *model.UserRecord) (*model.UserRecord, error)

	// FindByEmail returns the user with the given email.
	FindByEmail(ctx context.Context, email string) (*model.UserRecord, error)

	// FindByID returns the user with the given ID.
	FindByID(ctx context.Context, id string) (*model.UserRecord, error)
}
