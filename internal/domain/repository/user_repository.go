// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
// All implementations must issue parameterized statements; usernames and
// hashes are never interpolated into query text.
type UserRepository interface {
	// Create persists a new user and fills in the store-assigned ID and
	// timestamps. A username collision surfaces as the domain conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by username, including the
	// password hash for verification by the account service. Returns
	// ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// DeleteByID removes the user with the given id and reports the number of
	// rows removed. Deleting a non-existent id is not an error and returns
	// zero.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
