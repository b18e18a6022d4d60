package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	// Returns errs.ErrObjectNotFound when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by its unique email key.
	// Returns errs.ErrObjectNotFound when no account is registered.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}
