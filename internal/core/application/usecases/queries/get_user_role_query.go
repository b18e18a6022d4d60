package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

// GetUserRoleQuery retrieves an account's role by email. The HTTP layer
// calls it on every role-guarded request.
type GetUserRoleQuery struct {
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewGetUserRoleQuery creates a role lookup query.
func NewGetUserRoleQuery(email kernel.Email) (GetUserRoleQuery, error) {
	if err := email.Validate(); err != nil {
		return GetUserRoleQuery{}, err
	}

	return GetUserRoleQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Email returns the account's address.
func (q GetUserRoleQuery) Email() kernel.Email {
	return q.email
}

// Validate ensures the query was created through the constructor.
func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

// UserRoleResponse carries the looked-up role.
type UserRoleResponse struct {
	Email string
	Role  user.Role
}
