package commands

import (
	"errors"
	"fmt"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrSetUserRoleCommandIsNotConstructed = errors.New(
	"SetUserRoleCommand must be created via NewSetUserRoleCommand constructor",
)

// SetUserRoleCommand changes an account's role by email. Only the admin and
// user roles can be set this way; the rider role is granted exclusively
// through rider activation.
type SetUserRoleCommand struct {
	email kernel.Email
	role  user.Role

	guard guard.ConstructorGuard
}

// NewSetUserRoleCommand creates a role change command.
func NewSetUserRoleCommand(email kernel.Email, role user.Role) (SetUserRoleCommand, error) {
	if err := email.Validate(); err != nil {
		return SetUserRoleCommand{}, err
	}
	if role != user.RoleAdmin && role != user.RoleUser {
		return SetUserRoleCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q cannot be assigned directly", role),
		)
	}

	return SetUserRoleCommand{
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Email returns the account's address.
func (c SetUserRoleCommand) Email() kernel.Email {
	return c.email
}

// Role returns the role to assign.
func (c SetUserRoleCommand) Role() user.Role {
	return c.role
}

// Validate ensures the command was created through the constructor.
func (c SetUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetUserRoleCommandIsNotConstructed)
}
