package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand registers an account by email. Registration is
// idempotent: a repeated registration of the same address is not an error.
type RegisterUserCommand struct {
	userID kernel.UUID
	email  kernel.Email

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command.
func NewRegisterUserCommand(userID kernel.UUID, email kernel.Email) (RegisterUserCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		email.Validate(),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID: userID,
		email:  email,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the address being registered.
func (c RegisterUserCommand) Email() kernel.Email {
	return c.email
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}
