package commands

import (
	"context"
)

// SetUserRoleCommandHandler changes an account's role.
type SetUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserRoleCommandHandler creates a handler for role changes.
func NewSetUserRoleCommandHandler(uowFactory UserUoWFactory) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the account by email and persists the new role.
func (h SetUserRoleCommandHandler) Handle(ctx context.Context, command SetUserRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if err != nil {
		return err
	}

	if err := account.ChangeRole(command.Role()); err != nil {
		return err
	}

	if err := uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
