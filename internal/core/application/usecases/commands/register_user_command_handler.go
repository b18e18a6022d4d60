package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
)

// RegisterUserCommandHandler creates an account unless one already exists
// for the email. The returned flag reports whether a row was inserted, so
// the caller can distinguish a first registration from a repeat.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account and returns true when a new one was created.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if err == nil {
		return false, uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	account, err := user.NewUser(command.UserID(), command.Email(), time.Now().UTC())
	if err != nil {
		return false, err
	}

	if err := uow.UserRepository().Add(ctx, account); err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}
