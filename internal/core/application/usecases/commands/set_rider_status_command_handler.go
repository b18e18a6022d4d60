package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
)

// SetRiderStatusCommandHandler applies an approval decision to a rider and,
// on activation, promotes the matching account to the rider role in the same
// transaction. An activation without a registered account still succeeds,
// as applications may arrive before registration.
type SetRiderStatusCommandHandler struct {
	uowFactory RiderUserUoWFactory
}

// NewSetRiderStatusCommandHandler creates a handler for status decisions.
func NewSetRiderStatusCommandHandler(uowFactory RiderUserUoWFactory) SetRiderStatusCommandHandler {
	return SetRiderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the rider and, when activating, the matching user account.
func (h SetRiderStatusCommandHandler) Handle(ctx context.Context, command SetRiderStatusCommand) error {
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

	candidate, err := uow.RiderRepository().Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err := candidate.SetStatus(command.Status(), command.WorkStatus()); err != nil {
		return err
	}

	if err := uow.RiderRepository().Update(ctx, candidate); err != nil {
		return err
	}

	if command.Status() == rider.StatusActive {
		if err := h.promoteAccount(ctx, uow, candidate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h SetRiderStatusCommandHandler) promoteAccount(ctx context.Context, uow RiderUserUoW, candidate *rider.Rider) error {
	account, err := uow.UserRepository().GetByEmail(ctx, candidate.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := account.ChangeRole(user.RoleRider); err != nil {
		return err
	}

	return uow.UserRepository().Update(ctx, account)
}
