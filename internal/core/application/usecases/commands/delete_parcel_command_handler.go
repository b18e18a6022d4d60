package commands

import (
	"context"
)

// DeleteParcelCommandHandler deletes a parcel and reports how many rows
// were removed so the caller can tell a missing parcel apart from a
// successful delete. Payment and tracking records keyed by the parcel
// are left untouched.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the parcel and returns the number of deleted rows.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, command DeleteParcelCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.ParcelRepository().Delete(ctx, command.ParcelID())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
