package commands

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler persists new parcels at intake.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel intake.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, constructs the aggregate, and persists it.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(command.ParcelID(), command.CreatedBy(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
