package commands

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

// DeliverParcelCommandHandler advances a parcel to delivered and frees the
// rider. Same conditional-write, modified-count contract as pickup.
type DeliverParcelCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeliverParcelCommandHandler creates a handler for delivery completion.
func NewDeliverParcelCommandHandler(uowFactory DeliveryUoWFactory) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery and returns the per-store modified counts.
func (h DeliverParcelCommandHandler) Handle(ctx context.Context, command DeliverParcelCommand) (UpdateCounts, error) {
	if err := command.Validate(); err != nil {
		return UpdateCounts{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateCounts{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelsModified, err := uow.ParcelRepository().UpdateDeliveryStatus(
		ctx,
		command.ParcelID(),
		parcel.DeliveryStatusPickedUp,
		parcel.DeliveryStatusDelivered,
	)
	if err != nil {
		return UpdateCounts{}, err
	}

	ridersModified, err := uow.RiderRepository().UpdateWorkStatus(ctx, command.RiderID(), rider.WorkStatusFree)
	if err != nil {
		return UpdateCounts{}, err
	}

	counts := UpdateCounts{
		ParcelsModified: parcelsModified,
		RidersModified:  ridersModified,
	}

	return counts, uow.Commit(ctx)
}
