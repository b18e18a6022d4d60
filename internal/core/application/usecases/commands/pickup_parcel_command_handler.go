package commands

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

// PickupParcelCommandHandler advances a parcel to picked_up and marks the
// rider busy using conditional single-row writes.
//
// Both updates run in one transaction, but neither is a precondition of the
// other: the handler reports how many rows each store changed instead of
// failing. A pickup of a missing parcel, or of one that already advanced,
// modifies zero parcel rows and is not an error.
type PickupParcelCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickupParcelCommandHandler creates a handler for pickup operations.
func NewPickupParcelCommandHandler(uowFactory DeliveryUoWFactory) PickupParcelCommandHandler {
	return PickupParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup and returns the per-store modified counts.
// The parcel write is conditioned on the current status being in_transit,
// which keeps the lifecycle forward-only without a prior read.
func (h PickupParcelCommandHandler) Handle(ctx context.Context, command PickupParcelCommand) (UpdateCounts, error) {
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
		parcel.DeliveryStatusInTransit,
		parcel.DeliveryStatusPickedUp,
	)
	if err != nil {
		return UpdateCounts{}, err
	}

	ridersModified, err := uow.RiderRepository().UpdateWorkStatus(ctx, command.RiderID(), rider.WorkStatusBusy)
	if err != nil {
		return UpdateCounts{}, err
	}

	counts := UpdateCounts{
		ParcelsModified: parcelsModified,
		RidersModified:  ridersModified,
	}

	return counts, uow.Commit(ctx)
}
