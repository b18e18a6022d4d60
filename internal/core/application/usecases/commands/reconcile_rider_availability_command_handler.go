package commands

import (
	"context"

	"zapshift/internal/core/domain/model/rider"
)

// ReconcileRiderAvailabilityCommandHandler repairs rider availability.
// A rider counts as stuck when the work status says engaged but no parcel in
// transit or picked up carries that rider's email.
type ReconcileRiderAvailabilityCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReconcileRiderAvailabilityCommandHandler creates a handler for the
// availability sweep.
func NewReconcileRiderAvailabilityCommandHandler(uowFactory DeliveryUoWFactory) ReconcileRiderAvailabilityCommandHandler {
	return ReconcileRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle frees every stuck rider and reports how many were repaired.
// The whole sweep runs in one transaction.
func (h ReconcileRiderAvailabilityCommandHandler) Handle(
	ctx context.Context,
	command ReconcileRiderAvailabilityCommand,
) (int64, error) {
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

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	engaged, err := riderRepo.GetAllEngaged(ctx)
	if err != nil {
		return 0, err
	}

	var freed int64
	for _, candidate := range engaged {
		active, activeErr := parcelRepo.HasActiveAssignment(ctx, candidate.Email())
		if activeErr != nil {
			return 0, activeErr
		}
		if active {
			continue
		}

		modified, updateErr := riderRepo.UpdateWorkStatus(ctx, candidate.ID(), rider.WorkStatusFree)
		if updateErr != nil {
			return 0, updateErr
		}
		freed += modified
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return freed, nil
}
