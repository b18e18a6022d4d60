package commands

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"
)

// AssignRiderCommandHandler orchestrates rider assignment.
// Loads both aggregates, applies the coupled transitions (parcel
// pending -> in_transit, rider free -> in_delivery), and commits them in a
// single transaction.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory)
//	cmd, _ := NewAssignRiderCommand(parcelID, riderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // not found, parcel not pending, or rider unavailable
//	}
type AssignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory DeliveryUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment.
// Preconditions: the parcel exists and is pending; the rider exists, is
// active, and is free. A rider with a delivery in progress cannot take a
// second parcel.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	r, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = r.StartDelivery(); err != nil {
		return err
	}

	snapshot, err := parcel.NewAssignedRider(r.ID(), r.Name(), r.Email())
	if err != nil {
		return err
	}

	if err = p.Assign(snapshot); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
