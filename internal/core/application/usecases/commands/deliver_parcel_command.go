package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
)

// DeliverParcelCommand records a completed delivery: parcel
// picked_up -> delivered, rider -> free.
type DeliverParcelCommand struct {
	parcelID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a delivery command for a parcel/rider pair.
func NewDeliverParcelCommand(parcelID, riderID kernel.UUID) (DeliverParcelCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		riderID.Validate(),
	); err != nil {
		return DeliverParcelCommand{}, err
	}

	return DeliverParcelCommand{
		parcelID: parcelID,
		riderID:  riderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the parcel being delivered.
func (c DeliverParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider completing the delivery.
func (c DeliverParcelCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Validate ensures the command was created through the constructor.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}
