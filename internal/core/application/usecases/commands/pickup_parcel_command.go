package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrPickupParcelCommandIsNotConstructed = errors.New(
	"PickupParcelCommand must be created via NewPickupParcelCommand constructor",
)

// PickupParcelCommand records that a rider collected a parcel from the
// sender: parcel in_transit -> picked_up, rider -> busy.
type PickupParcelCommand struct {
	parcelID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupParcelCommand creates a pickup command for a parcel/rider pair.
func NewPickupParcelCommand(parcelID, riderID kernel.UUID) (PickupParcelCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		riderID.Validate(),
	); err != nil {
		return PickupParcelCommand{}, err
	}

	return PickupParcelCommand{
		parcelID: parcelID,
		riderID:  riderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the parcel being picked up.
func (c PickupParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider performing the pickup.
func (c PickupParcelCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Validate ensures the command was created through the constructor.
func (c PickupParcelCommand) Validate() error {
	return c.guard.Validate(ErrPickupParcelCommandIsNotConstructed)
}
