package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand requests the assignment of a rider to a pending parcel.
// Handling moves the parcel to in_transit, snapshots the rider onto it, and
// marks the rider in_delivery. Both writes happen inside one transaction so
// the two entities cannot diverge.
type AssignRiderCommand struct {
	parcelID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates an assignment command for a parcel/rider pair.
func NewAssignRiderCommand(parcelID, riderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		riderID.Validate(),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID: parcelID,
		riderID:  riderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the parcel to assign.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider taking the parcel.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}
