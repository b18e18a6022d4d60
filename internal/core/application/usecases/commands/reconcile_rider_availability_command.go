package commands

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var ErrReconcileRiderAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileRiderAvailabilityCommand must be created via NewReconcileRiderAvailabilityCommand constructor",
)

// ReconcileRiderAvailabilityCommand triggers a sweep over engaged riders.
// Lifecycle writes touch the parcel and the rider in one transaction, but a
// crash between requests can still leave a rider marked busy with no parcel
// to show for it. The sweep frees those riders.
type ReconcileRiderAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRiderAvailabilityCommand creates a parameterless sweep command.
func NewReconcileRiderAvailabilityCommand() ReconcileRiderAvailabilityCommand {
	return ReconcileRiderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRiderAvailabilityCommandIsNotConstructed)
}
