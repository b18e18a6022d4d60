package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
)

var ErrSetRiderStatusCommandIsNotConstructed = errors.New(
	"SetRiderStatusCommand must be created via NewSetRiderStatusCommand constructor",
)

// SetRiderStatusCommand applies a back-office decision on a rider
// application. The decision carries both the approval status and the work
// status to put the rider in.
type SetRiderStatusCommand struct {
	riderID    kernel.UUID
	status     rider.Status
	workStatus rider.WorkStatus

	guard guard.ConstructorGuard
}

// NewSetRiderStatusCommand creates a status decision command.
func NewSetRiderStatusCommand(
	riderID kernel.UUID,
	status rider.Status,
	workStatus rider.WorkStatus,
) (SetRiderStatusCommand, error) {
	if err := errors.Join(
		riderID.Validate(),
		status.Validate(),
		workStatus.Validate(),
	); err != nil {
		return SetRiderStatusCommand{}, err
	}

	return SetRiderStatusCommand{
		riderID:    riderID,
		status:     status,
		workStatus: workStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RiderID returns the rider the decision applies to.
func (c SetRiderStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the new approval status.
func (c SetRiderStatusCommand) Status() rider.Status {
	return c.status
}

// WorkStatus returns the new availability.
func (c SetRiderStatusCommand) WorkStatus() rider.WorkStatus {
	return c.workStatus
}

// Validate ensures the command was created through the constructor.
func (c SetRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderStatusCommandIsNotConstructed)
}
