package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrApplyRiderCommandIsNotConstructed = errors.New(
	"ApplyRiderCommand must be created via NewApplyRiderCommand constructor",
)

// ApplyRiderCommand submits a rider application. The application is stored
// pending approval; a back-office decision activates or deactivates it later.
type ApplyRiderCommand struct {
	riderID  kernel.UUID
	name     string
	email    kernel.Email
	district string

	guard guard.ConstructorGuard
}

// NewApplyRiderCommand creates a rider application command.
func NewApplyRiderCommand(
	riderID kernel.UUID,
	name string,
	email kernel.Email,
	district string,
) (ApplyRiderCommand, error) {
	if err := errors.Join(
		riderID.Validate(),
		email.Validate(),
	); err != nil {
		return ApplyRiderCommand{}, err
	}
	if name == "" {
		return ApplyRiderCommand{}, errs.NewValueIsRequiredError("name")
	}
	if district == "" {
		return ApplyRiderCommand{}, errs.NewValueIsRequiredError("district")
	}

	return ApplyRiderCommand{
		riderID:  riderID,
		name:     name,
		email:    email,
		district: district,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RiderID returns the identifier for the new application.
func (c ApplyRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the applicant's display name.
func (c ApplyRiderCommand) Name() string {
	return c.name
}

// Email returns the applicant's address.
func (c ApplyRiderCommand) Email() kernel.Email {
	return c.email
}

// District returns the delivery area the applicant covers.
func (c ApplyRiderCommand) District() string {
	return c.district
}

// Validate ensures the command was created through the constructor.
func (c ApplyRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyRiderCommandIsNotConstructed)
}
