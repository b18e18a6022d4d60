package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a parcel intake request from a customer.
// The parcel starts its lifecycle pending, unpaid, and not cashed out.
//
// Example:
//
//	createdBy, _ := kernel.NewEmail("customer@example.com")
//	cmd, err := NewCreateParcelCommand(createdBy)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println("created parcel", cmd.ParcelID())
type CreateParcelCommand struct {
	parcelID  kernel.UUID
	createdBy kernel.Email

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a parcel intake command.
// A unique identifier for the new parcel is generated here so callers can
// reference it before and after handling.
func NewCreateParcelCommand(createdBy kernel.Email) (CreateParcelCommand, error) {
	if err := createdBy.Validate(); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcelID:  kernel.NewUUID(),
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CreatedBy returns the customer creating the parcel.
func (c CreateParcelCommand) CreatedBy() kernel.Email {
	return c.createdBy
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}
