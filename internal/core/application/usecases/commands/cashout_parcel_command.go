package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrCashoutParcelCommandIsNotConstructed = errors.New(
	"CashoutParcelCommand must be created via NewCashoutParcelCommand constructor",
)

// CashoutParcelCommand settles the rider's delivery fee for a parcel.
// Cashout is independent of the delivery lifecycle and idempotent:
// re-invoking it succeeds without changing the original settlement time.
type CashoutParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCashoutParcelCommand creates a cashout command for a parcel.
func NewCashoutParcelCommand(parcelID kernel.UUID) (CashoutParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CashoutParcelCommand{}, err
	}

	return CashoutParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the parcel being cashed out.
func (c CashoutParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Validate ensures the command was created through the constructor.
func (c CashoutParcelCommand) Validate() error {
	return c.guard.Validate(ErrCashoutParcelCommandIsNotConstructed)
}
