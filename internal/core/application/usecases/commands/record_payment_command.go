package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand settles a parcel payment reported by the gateway.
type RecordPaymentCommand struct {
	paymentID     kernel.UUID
	parcelID      kernel.UUID
	email         kernel.Email
	amount        float64
	method        string
	transactionID string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment recording command. The payment
// id is generated up front so the handler can return it to the caller.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	parcelID kernel.UUID,
	email kernel.Email,
	amount float64,
	method string,
	transactionID string,
) (RecordPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		parcelID.Validate(),
		email.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}
	if amount <= 0 {
		return RecordPaymentCommand{}, errs.NewValueIsInvalidError("amount")
	}
	if method == "" {
		return RecordPaymentCommand{}, errs.NewValueIsRequiredError("payment method")
	}
	if transactionID == "" {
		return RecordPaymentCommand{}, errs.NewValueIsRequiredError("transaction id")
	}

	return RecordPaymentCommand{
		paymentID:     paymentID,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// PaymentID returns the identifier for the new payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ParcelID returns the parcel being paid for.
func (c RecordPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Email returns the payer's address.
func (c RecordPaymentCommand) Email() kernel.Email {
	return c.email
}

// Amount returns the paid amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// Method returns the payment method reported by the gateway.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// TransactionID returns the gateway transaction reference.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}
