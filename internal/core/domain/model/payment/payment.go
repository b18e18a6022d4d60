// Package payment provides the immutable record of a settled parcel payment.
package payment

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment records a settled payment against a parcel. Records are immutable
// once created; a parcel has at most one because recording is conditioned on
// the parcel not already being paid.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	email         kernel.Email
	amount        float64
	method        string
	transactionID string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a payment record. The transaction id comes from the
// external payment gateway; the paid-at timestamp is stamped by the caller.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email kernel.Email,
	amount float64,
	method string,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		email.Validate(),
	); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if method == "" {
		return nil, errs.NewValueIsRequiredError("payment method")
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transaction id")
	}

	return &Payment{
		id:            id,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email kernel.Email,
	amount float64,
	method string,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, parcelID, email, amount, method, transactionID, paidAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the record identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// ParcelID returns the parcel the payment settles.
func (p *Payment) ParcelID() kernel.UUID {
	return p.parcelID
}

// Email returns the payer's address.
func (p *Payment) Email() kernel.Email {
	return p.email
}

// Amount returns the paid amount.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment method reported by the gateway.
func (p *Payment) Method() string {
	return p.method
}

// TransactionID returns the gateway transaction reference.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// PaidAt returns the settlement timestamp.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}
