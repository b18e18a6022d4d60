package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// PaymentStatus represents whether the parcel's delivery fee has been paid.
// The only legal transition is Unpaid -> Paid; a parcel never becomes unpaid
// again.
type PaymentStatus string

const (
	// PaymentStatusUnpaid is the initial payment status of a new parcel.
	PaymentStatusUnpaid PaymentStatus = "unpaid"

	// PaymentStatusPaid indicates a payment record exists for the parcel.
	PaymentStatusPaid PaymentStatus = "paid"
)

// Validate checks that the status is one of the defined payment statuses.
func (s PaymentStatus) Validate() error {
	if s != PaymentStatusUnpaid && s != PaymentStatusPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a valid payment status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// Pay transitions the status to Paid. Paying an already-paid parcel is a
// conflict; callers use this to avoid inserting duplicate payment records.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != PaymentStatusUnpaid {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%s parcel cannot be paid again", s),
		)
	}
	return PaymentStatusPaid, nil
}

// CashoutStatus represents whether the rider's delivery fee for the parcel
// has been settled. Cashout is a side channel: it is independent of the
// delivery lifecycle and may happen at any time.
type CashoutStatus string

const (
	// CashoutStatusNone is the initial cashout status.
	CashoutStatusNone CashoutStatus = "none"

	// CashoutStatusCashedOut indicates the delivery fee has been settled.
	CashoutStatusCashedOut CashoutStatus = "cashed_out"
)

// Validate checks that the status is one of the defined cashout statuses.
func (s CashoutStatus) Validate() error {
	if s != CashoutStatusNone && s != CashoutStatusCashedOut {
		return errs.NewValueIsInvalidErrorWithCause(
			"cashout status",
			fmt.Errorf("%q is not a valid cashout status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s CashoutStatus) String() string {
	return string(s)
}
