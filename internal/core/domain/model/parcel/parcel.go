package parcel

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel represents a shipment unit tracked through delivery. It is the
// aggregate root governing the delivery lifecycle, payment state, and rider
// assignment.
//
// Invariants:
//   - delivery status only advances forward along the transition graph
//   - the assigned rider snapshot is either fully set or absent
//   - payment moves from unpaid to paid exactly once
//   - cashout is a side channel and idempotent
type Parcel struct {
	// id is the stable identifier of the parcel
	id kernel.UUID

	// createdBy identifies the customer who created the parcel
	createdBy kernel.Email

	// deliveryStatus is the parcel's position in the delivery lifecycle
	deliveryStatus DeliveryStatus

	// paymentStatus records whether the delivery fee has been paid
	paymentStatus PaymentStatus

	// cashoutStatus records whether the rider's fee has been settled
	cashoutStatus CashoutStatus

	// cashedOutAt is set once on the none -> cashed_out transition
	cashedOutAt *time.Time

	// assignedRider is nil until a rider is assigned
	assignedRider *AssignedRider

	// createdAt is the intake timestamp
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel at intake: pending delivery, unpaid, not cashed
// out, with no rider assigned.
func NewParcel(id kernel.UUID, createdBy kernel.Email, createdAt time.Time) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:             id,
		createdBy:      createdBy,
		deliveryStatus: DeliveryStatusPending,
		paymentStatus:  PaymentStatusUnpaid,
		cashoutStatus:  CashoutStatusNone,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreParcel reconstructs a parcel from persistence. All stored state is
// validated so invalid rows cannot enter the domain.
func RestoreParcel(
	id kernel.UUID,
	createdBy kernel.Email,
	deliveryStatus DeliveryStatus,
	paymentStatus PaymentStatus,
	cashoutStatus CashoutStatus,
	cashedOutAt *time.Time,
	assignedRider *AssignedRider,
	createdAt time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		createdBy.Validate(),
		deliveryStatus.Validate(),
		paymentStatus.Validate(),
		cashoutStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedRider != nil {
		if err := assignedRider.Validate(); err != nil {
			return nil, err
		}
	}

	return &Parcel{
		id:             id,
		createdBy:      createdBy,
		deliveryStatus: deliveryStatus,
		paymentStatus:  paymentStatus,
		cashoutStatus:  cashoutStatus,
		cashedOutAt:    cashedOutAt,
		assignedRider:  assignedRider,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel's identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// CreatedBy returns the customer who created the parcel.
func (p *Parcel) CreatedBy() kernel.Email {
	return p.createdBy
}

// DeliveryStatus returns the current lifecycle status.
func (p *Parcel) DeliveryStatus() DeliveryStatus {
	return p.deliveryStatus
}

// PaymentStatus returns the current payment status.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// CashoutStatus returns the current cashout status.
func (p *Parcel) CashoutStatus() CashoutStatus {
	return p.cashoutStatus
}

// CashedOutAt returns the settlement timestamp, or nil if not cashed out.
func (p *Parcel) CashedOutAt() *time.Time {
	return p.cashedOutAt
}

// AssignedRider returns the rider snapshot, or nil while the parcel is
// unassigned.
func (p *Parcel) AssignedRider() *AssignedRider {
	return p.assignedRider
}

// CreatedAt returns the intake timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// IsCompleted reports whether the parcel reached a terminal delivery status.
func (p *Parcel) IsCompleted() bool {
	return p.deliveryStatus.IsCompleted()
}

// Assign attaches a rider snapshot and moves the parcel to InTransit.
// The parcel must still be Pending.
func (p *Parcel) Assign(rider AssignedRider) error {
	if err := rider.Validate(); err != nil {
		return err
	}

	newStatus, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.assignedRider = &rider
	return nil
}

// Pickup moves the parcel to PickedUp. The parcel must be InTransit.
func (p *Parcel) Pickup() error {
	newStatus, err := p.deliveryStatus.Pickup()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	return nil
}

// Deliver moves the parcel to Delivered. The parcel must be PickedUp.
func (p *Parcel) Deliver() error {
	newStatus, err := p.deliveryStatus.Deliver()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	return nil
}

// MarkPaid flips the payment status to Paid. Returns an error when the
// parcel is already paid so callers can report a conflict instead of
// recording a duplicate payment.
func (p *Parcel) MarkPaid() error {
	newStatus, err := p.paymentStatus.Pay()
	if err != nil {
		return err
	}

	p.paymentStatus = newStatus
	return nil
}

// Cashout settles the rider's fee. The operation is idempotent: calling it
// on an already cashed-out parcel keeps the original settlement timestamp
// and succeeds.
func (p *Parcel) Cashout(at time.Time) {
	if p.cashoutStatus == CashoutStatusCashedOut {
		return
	}

	p.cashoutStatus = CashoutStatusCashedOut
	p.cashedOutAt = &at
}
