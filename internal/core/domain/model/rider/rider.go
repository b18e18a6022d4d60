package rider

import (
	"errors"
	"fmt"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")
	// ErrRiderNotApproved is returned when an unapproved rider is given work.
	ErrRiderNotApproved = errors.New("rider is not approved for deliveries")
	// ErrRiderNotFree is returned when a rider who already has a parcel in
	// progress is assigned another one.
	ErrRiderNotFree = errors.New("rider already has a delivery in progress")
)

// Rider represents a courier responsible for pickup and delivery execution.
// It is an aggregate root managing the rider's approval state and current
// availability.
//
// Business rules:
//   - A new application starts as pending and free
//   - Only an active, free rider can start a delivery
//   - Availability oscillates free -> in_delivery -> busy -> free with the
//     parcel it is coupled to
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the rider's display name
	name string
	// email identifies the rider across users and parcels
	email kernel.Email
	// district is the delivery area the rider covers
	district string
	// status is the application/approval state
	status Status
	// workStatus is the current availability
	workStatus WorkStatus

	guard guard.ConstructorGuard
}

// NewRider creates a rider application: pending approval and free.
func NewRider(id kernel.UUID, name string, email kernel.Email, district string) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}
	if district == "" {
		return nil, errs.NewValueIsRequiredError("district")
	}

	return &Rider{
		id:         id,
		name:       name,
		email:      email,
		district:   district,
		status:     StatusPending,
		workStatus: WorkStatusFree,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(
	id kernel.UUID,
	name string,
	email kernel.Email,
	district string,
	status Status,
	workStatus WorkStatus,
) (*Rider, error) {
	if err := errors.Join(
		id.Validate(),
		email.Validate(),
		status.Validate(),
		workStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if district == "" {
		return nil, errs.NewValueIsRequiredError("district")
	}

	return &Rider{
		id:         id,
		name:       name,
		email:      email,
		district:   district,
		status:     status,
		workStatus: workStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's address.
func (r *Rider) Email() kernel.Email {
	return r.email
}

// District returns the delivery area the rider covers.
func (r *Rider) District() string {
	return r.district
}

// Status returns the approval state.
func (r *Rider) Status() Status {
	return r.status
}

// WorkStatus returns the current availability.
func (r *Rider) WorkStatus() WorkStatus {
	return r.workStatus
}

// SetStatus applies an administrative status decision together with an
// explicit work status, as the back office submits both in one action.
func (r *Rider) SetStatus(status Status, workStatus WorkStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := workStatus.Validate(); err != nil {
		return err
	}

	r.status = status
	r.workStatus = workStatus
	return nil
}

// StartDelivery marks the rider as heading to a pickup. Requires an active,
// free rider: one rider carries at most one non-terminal parcel.
func (r *Rider) StartDelivery() error {
	if r.status != StatusActive {
		return fmt.Errorf("%w: status is %s", ErrRiderNotApproved, r.status)
	}
	if r.workStatus != WorkStatusFree {
		return fmt.Errorf("%w: work status is %s", ErrRiderNotFree, r.workStatus)
	}

	r.workStatus = WorkStatusInDelivery
	return nil
}

// MarkBusy records that the rider has picked the parcel up.
func (r *Rider) MarkBusy() {
	r.workStatus = WorkStatusBusy
}

// Free releases the rider after a completed delivery.
func (r *Rider) Free() {
	r.workStatus = WorkStatusFree
}
