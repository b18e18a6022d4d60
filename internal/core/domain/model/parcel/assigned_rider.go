package parcel

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// ErrAssignedRiderIsNotConstructed is returned when an AssignedRider instance
// was not created through NewAssignedRider.
var ErrAssignedRiderIsNotConstructed = errors.New("AssignedRider must be created via NewAssignedRider constructor")

// AssignedRider is a value object snapshotting the rider a parcel was
// assigned to. A parcel either carries a complete snapshot (id, name, email)
// or none at all; partially populated rider fields cannot be constructed.
type AssignedRider struct {
	id    kernel.UUID
	name  string
	email kernel.Email
}

// NewAssignedRider creates a rider snapshot for assignment to a parcel.
// All three fields are required together.
func NewAssignedRider(id kernel.UUID, name string, email kernel.Email) (AssignedRider, error) {
	if err := id.Validate(); err != nil {
		return AssignedRider{}, err
	}
	if name == "" {
		return AssignedRider{}, errs.NewValueIsRequiredError("rider name")
	}
	if err := email.Validate(); err != nil {
		return AssignedRider{}, err
	}

	return AssignedRider{id: id, name: name, email: email}, nil
}

// ID returns the assigned rider's identifier.
func (r AssignedRider) ID() kernel.UUID {
	return r.id
}

// Name returns the assigned rider's display name.
func (r AssignedRider) Name() string {
	return r.name
}

// Email returns the assigned rider's address.
func (r AssignedRider) Email() kernel.Email {
	return r.email
}

// Validate ensures the snapshot was created through NewAssignedRider.
func (r AssignedRider) Validate() error {
	if r.id.Validate() != nil || r.name == "" || r.email.Validate() != nil {
		return ErrAssignedRiderIsNotConstructed
	}
	return nil
}
