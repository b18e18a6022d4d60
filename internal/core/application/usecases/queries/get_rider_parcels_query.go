package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetRiderParcelsQueryIsNotConstructed = errors.New(
	"GetRiderParcelsQuery must be created via NewGetRiderParcelsQuery constructor",
)

// GetRiderParcelsQuery lists a rider's current workload: parcels assigned to
// the rider that are in_transit or picked_up.
type GetRiderParcelsQuery struct {
	riderEmail kernel.Email

	guard guard.ConstructorGuard
}

// NewGetRiderParcelsQuery creates a workload query for a rider.
func NewGetRiderParcelsQuery(riderEmail kernel.Email) (GetRiderParcelsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return GetRiderParcelsQuery{}, err
	}

	return GetRiderParcelsQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RiderEmail returns the rider whose workload is listed.
func (q GetRiderParcelsQuery) RiderEmail() kernel.Email {
	return q.riderEmail
}

// Validate ensures the query was created through the constructor.
func (q GetRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderParcelsQueryIsNotConstructed)
}
