package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetRiderCompletedParcelsQueryIsNotConstructed = errors.New(
	"GetRiderCompletedParcelsQuery must be created via NewGetRiderCompletedParcelsQuery constructor",
)

// GetRiderCompletedParcelsQuery lists a rider's finished deliveries,
// including service center handovers. Riders read it to see what is
// eligible for cashout.
type GetRiderCompletedParcelsQuery struct {
	riderEmail kernel.Email

	guard guard.ConstructorGuard
}

// NewGetRiderCompletedParcelsQuery creates a completed deliveries query.
func NewGetRiderCompletedParcelsQuery(riderEmail kernel.Email) (GetRiderCompletedParcelsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return GetRiderCompletedParcelsQuery{}, err
	}

	return GetRiderCompletedParcelsQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RiderEmail returns the rider whose completed deliveries are listed.
func (q GetRiderCompletedParcelsQuery) RiderEmail() kernel.Email {
	return q.riderEmail
}

// Validate ensures the query was created through the constructor.
func (q GetRiderCompletedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderCompletedParcelsQueryIsNotConstructed)
}
