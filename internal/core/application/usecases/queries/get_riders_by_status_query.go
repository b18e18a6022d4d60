package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrGetRidersByStatusQueryIsNotConstructed = errors.New(
	"GetRidersByStatusQuery must be created via NewGetRidersByStatusQuery constructor",
)

// GetRidersByStatusQuery lists riders in one or more approval statuses.
// The back office uses it for the pending application queue and for the
// combined active/deactivated roster.
type GetRidersByStatusQuery struct {
	statuses []rider.Status

	guard guard.ConstructorGuard
}

// NewGetRidersByStatusQuery creates a rider listing query. At least one
// status is required and each one is validated.
func NewGetRidersByStatusQuery(statuses ...rider.Status) (GetRidersByStatusQuery, error) {
	if len(statuses) == 0 {
		return GetRidersByStatusQuery{}, errs.NewValueIsRequiredError("statuses")
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetRidersByStatusQuery{}, err
		}
	}

	return GetRidersByStatusQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Statuses returns the approval statuses to match.
func (q GetRidersByStatusQuery) Statuses() []rider.Status {
	return q.statuses
}

// Validate ensures the query was created through the constructor.
func (q GetRidersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersByStatusQueryIsNotConstructed)
}

// RiderResponse is the rider read model returned by rider listing queries.
type RiderResponse struct {
	ID         kernel.UUID
	Name       string
	Email      string
	District   string
	Status     rider.Status
	WorkStatus rider.WorkStatus
}
