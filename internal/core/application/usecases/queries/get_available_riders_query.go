package queries

import (
	"errors"

	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery lists active, free riders covering a district.
// Dispatchers use it to pick a rider for a pending parcel.
type GetAvailableRidersQuery struct {
	district string

	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates an availability query for a district.
func NewGetAvailableRidersQuery(district string) (GetAvailableRidersQuery, error) {
	if district == "" {
		return GetAvailableRidersQuery{}, errs.NewValueIsRequiredError("district")
	}

	return GetAvailableRidersQuery{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// District returns the delivery area to match.
func (q GetAvailableRidersQuery) District() string {
	return q.district
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}
