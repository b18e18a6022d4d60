package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrGetDeliveryStatusCountsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatusCountsQuery must be created via NewGetDeliveryStatusCountsQuery constructor",
)

// GetDeliveryStatusCountsQuery aggregates parcels by delivery status.
// With a rider email set, only parcels assigned to that rider are counted;
// statuses with no parcels do not appear in the result.
type GetDeliveryStatusCountsQuery struct {
	riderEmail    kernel.Email
	hasRiderEmail bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryStatusCountsQuery creates an aggregation query. A zero-value
// email means the counts cover the whole store.
func NewGetDeliveryStatusCountsQuery(riderEmail kernel.Email) GetDeliveryStatusCountsQuery {
	return GetDeliveryStatusCountsQuery{
		riderEmail:    riderEmail,
		hasRiderEmail: riderEmail.Validate() == nil,
		guard:         guard.NewConstructorGuard(),
	}
}

// RiderEmail returns the rider filter and whether it is set.
func (q GetDeliveryStatusCountsQuery) RiderEmail() (kernel.Email, bool) {
	return q.riderEmail, q.hasRiderEmail
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusCountsQueryIsNotConstructed)
}

// StatusCountResponse is one bucket of a delivery status aggregation.
type StatusCountResponse struct {
	Status parcel.DeliveryStatus
	Count  int64
}
