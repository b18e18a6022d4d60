package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrGetPaymentStatusCountsQueryIsNotConstructed = errors.New(
	"GetPaymentStatusCountsQuery must be created via NewGetPaymentStatusCountsQuery constructor",
)

// GetPaymentStatusCountsQuery aggregates a customer's parcels by payment
// status. The creator email is required: this view backs the customer's own
// dashboard, never a global one.
type GetPaymentStatusCountsQuery struct {
	createdBy kernel.Email

	guard guard.ConstructorGuard
}

// NewGetPaymentStatusCountsQuery creates a payment aggregation query.
func NewGetPaymentStatusCountsQuery(createdBy kernel.Email) (GetPaymentStatusCountsQuery, error) {
	if err := createdBy.Validate(); err != nil {
		return GetPaymentStatusCountsQuery{}, err
	}

	return GetPaymentStatusCountsQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CreatedBy returns the customer whose parcels are aggregated.
func (q GetPaymentStatusCountsQuery) CreatedBy() kernel.Email {
	return q.createdBy
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusCountsQueryIsNotConstructed)
}

// PaymentStatusCountResponse is one bucket of a payment status aggregation.
type PaymentStatusCountResponse struct {
	Status parcel.PaymentStatus
	Count  int64
}
