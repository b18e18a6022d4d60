// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves parcels matching optional filters. Every filter
// left at its zero value is ignored, so the zero-filter query lists the whole
// store newest first.
//
// Example:
//
//	query, err := NewGetParcelsQuery(parcel.DeliveryStatusPending, "", kernel.Email{})
//	if err != nil {
//	    return err
//	}
//	pending, err := handler.Handle(ctx, query)
type GetParcelsQuery struct {
	deliveryStatus parcel.DeliveryStatus
	paymentStatus  parcel.PaymentStatus
	createdBy      kernel.Email
	hasCreatedBy   bool

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a parcel listing query. Empty statuses and a
// zero-value email mean "no filter"; non-empty values are validated.
func NewGetParcelsQuery(
	deliveryStatus parcel.DeliveryStatus,
	paymentStatus parcel.PaymentStatus,
	createdBy kernel.Email,
) (GetParcelsQuery, error) {
	if deliveryStatus != "" {
		if err := deliveryStatus.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
	}
	if paymentStatus != "" {
		if err := paymentStatus.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
	}

	hasCreatedBy := createdBy.Validate() == nil

	return GetParcelsQuery{
		deliveryStatus: deliveryStatus,
		paymentStatus:  paymentStatus,
		createdBy:      createdBy,
		hasCreatedBy:   hasCreatedBy,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DeliveryStatus returns the delivery status filter, empty when unset.
func (q GetParcelsQuery) DeliveryStatus() parcel.DeliveryStatus {
	return q.deliveryStatus
}

// PaymentStatus returns the payment status filter, empty when unset.
func (q GetParcelsQuery) PaymentStatus() parcel.PaymentStatus {
	return q.paymentStatus
}

// CreatedBy returns the creator filter and whether it is set.
func (q GetParcelsQuery) CreatedBy() (kernel.Email, bool) {
	return q.createdBy, q.hasCreatedBy
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// ParcelResponse is the parcel read model shared by the parcel listing
// queries. The assigned rider fields are zero values until assignment.
type ParcelResponse struct {
	ID                 kernel.UUID
	CreatedBy          string
	DeliveryStatus     parcel.DeliveryStatus
	PaymentStatus      parcel.PaymentStatus
	CashoutStatus      parcel.CashoutStatus
	CashedOutAt        *time.Time
	AssignedRiderID    kernel.UUID
	AssignedRiderName  string
	AssignedRiderEmail string
	CreatedAt          time.Time
}
