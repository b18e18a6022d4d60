package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
//
// Besides aggregate load/store it exposes conditional single-row updates that
// report how many rows changed. Handlers use those for the operations whose
// contract is "modified count, not error". A pickup of a missing parcel is a
// zero-count no-op, not a failure.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its identifier.
	// Returns errs.ErrObjectNotFound when the parcel does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// UpdateDeliveryStatus advances the delivery status of the parcel from
	// one lifecycle state to the next in a single conditional write.
	// Returns the number of rows modified: 0 when the parcel is missing or
	// not in the expected state. The condition keeps the lifecycle
	// forward-only without a prior read.
	UpdateDeliveryStatus(ctx context.Context, id kernel.UUID, from, to parcel.DeliveryStatus) (int64, error)

	// UpdatePaymentStatus flips the payment status in a single conditional
	// write. Returns 0 rows when the parcel is missing or already in the
	// target state; callers treat that as a conflict.
	UpdatePaymentStatus(ctx context.Context, id kernel.UUID, from, to parcel.PaymentStatus) (int64, error)

	// Delete removes the parcel unconditionally. Related payment and
	// tracking records are left in place. Returns the number of rows
	// deleted.
	Delete(ctx context.Context, id kernel.UUID) (int64, error)

	// HasActiveAssignment reports whether any parcel still in transit or
	// picked up is assigned to the given rider email.
	HasActiveAssignment(ctx context.Context, riderEmail kernel.Email) (bool, error)
}
