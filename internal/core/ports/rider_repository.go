package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by its identifier.
	// Returns errs.ErrObjectNotFound when the rider does not exist.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// UpdateWorkStatus sets the rider's availability in a single write.
	// Returns the number of rows modified: 0 when the rider is missing.
	UpdateWorkStatus(ctx context.Context, id kernel.UUID, workStatus rider.WorkStatus) (int64, error)

	// GetAllEngaged retrieves riders whose work status is not free.
	// Used by the availability reconciliation sweep.
	GetAllEngaged(ctx context.Context) ([]*rider.Rider, error)
}
