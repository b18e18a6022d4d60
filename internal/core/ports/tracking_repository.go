package ports

import (
	"context"

	"zapshift/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking events.
// The log is append-only; events are never mutated or deleted.
type TrackingRepository interface {
	// Add appends a tracking event.
	Add(ctx context.Context, aggregate *tracking.Event) error
}
