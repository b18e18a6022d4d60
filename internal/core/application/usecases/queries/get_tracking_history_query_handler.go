package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads a shipment's event log. Events come
// back oldest first: the single timestamp column is the only sort key, so
// history order is stable regardless of insert order.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking history
// queries.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle returns the events for the tracking id in chronological order.
// An unknown tracking id yields an empty history, not an error.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			timestamp
		FROM tracking_events
		WHERE tracking_id = ?
		ORDER BY timestamp
	`, query.TrackingID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)

	for rows.Next() {
		var response TrackingEventResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.TrackingID,
			&response.Status,
			&response.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = eventID

		events = append(events, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
