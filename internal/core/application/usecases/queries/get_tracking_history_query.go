package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the event log for a tracking id in the
// order the events happened.
type GetTrackingHistoryQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a tracking history query.
func NewGetTrackingHistoryQuery(trackingID string) (GetTrackingHistoryQuery, error) {
	if trackingID == "" {
		return GetTrackingHistoryQuery{}, errs.NewValueIsRequiredError("tracking_id")
	}

	return GetTrackingHistoryQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TrackingID returns the shipment identifier.
func (q GetTrackingHistoryQuery) TrackingID() string {
	return q.trackingID
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// TrackingEventResponse is one entry of a shipment's tracking history.
type TrackingEventResponse struct {
	ID         kernel.UUID
	TrackingID string
	Status     string
	Timestamp  time.Time
}
