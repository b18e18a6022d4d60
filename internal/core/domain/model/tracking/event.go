// Package tracking provides the append-only audit trail of shipment events.
// Events are independent of the parcel lifecycle engine: the tracking id is a
// logical shipment identifier, not necessarily a parcel id, and the status
// text is free-form.
package tracking

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event is one timestamped status note for a shipment. Events are never
// mutated or deleted; the history of a tracking id is the ordered sequence
// of its events.
type Event struct {
	id         kernel.UUID
	trackingID string
	status     string
	timestamp  time.Time

	guard guard.ConstructorGuard
}

// NewEvent appends-constructs a tracking event. Both the tracking id and the
// status text are required; the timestamp is stamped server-side by the
// caller.
func NewEvent(id kernel.UUID, trackingID, status string, timestamp time.Time) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("tracking_id")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &Event{
		id:         id,
		trackingID: trackingID,
		status:     status,
		timestamp:  timestamp,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(id kernel.UUID, trackingID, status string, timestamp time.Time) (*Event, error) {
	return NewEvent(id, trackingID, status, timestamp)
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// TrackingID returns the logical shipment identifier.
func (e *Event) TrackingID() string {
	return e.trackingID
}

// Status returns the free-text status note.
func (e *Event) Status() string {
	return e.status
}

// Timestamp returns when the event was recorded.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}
