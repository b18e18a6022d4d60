package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrAppendTrackingCommandIsNotConstructed = errors.New(
	"AppendTrackingCommand must be created via NewAppendTrackingCommand constructor",
)

// AppendTrackingCommand appends a status note to a shipment's tracking log.
type AppendTrackingCommand struct {
	eventID    kernel.UUID
	trackingID string
	status     string

	guard guard.ConstructorGuard
}

// NewAppendTrackingCommand creates a tracking append command.
func NewAppendTrackingCommand(eventID kernel.UUID, trackingID, status string) (AppendTrackingCommand, error) {
	if err := eventID.Validate(); err != nil {
		return AppendTrackingCommand{}, err
	}
	if trackingID == "" {
		return AppendTrackingCommand{}, errs.NewValueIsRequiredError("tracking_id")
	}
	if status == "" {
		return AppendTrackingCommand{}, errs.NewValueIsRequiredError("status")
	}

	return AppendTrackingCommand{
		eventID:    eventID,
		trackingID: trackingID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// EventID returns the identifier for the new event.
func (c AppendTrackingCommand) EventID() kernel.UUID {
	return c.eventID
}

// TrackingID returns the logical shipment identifier.
func (c AppendTrackingCommand) TrackingID() string {
	return c.trackingID
}

// Status returns the free-text status note.
func (c AppendTrackingCommand) Status() string {
	return c.status
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingCommandIsNotConstructed)
}
