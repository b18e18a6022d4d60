package commands

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/tracking"
)

// AppendTrackingCommandHandler appends an event to the tracking log. The
// timestamp is stamped here so history ordering never depends on client
// clocks.
type AppendTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewAppendTrackingCommandHandler creates a handler for tracking appends.
func NewAppendTrackingCommandHandler(uowFactory TrackingUoWFactory) AppendTrackingCommandHandler {
	return AppendTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stamps and stores the tracking event.
func (h AppendTrackingCommandHandler) Handle(ctx context.Context, command AppendTrackingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	event, err := tracking.NewEvent(command.EventID(), command.TrackingID(), command.Status(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
