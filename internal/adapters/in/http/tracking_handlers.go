package http

import (
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AppendTracking handles POST /api/v1/tracking.
func (s *Server) AppendTracking(ctx echo.Context) error {
	var request appendTrackingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAppendTrackingCommand(kernel.NewUUID(), request.TrackingID, request.Status)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.AppendTracking.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.EventID().String()})
}

// GetTrackingHistory handles GET /api/v1/tracking/:trackingId. History
// comes back oldest first; an unknown id yields an empty list.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	query, err := queries.NewGetTrackingHistoryQuery(ctx.Param("trackingId"))
	if err != nil {
		return mapError(ctx, err)
	}

	events, err := s.queries.TrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]trackingEventResponse, len(events))
	for i, event := range events {
		response[i] = trackingEventResponse{
			ID:         event.ID.String(),
			TrackingID: event.TrackingID,
			Status:     event.Status,
			Timestamp:  event.Timestamp,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
