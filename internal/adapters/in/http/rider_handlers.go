package http

import (
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

// ApplyRider handles POST /api/v1/riders. Applications start pending and
// free; an admin approves them later.
func (s *Server) ApplyRider(ctx echo.Context) error {
	var request applyRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewApplyRiderCommand(kernel.NewUUID(), request.Name, email, request.District)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.ApplyRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.RiderID().String()})
}

// GetPendingRiders handles GET /api/v1/riders/pending.
func (s *Server) GetPendingRiders(ctx echo.Context) error {
	return s.listRidersByStatus(ctx, rider.StatusPending)
}

// GetActiveRiders handles GET /api/v1/riders/active. The list includes
// deactivated riders so the back office can reactivate them.
func (s *Server) GetActiveRiders(ctx echo.Context) error {
	return s.listRidersByStatus(ctx, rider.StatusActive, rider.StatusDeactive)
}

func (s *Server) listRidersByStatus(ctx echo.Context, statuses ...rider.Status) error {
	query, err := queries.NewGetRidersByStatusQuery(statuses...)
	if err != nil {
		return mapError(ctx, err)
	}

	riders, err := s.queries.RidersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderResponses(riders))
}

// GetAvailableRiders handles GET /api/v1/riders/available?district=X.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	query, err := queries.NewGetAvailableRidersQuery(ctx.QueryParam("district"))
	if err != nil {
		return mapError(ctx, err)
	}

	riders, err := s.queries.AvailableRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderResponses(riders))
}

// SetRiderStatus handles PATCH /api/v1/riders/:id/status. Activating a
// rider also promotes the matching user account to the rider role.
func (s *Server) SetRiderStatus(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	var request setRiderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRiderStatusCommand(
		riderID,
		rider.Status(request.Status),
		rider.WorkStatus(request.WorkStatus),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.SetRiderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderParcels handles GET /api/v1/riders/:email/parcels. Riders may
// only read their own task list.
func (s *Server) GetRiderParcels(ctx echo.Context) error {
	riderEmail, err := s.ownEmailParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRiderParcelsQuery(riderEmail)
	if err != nil {
		return mapError(ctx, err)
	}

	parcels, err := s.queries.RiderParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetRiderCompletedParcels handles GET /api/v1/riders/:email/parcels/completed.
func (s *Server) GetRiderCompletedParcels(ctx echo.Context) error {
	riderEmail, err := s.ownEmailParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRiderCompletedParcelsQuery(riderEmail)
	if err != nil {
		return mapError(ctx, err)
	}

	parcels, err := s.queries.RiderCompletedParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// ownEmailParam parses the :email segment and checks it belongs to the
// authenticated caller. The returned error is already an HTTP response.
func (s *Server) ownEmailParam(ctx echo.Context) (kernel.Email, error) {
	email, err := kernel.NewEmail(ctx.Param("email"))
	if err != nil {
		return kernel.Email{}, mapError(ctx, err)
	}

	identity, ok := callerIdentity(ctx)
	if !ok || identity.Email != email.String() {
		return kernel.Email{}, errorJSON(ctx, http.StatusForbidden, "email does not match caller identity")
	}

	return email, nil
}
