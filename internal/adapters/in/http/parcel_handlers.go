package http

import (
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request createParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	createdBy, err := kernel.NewEmail(request.CreatedBy)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(createdBy)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.ParcelID().String()})
}

// GetParcels handles GET /api/v1/parcels with optional email,
// payment_status, and delivery_status filters.
func (s *Server) GetParcels(ctx echo.Context) error {
	var createdBy kernel.Email
	if address := ctx.QueryParam("email"); address != "" {
		email, err := kernel.NewEmail(address)
		if err != nil {
			return mapError(ctx, err)
		}
		createdBy = email
	}

	query, err := queries.NewGetParcelsQuery(
		parcel.DeliveryStatus(ctx.QueryParam("delivery_status")),
		parcel.PaymentStatus(ctx.QueryParam("payment_status")),
		createdBy,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	parcels, err := s.queries.GetParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return mapError(ctx, err)
	}

	found, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(found))
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return mapError(ctx, err)
	}

	deleted, err := s.commands.DeleteParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deletedResponse{DeletedCount: deleted})
}

// AssignRider handles POST /api/v1/parcels/:id/assign.
func (s *Server) AssignRider(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request riderActionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupParcel handles POST /api/v1/parcels/:id/pickup.
func (s *Server) PickupParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request riderActionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	cmd, err := commands.NewPickupParcelCommand(parcelID, riderID)
	if err != nil {
		return mapError(ctx, err)
	}

	counts, err := s.commands.PickupParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updateCountsResponse{
		ParcelsModified: counts.ParcelsModified,
		RidersModified:  counts.RidersModified,
	})
}

// DeliverParcel handles POST /api/v1/parcels/:id/deliver. An optional
// message is appended to the parcel's tracking history.
func (s *Server) DeliverParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request deliverParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	cmd, err := commands.NewDeliverParcelCommand(parcelID, riderID)
	if err != nil {
		return mapError(ctx, err)
	}

	counts, err := s.commands.DeliverParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	if request.Message != "" && counts.ParcelsModified > 0 {
		trackingCmd, trackErr := commands.NewAppendTrackingCommand(
			kernel.NewUUID(), parcelID.String(), request.Message,
		)
		if trackErr != nil {
			return mapError(ctx, trackErr)
		}
		if trackErr := s.commands.AppendTracking.Handle(ctx.Request().Context(), trackingCmd); trackErr != nil {
			return mapError(ctx, trackErr)
		}
	}

	return ctx.JSON(http.StatusOK, updateCountsResponse{
		ParcelsModified: counts.ParcelsModified,
		RidersModified:  counts.RidersModified,
	})
}

// CashoutParcel handles POST /api/v1/parcels/:id/cashout. Repeating the
// call is harmless; the original settlement timestamp is kept.
func (s *Server) CashoutParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewCashoutParcelCommand(parcelID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.CashoutParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryStatusCounts handles GET /api/v1/parcels/delivery-status-counts
// with an optional :email segment scoping counts to one rider's parcels.
func (s *Server) GetDeliveryStatusCounts(ctx echo.Context) error {
	var riderEmail kernel.Email
	if address := ctx.Param("email"); address != "" {
		email, err := kernel.NewEmail(address)
		if err != nil {
			return mapError(ctx, err)
		}
		riderEmail = email
	}

	query := queries.NewGetDeliveryStatusCountsQuery(riderEmail)

	counts, err := s.queries.DeliveryStatusCounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]statusCountResponse, len(counts))
	for i, count := range counts {
		response[i] = statusCountResponse{Status: count.Status.String(), Count: count.Count}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentStatusCounts handles GET /api/v1/parcels/payment-status-counts/:email.
func (s *Server) GetPaymentStatusCounts(ctx echo.Context) error {
	createdBy, err := kernel.NewEmail(ctx.Param("email"))
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetPaymentStatusCountsQuery(createdBy)
	if err != nil {
		return mapError(ctx, err)
	}

	counts, err := s.queries.PaymentStatusCounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]statusCountResponse, len(counts))
	for i, count := range counts {
		response[i] = statusCountResponse{Status: count.Status.String(), Count: count.Count}
	}
	return ctx.JSON(http.StatusOK, response)
}
