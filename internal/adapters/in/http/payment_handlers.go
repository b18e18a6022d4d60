package http

import (
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RecordPayment handles POST /api/v1/payments. Paying an already-paid
// parcel is a conflict and leaves no payment record behind.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var request recordPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(request.ParcelID)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}
	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		parcelID,
		email,
		request.Amount,
		request.PaymentMethod,
		request.TransactionID,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.PaymentID().String()})
}

// GetPayments handles GET /api/v1/payments?email=. The requested email
// must match the authenticated caller.
func (s *Server) GetPayments(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.QueryParam("email"))
	if err != nil {
		return mapError(ctx, err)
	}

	identity, ok := callerIdentity(ctx)
	if !ok || identity.Email != email.String() {
		return errorJSON(ctx, http.StatusForbidden, "email does not match caller identity")
	}

	query, err := queries.NewGetPaymentsQuery(email)
	if err != nil {
		return mapError(ctx, err)
	}

	payments, err := s.queries.GetPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]paymentResponse, len(payments))
	for i, record := range payments {
		response[i] = paymentResponse{
			ID:            record.ID.String(),
			ParcelID:      record.ParcelID.String(),
			Email:         record.Email,
			Amount:        record.Amount,
			PaymentMethod: record.Method,
			TransactionID: record.TransactionID,
			PaidAt:        record.PaidAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
