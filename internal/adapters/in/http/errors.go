package http

import (
	"errors"
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the machine-readable failure body returned by every route.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// mapError classifies an application error into an HTTP status. Internal
// details never reach the caller; the echo logger keeps the full error.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrParcelNotFoundOrAlreadyPaid):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, rider.ErrRiderNotApproved), errors.Is(err, rider.ErrRiderNotFree):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		ctx.Logger().Error(err)
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}
