package http

import (
	"errors"
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users. Registration is create-if-absent
// by email; a repeated registration reports the existing account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request registerUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), email)
	if err != nil {
		return mapError(ctx, err)
	}

	inserted, err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	return ctx.JSON(status, registeredResponse{ID: cmd.UserID().String(), Inserted: inserted})
}

// GetUserRole handles GET /api/v1/users/:email/role. An unknown email
// reports the default user role rather than an error.
func (s *Server) GetUserRole(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.Param("email"))
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetUserRoleQuery(email)
	if err != nil {
		return mapError(ctx, err)
	}

	role, err := s.queries.UserRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusOK, userRoleResponse{Email: email.String(), Role: string(user.RoleUser)})
		}
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userRoleResponse{Email: role.Email, Role: string(role.Role)})
}

// SetUserRole handles PATCH /api/v1/users/:email/role. Only the admin and
// user roles may be assigned here; the rider role comes from activation.
func (s *Server) SetUserRole(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.Param("email"))
	if err != nil {
		return mapError(ctx, err)
	}

	var request setUserRoleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetUserRoleCommand(email, user.Role(request.Role))
	if err != nil {
		return mapError(ctx, err)
	}

	if err := s.commands.SetUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchUsers handles GET /api/v1/users/search?q=.
func (s *Server) SearchUsers(ctx echo.Context) error {
	query, err := queries.NewSearchUsersQuery(ctx.QueryParam("q"))
	if err != nil {
		return mapError(ctx, err)
	}

	users, err := s.queries.SearchUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]userResponse, len(users))
	for i, account := range users {
		response[i] = userResponse{
			ID:        account.ID.String(),
			Email:     account.Email,
			Role:      string(account.Role),
			CreatedAt: account.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
