package http

import (
	"net/http"
	"strings"

	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "caller-identity"

// authenticate resolves a bearer token to an identity when the Authorization
// header is present. A missing header passes through so open routes keep
// working; a present but invalid token is rejected.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(ctx)
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return errorJSON(ctx, http.StatusUnauthorized, "malformed authorization header")
		}

		identity, err := s.verifier.Verify(ctx.Request().Context(), token)
		if err != nil {
			return errorJSON(ctx, http.StatusUnauthorized, "invalid token")
		}

		ctx.Set(identityContextKey, identity)
		return next(ctx)
	}
}

// requireIdentity rejects requests that carry no verified identity.
func (s *Server) requireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := callerIdentity(ctx); !ok {
			return errorJSON(ctx, http.StatusUnauthorized, "authentication required")
		}
		return next(ctx)
	}
}

// requireAdmin rejects callers whose stored account role is not admin.
// Unknown accounts count as plain users.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		identity, ok := callerIdentity(ctx)
		if !ok {
			return errorJSON(ctx, http.StatusUnauthorized, "authentication required")
		}

		email, err := kernel.NewEmail(identity.Email)
		if err != nil {
			return errorJSON(ctx, http.StatusForbidden, "admin access required")
		}
		query, err := queries.NewGetUserRoleQuery(email)
		if err != nil {
			return errorJSON(ctx, http.StatusForbidden, "admin access required")
		}

		role, err := s.queries.UserRole.Handle(ctx.Request().Context(), query)
		if err != nil || role.Role != user.RoleAdmin {
			return errorJSON(ctx, http.StatusForbidden, "admin access required")
		}

		return next(ctx)
	}
}

func callerIdentity(ctx echo.Context) (ports.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(ports.Identity)
	return identity, ok
}
