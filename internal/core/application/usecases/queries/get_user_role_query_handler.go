package queries

import (
	"context"

	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserRoleQueryHandler looks up one account's role.
type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRoleQueryHandler creates a handler for role lookups.
func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle returns the role or errs.ErrObjectNotFound for an unknown email.
func (h GetUserRoleQueryHandler) Handle(
	ctx context.Context,
	query GetUserRoleQuery,
) (UserRoleResponse, error) {
	if err := query.Validate(); err != nil {
		return UserRoleResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT email, role
		FROM users
		WHERE email = ?
	`, query.Email().String()).Rows()
	if err != nil {
		return UserRoleResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserRoleResponse{}, err
		}
		return UserRoleResponse{}, errs.NewObjectNotFoundError("email", query.Email().String())
	}

	var response UserRoleResponse
	var role string

	if err = rows.Scan(&response.Email, &role); err != nil {
		return UserRoleResponse{}, err
	}
	response.Role = user.Role(role)

	return response, nil
}
