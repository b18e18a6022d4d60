package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchUsersQueryHandler finds accounts by email substring.
type SearchUsersQueryHandler struct {
	db *gorm.DB
}

// NewSearchUsersQueryHandler creates a handler for account search.
func NewSearchUsersQueryHandler(db *gorm.DB) SearchUsersQueryHandler {
	return SearchUsersQueryHandler{db: db}
}

// Handle returns up to ten matching accounts sorted by email.
func (h SearchUsersQueryHandler) Handle(
	ctx context.Context,
	query SearchUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			role,
			created_at
		FROM users
		WHERE email ILIKE ?
		ORDER BY email
		LIMIT ?
	`, "%"+query.EmailFragment()+"%", searchUsersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)

	for rows.Next() {
		var response UserResponse
		var id uuid.UUID
		var role string

		err = rows.Scan(
			&id,
			&response.Email,
			&role,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = userID
		response.Role = user.Role(role)

		users = append(users, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
