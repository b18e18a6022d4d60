// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Email carries a unique index because it is the account's natural key.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:text;uniqueIndex"`
	Role      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email().String(),
		Role:      aggregate.Role().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, email, user.Role(dto.Role), dto.CreatedAt)
}
