// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:text"`
	Email      string    `gorm:"type:text;uniqueIndex"`
	District   string    `gorm:"type:text;index"`
	Status     string    `gorm:"type:text;index"`
	WorkStatus string    `gorm:"type:text"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email().String(),
		District:   aggregate.District(),
		Status:     aggregate.Status().String(),
		WorkStatus: aggregate.WorkStatus().String(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.Name,
		email,
		dto.District,
		rider.Status(dto.Status),
		rider.WorkStatus(dto.WorkStatus),
	)
}
