// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Statuses are stored as text so aggregation queries can group
// on them directly; the assigned rider snapshot is denormalized into the
// parcel row.
type ParcelDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedBy          string     `gorm:"type:text;index"`
	DeliveryStatus     string     `gorm:"type:text;index"`
	PaymentStatus      string     `gorm:"type:text;index"`
	CashoutStatus      string     `gorm:"type:text"`
	CashedOutAt        *time.Time `gorm:"type:timestamptz"`
	AssignedRiderID    *uuid.UUID `gorm:"type:uuid"`
	AssignedRiderName  *string    `gorm:"type:text"`
	AssignedRiderEmail *string    `gorm:"type:text;index"`
	CreatedAt          time.Time  `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		CreatedBy:      aggregate.CreatedBy().String(),
		DeliveryStatus: aggregate.DeliveryStatus().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		CashoutStatus:  aggregate.CashoutStatus().String(),
		CashedOutAt:    aggregate.CashedOutAt(),
		CreatedAt:      aggregate.CreatedAt(),
	}

	if rider := aggregate.AssignedRider(); rider != nil {
		riderID := rider.ID().Bytes()
		riderName := rider.Name()
		riderEmail := rider.Email().String()
		dto.AssignedRiderID = &riderID
		dto.AssignedRiderName = &riderName
		dto.AssignedRiderEmail = &riderEmail
	}

	return dto
}

// toDomain converts a database row back into a parcel aggregate using
// RestoreParcel, so invalid rows are rejected at the boundary.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.NewEmail(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	var assignedRider *parcel.AssignedRider
	if dto.AssignedRiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.AssignedRiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		var riderName string
		if dto.AssignedRiderName != nil {
			riderName = *dto.AssignedRiderName
		}

		var riderEmailRaw string
		if dto.AssignedRiderEmail != nil {
			riderEmailRaw = *dto.AssignedRiderEmail
		}
		riderEmail, riderErr := kernel.NewEmail(riderEmailRaw)
		if riderErr != nil {
			return nil, riderErr
		}

		snapshot, riderErr := parcel.NewAssignedRider(riderID, riderName, riderEmail)
		if riderErr != nil {
			return nil, riderErr
		}
		assignedRider = &snapshot
	}

	return parcel.RestoreParcel(
		id,
		createdBy,
		parcel.DeliveryStatus(dto.DeliveryStatus),
		parcel.PaymentStatus(dto.PaymentStatus),
		parcel.CashoutStatus(dto.CashoutStatus),
		dto.CashedOutAt,
		assignedRider,
		dto.CreatedAt,
	)
}
