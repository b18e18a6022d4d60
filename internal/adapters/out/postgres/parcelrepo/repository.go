package parcelrepo

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database. The full row is written
// with Select("*") so fields cleared to zero values are persisted too.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDeliveryStatus advances the delivery status with one conditional
// write. The row is only touched when its current status equals from, which
// makes the transition safe to retry: a replay matches zero rows.
func (r *GormParcelRepository) UpdateDeliveryStatus(
	ctx context.Context,
	id kernel.UUID,
	from parcel.DeliveryStatus,
	to parcel.DeliveryStatus,
) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND delivery_status = ?", id.Bytes(), from.String()).
		Update("delivery_status", to.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// UpdatePaymentStatus flips the payment status with the same conditional
// single-write contract as UpdateDeliveryStatus.
func (r *GormParcelRepository) UpdatePaymentStatus(
	ctx context.Context,
	id kernel.UUID,
	from parcel.PaymentStatus,
	to parcel.PaymentStatus,
) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND payment_status = ?", id.Bytes(), from.String()).
		Update("payment_status", to.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// Delete removes a parcel and reports how many rows went away.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// HasActiveAssignment reports whether the rider still has a parcel in
// transit or picked up.
func (r *GormParcelRepository) HasActiveAssignment(ctx context.Context, riderEmail kernel.Email) (bool, error) {
	if err := riderEmail.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("assigned_rider_email = ? AND delivery_status IN ?",
			riderEmail.String(),
			[]string{parcel.DeliveryStatusInTransit.String(), parcel.DeliveryStatusPickedUp.String()},
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
