package queries

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetRiderCompletedParcelsQueryHandler lists a rider's delivered and service
// center delivered parcels, most recent first.
type GetRiderCompletedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderCompletedParcelsQueryHandler creates a handler for completed
// delivery queries.
func NewGetRiderCompletedParcelsQueryHandler(db *gorm.DB) GetRiderCompletedParcelsQueryHandler {
	return GetRiderCompletedParcelsQueryHandler{db: db}
}

// Handle returns the rider's completed parcels.
func (h GetRiderCompletedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderCompletedParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			delivery_status,
			payment_status,
			cashout_status,
			cashed_out_at,
			assigned_rider_id,
			assigned_rider_name,
			assigned_rider_email,
			created_at
		FROM parcels
		WHERE assigned_rider_email = ? AND delivery_status IN ?
		ORDER BY created_at DESC
	`,
		query.RiderEmail().String(),
		[]string{parcel.DeliveryStatusDelivered.String(), parcel.DeliveryStatusServiceCenterDelivered.String()},
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}
