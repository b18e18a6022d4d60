package queries

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetRiderParcelsQueryHandler lists the parcels a rider is currently
// carrying.
type GetRiderParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderParcelsQueryHandler creates a handler for rider workload
// queries.
func NewGetRiderParcelsQueryHandler(db *gorm.DB) GetRiderParcelsQueryHandler {
	return GetRiderParcelsQueryHandler{db: db}
}

// Handle returns the rider's in_transit and picked_up parcels, oldest
// assignment first so the next stop comes on top.
func (h GetRiderParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderParcelsQuery,
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
		ORDER BY created_at
	`,
		query.RiderEmail().String(),
		[]string{parcel.DeliveryStatusInTransit.String(), parcel.DeliveryStatusPickedUp.String()},
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}
