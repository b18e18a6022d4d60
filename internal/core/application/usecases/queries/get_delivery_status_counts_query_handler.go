package queries

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetDeliveryStatusCountsQueryHandler aggregates parcel counts per delivery
// status with a single GROUP BY, so empty buckets never reach the caller.
type GetDeliveryStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatusCountsQueryHandler creates a handler for delivery
// status aggregation.
func NewGetDeliveryStatusCountsQueryHandler(db *gorm.DB) GetDeliveryStatusCountsQueryHandler {
	return GetDeliveryStatusCountsQueryHandler{db: db}
}

// Handle returns the non-zero status buckets ordered by status name.
func (h GetDeliveryStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusCountsQuery,
) ([]StatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT delivery_status, COUNT(*)
		FROM parcels
	`
	args := make([]any, 0, 1)

	if riderEmail, ok := query.RiderEmail(); ok {
		sqlText += " WHERE assigned_rider_email = ?"
		args = append(args, riderEmail.String())
	}

	sqlText += " GROUP BY delivery_status ORDER BY delivery_status"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]StatusCountResponse, 0)

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts = append(counts, StatusCountResponse{
			Status: parcel.DeliveryStatus(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
