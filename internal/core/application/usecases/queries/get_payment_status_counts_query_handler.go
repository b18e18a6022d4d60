package queries

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetPaymentStatusCountsQueryHandler aggregates one customer's parcels per
// payment status. Statuses with no parcels are omitted.
type GetPaymentStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentStatusCountsQueryHandler creates a handler for payment status
// aggregation.
func NewGetPaymentStatusCountsQueryHandler(db *gorm.DB) GetPaymentStatusCountsQueryHandler {
	return GetPaymentStatusCountsQueryHandler{db: db}
}

// Handle returns the non-zero payment buckets for the customer.
func (h GetPaymentStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatusCountsQuery,
) ([]PaymentStatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT payment_status, COUNT(*)
		FROM parcels
		WHERE created_by = ?
		GROUP BY payment_status
		ORDER BY payment_status
	`, query.CreatedBy().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]PaymentStatusCountResponse, 0)

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts = append(counts, PaymentStatusCountResponse{
			Status: parcel.PaymentStatus(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
