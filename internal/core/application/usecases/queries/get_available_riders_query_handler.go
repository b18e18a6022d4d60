package queries

import (
	"context"

	"zapshift/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler lists riders a dispatcher can assign:
// active, free, and covering the requested district.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for availability
// queries.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle returns the available riders in the district sorted by name.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status
		FROM riders
		WHERE district = ? AND status = ? AND work_status = ?
		ORDER BY name
	`, query.District(), rider.StatusActive.String(), rider.WorkStatusFree.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRiderRows(rows)
}
