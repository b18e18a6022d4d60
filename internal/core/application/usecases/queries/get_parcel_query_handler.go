package queries

import (
	"context"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel read model.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single parcel lookups.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns the parcel or errs.ErrObjectNotFound when no row matches.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
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
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID())
	}

	return scanParcelRow(rows)
}
