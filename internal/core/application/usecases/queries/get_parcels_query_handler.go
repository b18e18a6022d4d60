package queries

import (
	"context"
	"database/sql"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler lists parcels from the database, newest first.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query and returns parcels ordered by creation time
// descending. Filters are combined with AND.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if status := query.DeliveryStatus(); status != "" {
		sqlText += " AND delivery_status = ?"
		args = append(args, status.String())
	}
	if status := query.PaymentStatus(); status != "" {
		sqlText += " AND payment_status = ?"
		args = append(args, status.String())
	}
	if createdBy, ok := query.CreatedBy(); ok {
		sqlText += " AND created_by = ?"
		args = append(args, createdBy.String())
	}

	sqlText += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}

// scanParcelRows converts parcel rows into the shared read model. Used by
// every query that returns full parcel records.
func scanParcelRows(rows *sql.Rows) ([]ParcelResponse, error) {
	parcels := make([]ParcelResponse, 0)

	for rows.Next() {
		response, err := scanParcelRow(rows)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

func scanParcelRow(rows *sql.Rows) (ParcelResponse, error) {
	var response ParcelResponse
	var id uuid.UUID
	var cashedOutAt sql.NullTime
	var riderID uuid.NullUUID
	var riderName, riderEmail sql.NullString
	var deliveryStatus, paymentStatus, cashoutStatus string

	err := rows.Scan(
		&id,
		&response.CreatedBy,
		&deliveryStatus,
		&paymentStatus,
		&cashoutStatus,
		&cashedOutAt,
		&riderID,
		&riderName,
		&riderEmail,
		&response.CreatedAt,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelResponse{}, err
	}
	response.ID = parcelID

	response.DeliveryStatus = parcel.DeliveryStatus(deliveryStatus)
	response.PaymentStatus = parcel.PaymentStatus(paymentStatus)
	response.CashoutStatus = parcel.CashoutStatus(cashoutStatus)

	if cashedOutAt.Valid {
		at := cashedOutAt.Time
		response.CashedOutAt = &at
	}

	if riderID.Valid {
		assignedID, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		response.AssignedRiderID = assignedID
		response.AssignedRiderName = riderName.String
		response.AssignedRiderEmail = riderEmail.String
	}

	return response, nil
}
