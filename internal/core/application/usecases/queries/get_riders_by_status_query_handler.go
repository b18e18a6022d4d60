package queries

import (
	"context"
	"database/sql"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersByStatusQueryHandler lists riders filtered by approval status.
type GetRidersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersByStatusQueryHandler creates a handler for rider listing
// queries.
func NewGetRidersByStatusQueryHandler(db *gorm.DB) GetRidersByStatusQueryHandler {
	return GetRidersByStatusQueryHandler{db: db}
}

// Handle returns the matching riders sorted by name.
func (h GetRidersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRidersByStatusQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(query.Statuses()))
	for _, status := range query.Statuses() {
		statuses = append(statuses, status.String())
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
		WHERE status IN ?
		ORDER BY name
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRiderRows(rows)
}

func scanRiderRows(rows *sql.Rows) ([]RiderResponse, error) {
	riders := make([]RiderResponse, 0)

	for rows.Next() {
		var response RiderResponse
		var id uuid.UUID
		var status, workStatus string

		err := rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.District,
			&status,
			&workStatus,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = riderID
		response.Status = rider.Status(status)
		response.WorkStatus = rider.WorkStatus(workStatus)

		riders = append(riders, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
