package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler lists a customer's payments, latest first.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment history queries.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle returns the payments ordered by settlement time descending.
func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			email,
			amount,
			method,
			transaction_id,
			paid_at
		FROM payments
		WHERE email = ?
		ORDER BY paid_at DESC
	`, query.Email().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)

	for rows.Next() {
		var response PaymentResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&response.Email,
			&response.Amount,
			&response.Method,
			&response.TransactionID,
			&response.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = paymentID

		paidParcelID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ParcelID = paidParcelID

		payments = append(payments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
