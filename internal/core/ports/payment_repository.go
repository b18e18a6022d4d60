package ports

import (
	"context"

	"zapshift/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Records are append-only; there is no update or delete.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error
}
