// Package paymentrepo persists immutable payment records.
package paymentrepo

import (
	"time"

	"zapshift/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for payment records. Rows are
// insert-only; there is no update path.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;index"`
	Email         string    `gorm:"type:text;index"`
	Amount        float64   `gorm:"type:numeric"`
	Method        string    `gorm:"type:text"`
	TransactionID string    `gorm:"type:text"`
	PaidAt        time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(record *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            record.ID().Bytes(),
		ParcelID:      record.ParcelID().Bytes(),
		Email:         record.Email().String(),
		Amount:        record.Amount(),
		Method:        record.Method(),
		TransactionID: record.TransactionID(),
		PaidAt:        record.PaidAt(),
	}
}
