package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery lists a customer's payment history. Scoped to one email
// because payment records are only exposed to their owner.
type GetPaymentsQuery struct {
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewGetPaymentsQuery creates a payment history query.
func NewGetPaymentsQuery(email kernel.Email) (GetPaymentsQuery, error) {
	if err := email.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}

	return GetPaymentsQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Email returns the payer whose history is listed.
func (q GetPaymentsQuery) Email() kernel.Email {
	return q.email
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

// PaymentResponse is the payment read model for history listings.
type PaymentResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Email         string
	Amount        float64
	Method        string
	TransactionID string
	PaidAt        time.Time
}
