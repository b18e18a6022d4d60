package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
)

// ErrParcelNotFoundOrAlreadyPaid is returned when a payment cannot be
// recorded because no unpaid parcel with the given id exists. The caller
// cannot tell the two situations apart and neither produces a payment row.
var ErrParcelNotFoundOrAlreadyPaid = errors.New("parcel not found or already paid")

// RecordPaymentCommandHandler flips a parcel to paid and stores the payment
// record in the same transaction. The status flip is conditioned on the
// parcel still being unpaid, so replayed gateway callbacks cannot produce a
// second record.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the payment and returns ErrParcelNotFoundOrAlreadyPaid when
// the conditional status flip touches no rows.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, command RecordPaymentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	modified, err := uow.ParcelRepository().UpdatePaymentStatus(
		ctx,
		command.ParcelID(),
		parcel.PaymentStatusUnpaid,
		parcel.PaymentStatusPaid,
	)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrParcelNotFoundOrAlreadyPaid
	}

	record, err := payment.NewPayment(
		command.PaymentID(),
		command.ParcelID(),
		command.Email(),
		command.Amount(),
		command.Method(),
		command.TransactionID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err := uow.PaymentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
