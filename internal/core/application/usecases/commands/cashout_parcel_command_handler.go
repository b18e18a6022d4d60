package commands

import (
	"context"
	"time"
)

// CashoutParcelCommandHandler settles the delivery fee on a parcel.
type CashoutParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCashoutParcelCommandHandler creates a handler for cashout operations.
func NewCashoutParcelCommandHandler(uowFactory ParcelUoWFactory) CashoutParcelCommandHandler {
	return CashoutParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the parcel cashed out and stamps the settlement time.
// Invoking it again is a no-op write that still reports success; the
// original timestamp is kept.
func (h CashoutParcelCommandHandler) Handle(ctx context.Context, command CashoutParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	p.Cashout(time.Now().UTC())

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
