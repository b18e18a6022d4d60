package commands_test

import (
	"errors"
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickupParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewPickupParcelCommand(parcelID, riderID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On(
			"UpdateDeliveryStatus", ctx, parcelID,
			parcel.DeliveryStatusInTransit, parcel.DeliveryStatusPickedUp,
		).Return(int64(1), nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("UpdateWorkStatus", ctx, riderID, rider.WorkStatusBusy).Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupParcelCommandHandler(factory)
	counts, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.ParcelsModified)
	assert.Equal(t, int64(1), counts.RidersModified)
	parcelRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickupParcelCommandHandler_Handle_NothingModified(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewPickupParcelCommand(parcelID, riderID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	// A missing or already advanced parcel is not an error: the caller
	// reads the zero count instead.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On(
			"UpdateDeliveryStatus", ctx, parcelID,
			parcel.DeliveryStatusInTransit, parcel.DeliveryStatusPickedUp,
		).Return(int64(0), nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("UpdateWorkStatus", ctx, riderID, rider.WorkStatusBusy).Return(int64(0), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupParcelCommandHandler(factory)
	counts, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.ParcelsModified)
	assert.Equal(t, int64(0), counts.RidersModified)
}

func TestPickupParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PickupParcelCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	handler := commands.NewPickupParcelCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPickupParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPickupParcelCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewPickupParcelCommand(parcelID, riderID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On(
			"UpdateDeliveryStatus", ctx, parcelID,
			parcel.DeliveryStatusInTransit, parcel.DeliveryStatusPickedUp,
		).Return(int64(0), errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupParcelCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
