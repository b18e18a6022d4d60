package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverParcelCommand(parcelID, riderID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On(
			"UpdateDeliveryStatus", ctx, parcelID,
			parcel.DeliveryStatusPickedUp, parcel.DeliveryStatusDelivered,
		).Return(int64(1), nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("UpdateWorkStatus", ctx, riderID, rider.WorkStatusFree).Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverParcelCommandHandler(factory)
	counts, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.ParcelsModified)
	assert.Equal(t, int64(1), counts.RidersModified)
	parcelRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
}

func TestDeliverParcelCommandHandler_Handle_ParcelNotPickedUp(t *testing.T) {
	ctx := t.Context()

	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverParcelCommand(parcelID, riderID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	// The rider is freed even when the parcel write matches nothing, so a
	// retried delivery cannot leave the rider stuck busy.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On(
			"UpdateDeliveryStatus", ctx, parcelID,
			parcel.DeliveryStatusPickedUp, parcel.DeliveryStatusDelivered,
		).Return(int64(0), nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("UpdateWorkStatus", ctx, riderID, rider.WorkStatusFree).Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverParcelCommandHandler(factory)
	counts, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.ParcelsModified)
	assert.Equal(t, int64(1), counts.RidersModified)
}

func TestDeliverParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeliverParcelCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	handler := commands.NewDeliverParcelCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeliverParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
