package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCashoutParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testParcel := newPendingParcel(t)
	cmd, err := commands.NewCashoutParcelCommand(testParcel.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashoutParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.CashoutStatusCashedOut, testParcel.CashoutStatus())
	require.NotNil(t, testParcel.CashedOutAt())

	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCashoutParcelCommandHandler_Handle_RepeatKeepsTimestamp(t *testing.T) {
	ctx := t.Context()

	testParcel := newPendingParcel(t)
	cmd, err := commands.NewCashoutParcelCommand(testParcel.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("ParcelRepository").Return(parcelRepo).Twice()
	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Twice()
	parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewCashoutParcelCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	first := *testParcel.CashedOutAt()

	require.NoError(t, handler.Handle(ctx, cmd))
	second := *testParcel.CashedOutAt()

	assert.True(t, first.Equal(second))
}

func TestCashoutParcelCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()

	testParcel := newPendingParcel(t)
	cmd, err := commands.NewCashoutParcelCommand(testParcel.ID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcelID", testParcel.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCashoutParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
