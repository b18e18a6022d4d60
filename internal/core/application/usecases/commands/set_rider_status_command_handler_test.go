package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(
		kernel.NewUUID(),
		"Jamal Uddin",
		mustEmail(t, "rider@example.com"),
		"Dhaka",
	)
	require.NoError(t, err)
	return r
}

func TestSetRiderStatusCommandHandler_Handle_ActivatePromotesAccount(t *testing.T) {
	ctx := t.Context()

	applicant := newPendingRider(t)
	account := newRegisteredUser(t, "rider@example.com")
	cmd, err := commands.NewSetRiderStatusCommand(applicant.ID(), rider.StatusActive, rider.WorkStatusFree)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Twice(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Twice(),
		userRepo.On("GetByEmail", ctx, applicant.Email()).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.StatusActive, applicant.Status())
	assert.Equal(t, user.RoleRider, account.Role())

	riderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetRiderStatusCommandHandler_Handle_ActivateWithoutAccount(t *testing.T) {
	ctx := t.Context()

	applicant := newPendingRider(t)
	cmd, err := commands.NewSetRiderStatusCommand(applicant.ID(), rider.StatusActive, rider.WorkStatusFree)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	// Activation still commits when the applicant never registered an
	// account; the role catches up at registration time.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Twice(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, applicant.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", applicant.Email().String())).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.StatusActive, applicant.Status())
	userRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestSetRiderStatusCommandHandler_Handle_DeactivateSkipsAccount(t *testing.T) {
	ctx := t.Context()

	applicant := newPendingRider(t)
	cmd, err := commands.NewSetRiderStatusCommand(applicant.ID(), rider.StatusDeactive, rider.WorkStatusFree)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Twice(),
		riderRepo.On("Get", ctx, applicant.ID()).Return(applicant, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.StatusDeactive, applicant.Status())
	uow.AssertNotCalled(t, "UserRepository")
}

func TestSetRiderStatusCommandHandler_Handle_RiderNotFound(t *testing.T) {
	ctx := t.Context()

	riderID := kernel.NewUUID()
	cmd, err := commands.NewSetRiderStatusCommand(riderID, rider.StatusActive, rider.WorkStatusFree)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, riderID).Return(nil, errs.NewObjectNotFoundError("riderID", riderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
