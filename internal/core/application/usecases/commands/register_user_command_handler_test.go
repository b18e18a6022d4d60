package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_NewAccount(t *testing.T) {
	ctx := t.Context()

	email := mustEmail(t, "fresh@example.com")
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), email)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Twice(),
		userRepo.On("GetByEmail", ctx, email).Return(nil, errs.NewObjectNotFoundError("email", email.String())).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	inserted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, inserted)

	addCall := userRepo.Calls[1]
	account := addCall.Arguments[1].(*user.User)
	assert.Equal(t, user.RoleUser, account.Role())
	assert.True(t, account.Email().IsEqual(email))

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()

	existing := newRegisteredUser(t, "fresh@example.com")
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), existing.Email())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, existing.Email()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	inserted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, inserted)
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
