package impl

import (
	"context"
	"testing"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	mockRepo "resale/internal/mocks/repository"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Config:   newTestConfig(),
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
	}
}

func TestUserService_Register_NewUser(t *testing.T) {
	fx := createTestUserService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" && u.Role == entity.RoleBuyer && !u.IsVerified()
		})).
		Return(nil)

	out, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{Email: "new@example.com", Name: "New"})
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, entity.RoleBuyer, out.User.Role)
}

func TestUserService_Register_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	existing := &entity.User{ID: uuid.New(), Email: "seller@example.com", Role: entity.RoleSeller}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "seller@example.com").Return(existing, nil)

	out, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Email: "seller@example.com",
		Role:  entity.RoleBuyer,
	})
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, existing, out.User)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_RaceReturnsWinner(t *testing.T) {
	fx := createTestUserService(t)

	winner := &entity.User{ID: uuid.New(), Email: "race@example.com"}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "race@example.com").Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "race@example.com").Return(winner, nil).Once()

	out, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{Email: "race@example.com"})
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, winner.ID, out.User.ID)
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterUserInput
	}{
		{name: "admin self-signup", input: usecase.RegisterUserInput{Email: "a@example.com", Role: entity.RoleAdmin}},
		{name: "unknown role", input: usecase.RegisterUserInput{Email: "a@example.com", Role: "owner"}},
		{name: "blank email", input: usecase.RegisterUserInput{Email: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.Register(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_HasRole(t *testing.T) {
	fx := createTestUserService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(&entity.User{Role: entity.RoleAdmin}, nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	ok, err := fx.service.HasRole(context.Background(), "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.HasRole(context.Background(), "ghost@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_Get(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "me@example.com").Return(&entity.User{Email: "me@example.com"}, nil)

		user, err := fx.service.Get(context.Background(), "me@example.com", "me@example.com")
		require.NoError(t, err)
		assert.Equal(t, "me@example.com", user.Email)
	})

	t.Run("other non-admin", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "me@example.com").Return(&entity.User{Role: entity.RoleBuyer}, nil)

		_, err := fx.service.Get(context.Background(), "me@example.com", "you@example.com")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin looks up missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(&entity.User{Role: entity.RoleAdmin}, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Get(context.Background(), "admin@example.com", "ghost@example.com")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_Update_VerifiesSeller(t *testing.T) {
	fx := createTestUserService(t)

	user := &entity.User{Email: "seller@example.com", Role: entity.RoleSeller, Verification: entity.VerificationUnverified}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "seller@example.com").Return(user, nil)
	fx.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	verified := true
	updated, err := fx.service.Update(context.Background(), "seller@example.com", &usecase.UpdateUserInput{Verified: &verified})
	require.NoError(t, err)
	assert.True(t, updated.IsVerified())
	assert.Equal(t, entity.RoleSeller, updated.Role)
}

func TestUserService_Update_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	role := entity.RoleSeller
	_, err := fx.service.Update(context.Background(), "ghost@example.com", &usecase.UpdateUserInput{Role: &role})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	id := uuid.New()
	fx.userRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrUserNotFound)

	err := fx.service.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
