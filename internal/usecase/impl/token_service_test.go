package impl

import (
	"context"
	"testing"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	mockRepo "resale/internal/mocks/repository"
	mockService "resale/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokens := mockService.NewMockTokenService(t)
	srv := NewTokenService(TokenServiceParams{
		UserRepo:     userRepo,
		TokenService: tokens,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	userRepo.EXPECT().FindByEmail(mock.Anything, "buyer@example.com").Return(&entity.User{Email: "buyer@example.com"}, nil)
	tokens.EXPECT().GenerateToken("buyer@example.com").Return("signed.jwt.token", nil)

	token, err := srv.IssueToken(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
}

func TestTokenService_IssueToken_UnknownUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokens := mockService.NewMockTokenService(t)
	srv := NewTokenService(TokenServiceParams{
		UserRepo:     userRepo,
		TokenService: tokens,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	token, err := srv.IssueToken(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownUser)
	assert.Empty(t, token)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}
