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

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	fx := wishlistServiceFixtures{
		wishlistRepo: mockRepo.NewMockWishlistRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}
	fx.service = NewWishlistService(WishlistServiceParams{
		WishlistRepo: fx.wishlistRepo,
		ProductRepo:  fx.productRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestWishlistService_Add(t *testing.T) {
	fx := createTestWishlistService(t)

	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "EliteBook"}
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(product, nil)
	fx.wishlistRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.WishlistEntry")).Return(nil)

	entry, err := fx.service.Add(context.Background(), "buyer@example.com", productID)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", entry.BuyerEmail)
	assert.Equal(t, product, entry.Product)
}

func TestWishlistService_Add_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Add(context.Background(), "buyer@example.com", productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_List_OnlySelf(t *testing.T) {
	fx := createTestWishlistService(t)

	_, err := fx.service.List(context.Background(), "buyer@example.com", "other@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWishlistService_Remove_NotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	productID := uuid.New()
	fx.wishlistRepo.EXPECT().Delete(mock.Anything, "buyer@example.com", productID).Return(repository.ErrWishlistEntryNotFound)

	err := fx.service.Remove(context.Background(), "buyer@example.com", productID)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistEntryNotFound)
}

func TestWishlistService_RemoveProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	productID := uuid.New()
	fx.wishlistRepo.EXPECT().DeleteByProduct(mock.Anything, productID).Return(int64(3), nil)

	removed, err := fx.service.RemoveProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
