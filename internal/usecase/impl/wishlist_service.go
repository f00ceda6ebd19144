package impl

import (
	"context"
	"log/slog"
	"time"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewWishlistService creates the wishlist usecase.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add saves productID for the caller. Saving the same product twice returns the first entry.
func (srv *wishlistService) Add(ctx context.Context, callerEmail string, productID uuid.UUID) (*entity.WishlistEntry, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	product, err := srv.productRepo.FindByID(storeCtx, productID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load product for wishlist")
	}

	entry := &entity.WishlistEntry{
		ID:         uuid.New(),
		BuyerEmail: callerEmail,
		ProductID:  productID,
	}
	if err := srv.wishlistRepo.Create(storeCtx, entry); err != nil {
		return nil, translateRepoError(err, "failed to add wishlist entry")
	}
	entry.Product = product

	srv.log(ctx).Debug("Wishlist entry saved",
		slog.String("buyer", callerEmail),
		slog.String("productID", productID.String()))

	return entry, nil
}

func (srv *wishlistService) List(ctx context.Context, callerEmail, email string) ([]*entity.WishlistEntry, error) {
	if callerEmail != email {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	entries, err := srv.wishlistRepo.ListByBuyer(storeCtx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return entries, nil
}

func (srv *wishlistService) Remove(ctx context.Context, callerEmail string, productID uuid.UUID) error {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.wishlistRepo.Delete(storeCtx, callerEmail, productID); err != nil {
		return translateRepoError(err, "failed to remove wishlist entry")
	}

	return nil
}

// RemoveProduct clears a sold product from every wishlist.
func (srv *wishlistService) RemoveProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	removed, err := srv.wishlistRepo.DeleteByProduct(storeCtx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear product from wishlists")
	}

	srv.log(ctx).Info("Sold product removed from wishlists",
		slog.String("productID", productID.String()),
		slog.Int64("removed", removed))

	return removed, nil
}
