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

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates the catalog usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	categories, err := srv.categoryRepo.FindAll(storeCtx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.ProductListing, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if _, err := srv.categoryRepo.FindByID(storeCtx, categoryID); err != nil {
		return nil, translateRepoError(err, "failed to load category")
	}

	unsold := false
	products, err := srv.productRepo.List(storeCtx, repository.ProductFilter{
		CategoryID: &categoryID,
		Sold:       &unsold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return srv.withSellers(storeCtx, products)
}

func (srv *catalogService) ListAdvertised(ctx context.Context) ([]*entity.ProductListing, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	advertised, unsold := true, false
	products, err := srv.productRepo.List(storeCtx, repository.ProductFilter{
		Advertised: &advertised,
		Sold:       &unsold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list advertised products")
	}

	return srv.withSellers(storeCtx, products)
}

func (srv *catalogService) ListReported(ctx context.Context) ([]*entity.Product, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	reported := true
	products, err := srv.productRepo.List(storeCtx, repository.ProductFilter{Reported: &reported})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reported products")
	}

	return products, nil
}

func (srv *catalogService) ListBySeller(ctx context.Context, callerEmail string) ([]*entity.Product, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	products, err := srv.productRepo.List(storeCtx, repository.ProductFilter{OwnerEmail: callerEmail})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// CreateProduct lists a new product for a verified seller.
func (srv *catalogService) CreateProduct(ctx context.Context, callerEmail string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be positive"))
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	seller, err := srv.userRepo.FindByEmail(storeCtx, callerEmail)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller")
	}
	if !seller.HasRole(entity.RoleSeller) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}
	if !seller.IsVerified() {
		return nil, errors.WithStack(domainerrors.ErrSellerNotVerified)
	}

	if _, err := srv.categoryRepo.FindByID(storeCtx, input.CategoryID); err != nil {
		return nil, translateRepoError(err, "failed to load category")
	}

	product := &entity.Product{
		ID:            uuid.New(),
		OwnerEmail:    callerEmail,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Condition:     input.Condition,
		Location:      input.Location,
		ImageURL:      input.ImageURL,
		Phone:         input.Phone,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		YearsOfUse:    input.YearsOfUse,
	}
	if err := srv.productRepo.Create(storeCtx, product); err != nil {
		return nil, translateRepoError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product listed",
		slog.String("productID", product.ID.String()),
		slog.String("seller", callerEmail))

	return product, nil
}

// Advertise puts the caller's unsold product on the advertised list.
func (srv *catalogService) Advertise(ctx context.Context, callerEmail string, productID uuid.UUID) error {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	product, err := srv.productRepo.FindByID(storeCtx, productID)
	if err != nil {
		return translateRepoError(err, "failed to load product")
	}
	if !product.IsOwnedBy(callerEmail) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}
	if product.Sold {
		return errors.WithStack(domainerrors.ErrProductSold)
	}

	if err := srv.productRepo.SetAdvertised(storeCtx, productID, true); err != nil {
		return translateRepoError(err, "failed to advertise product")
	}

	srv.log(ctx).Info("Product advertised", slog.String("productID", productID.String()))

	return nil
}

func (srv *catalogService) Report(ctx context.Context, productID uuid.UUID) error {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.productRepo.SetReported(storeCtx, productID, true); err != nil {
		return translateRepoError(err, "failed to report product")
	}

	srv.log(ctx).Info("Product reported", slog.String("productID", productID.String()))

	return nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, callerEmail string, productID uuid.UUID) error {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	product, err := srv.productRepo.FindByID(storeCtx, productID)
	if err != nil {
		return translateRepoError(err, "failed to load product")
	}
	if !product.IsOwnedBy(callerEmail) {
		admin, err := isAdmin(storeCtx, srv.userRepo, callerEmail)
		if err != nil {
			return err
		}
		if !admin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}
	}

	if err := srv.productRepo.Delete(storeCtx, productID); err != nil {
		return translateRepoError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted",
		slog.String("productID", productID.String()),
		slog.String("deletedBy", callerEmail))

	return nil
}

// withSellers joins each product with its seller's current verification.
func (srv *catalogService) withSellers(ctx context.Context, products []*entity.Product) ([]*entity.ProductListing, error) {
	emails := make([]string, 0, len(products))
	seen := make(map[string]struct{}, len(products))
	for _, product := range products {
		if _, ok := seen[product.OwnerEmail]; ok {
			continue
		}
		seen[product.OwnerEmail] = struct{}{}
		emails = append(emails, product.OwnerEmail)
	}

	sellers := make(map[string]*entity.User, len(emails))
	if len(emails) > 0 {
		users, err := srv.userRepo.FindByEmails(ctx, emails)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load sellers")
		}
		for _, user := range users {
			sellers[user.Email] = user
		}
	}

	listings := make([]*entity.ProductListing, 0, len(products))
	for _, product := range products {
		listing := &entity.ProductListing{Product: product}
		if seller, ok := sellers[product.OwnerEmail]; ok {
			listing.SellerName = seller.Name
			listing.SellerVerified = seller.IsVerified()
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
