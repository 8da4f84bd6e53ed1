package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vend/internal/delivery/context"
	"vend/internal/domain/entity"
	domainerrors "vend/internal/domain/errors"
	"vend/internal/domain/repository"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// AddStock appends payloads to the product's queue. The product row is locked
// so concurrent uploads cannot interleave positions.
func (srv *catalogService) AddStock(ctx context.Context, productID uuid.UUID, payloads []string) (int, error) {
	cleaned := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		payload = strings.TrimSpace(payload)
		if payload != "" {
			cleaned = append(cleaned, payload)
		}
	}
	if len(cleaned) == 0 {
		return 0, domainerrors.ErrInvalidRequest.WrapMessage("no stock lines supplied")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByIDForUpdate(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to lock product row")
		}

		if err := repoFactory.ProductRepo().AddStock(ctx, productID, cleaned); err != nil {
			return errors.Wrap(err, "failed to add stock lines")
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute stock upload transaction")
	}

	srv.log(ctx).Info("Stock lines added",
		slog.Any("productID", productID),
		slog.Int("count", len(cleaned)),
	)

	return len(cleaned), nil
}
