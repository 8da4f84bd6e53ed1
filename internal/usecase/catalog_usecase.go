package usecase

import (
	"context"

	"vend/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the product catalog and stock administration.
type CatalogUsecase interface {
	// ListProducts returns all purchasable products with availability counts.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// AddStock appends stock lines to a product's queue, preserving upload
	// order for FIFO consumption. Returns the number of lines added.
	AddStock(ctx context.Context, productID uuid.UUID, payloads []string) (int, error)
}
