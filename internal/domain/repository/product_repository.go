package repository

import (
	"context"

	"vend/internal/domain/entity"
	"vend/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when fewer unsold lines exist than
	// requested. The allocation makes no mutation in that case.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository is the inventory pool: per product, an ordered queue of
// unsold stock lines plus aggregate counters.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves a product by its natural key.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product and acquires a row lock on it,
	// serializing concurrent allocations. Must be called inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListActive returns all purchasable products.
	ListActive(ctx context.Context) ([]*entity.Product, error)

	// List returns every product, used by the snapshot exporter.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// AllocateStock removes exactly quantity lines in FIFO order (lowest
	// position first), marks them sold, decrements the available counter and
	// increments total-sold. Returns the payloads verbatim in consumption
	// order, or ErrInsufficientStock without mutating anything.
	AllocateStock(ctx context.Context, productID uuid.UUID, quantity int) ([]string, error)

	// AddStock appends lines to the product's queue with monotonically
	// increasing positions and raises the available counter.
	AddStock(ctx context.Context, productID uuid.UUID, payloads []string) error
}
