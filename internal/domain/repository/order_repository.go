package repository

import (
	"context"

	"vend/internal/domain/entity"
	"vend/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when no order matches the lookup.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderCodeTaken is returned when the generated order code collides
	// with an existing one; the recorder regenerates and retries.
	ErrOrderCodeTaken = errors.New("order code already taken")
)

// OrderRepository is the order recorder. Orders are write-once: no update or
// delete operation exists in normal flow.
type OrderRepository interface {
	// Create persists a new immutable order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByCode retrieves an order by its shareable code.
	FindByCode(ctx context.Context, code string) (*entity.Order, error)

	// ListByAccount returns the account's orders, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// List returns every order, used by the snapshot exporter.
	List(ctx context.Context) ([]*entity.Order, error)
}
