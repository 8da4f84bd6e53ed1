package repository

import (
	"context"
	"time"

	"vend/internal/domain/entity"
	"vend/internal/errors"

	"github.com/google/uuid"
)

// ErrDiscountNotFound is returned when the account has no eligible discount.
var ErrDiscountNotFound = errors.New("personal discount not found")

// DiscountRepository resolves personal discounts.
type DiscountRepository interface {
	// FindBestForPurchase returns the single best active, non-expired
	// discount for (account, product): a product-scoped match beats an
	// account-wide one, and among equal scope the higher percentage wins.
	FindBestForPurchase(ctx context.Context, accountID, productID uuid.UUID, now time.Time) (*entity.PersonalDiscount, error)

	// Create persists a new personal discount.
	Create(ctx context.Context, discount *entity.PersonalDiscount) error
}
