// Package usecase declares the application's use-case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"vend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInput describes one purchase request. The account reference comes
// from the auth collaborator and is trusted as-is.
type PurchaseInput struct {
	AccountID  uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	CouponCode string // Optional; empty means no coupon.
}

// PurchaseResult is returned to the caller on success.
type PurchaseResult struct {
	OrderCode        string                    `json:"order_code"`
	Lines            []string                  `json:"lines"` // The allocated stock-line payloads.
	OriginalCost     decimal.Decimal           `json:"original_cost"`
	DiscountPercent  int                       `json:"discount_percent"`
	Provenance       entity.DiscountProvenance `json:"provenance"`
	FinalCost        decimal.Decimal           `json:"final_cost"`
	RemainingBalance decimal.Decimal           `json:"remaining_balance"`
}

// PurchaseUsecase is the transaction coordinator: it prices, validates and
// commits a purchase as one indivisible unit.
type PurchaseUsecase interface {
	// Purchase executes a single purchase request atomically and returns the
	// result or a typed rejection. Rejections before the commit phase are
	// guaranteed side-effect-free.
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseResult, error)
}
