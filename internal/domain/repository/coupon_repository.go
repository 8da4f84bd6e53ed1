package repository

import (
	"context"

	"vend/internal/domain/entity"
	"vend/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCouponNotFound is returned when no coupon matches the canonical code.
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponExhausted is returned when the guarded used-count increment
	// finds no remaining uses. Possible under concurrency even after an
	// eligibility check, because coupon rows are not pre-locked.
	ErrCouponExhausted = errors.New("coupon has no remaining uses")

	// ErrCouponUsageExists is returned when (coupon, account) already has a
	// usage record.
	ErrCouponUsageExists = errors.New("coupon already used by this account")
)

// CouponRepository is the coupon ledger: it tracks per-coupon usage against
// its limit and the per-account single-use restriction.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its canonical upper-case code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// HasUsage reports whether the account has already consumed the coupon.
	HasUsage(ctx context.Context, couponID, accountID uuid.UUID) (bool, error)

	// RecordUsage increments the coupon's used-count (guarded so it never
	// exceeds max-uses) and inserts the usage record. Both run in the
	// surrounding purchase transaction.
	RecordUsage(ctx context.Context, usage *entity.CouponUsage) error
}
