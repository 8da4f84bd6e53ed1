package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coupon is a shareable discount code. Codes are case-insensitive and stored
// in canonical upper-case form.
type Coupon struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`                 // Canonical upper-case code.
	Percent   int        `json:"percent"`              // 1-100.
	ProductID *uuid.UUID `json:"product_id,omitempty"` // nil = valid for every product.
	MaxUses   int        `json:"max_uses"`             // 0 = unlimited, and exempt from the one-use-per-account rule.
	UsedCount int        `json:"used_count"`           // Never exceeds MaxUses when MaxUses > 0.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

// CanonicalCouponCode normalizes a user-supplied coupon code for lookup.
func CanonicalCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EligibleAt reports whether the coupon may be applied at the given instant.
func (c *Coupon) EligibleAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return false
	}

	return true
}

// AppliesTo reports whether the coupon's product scope covers the product.
func (c *Coupon) AppliesTo(productID uuid.UUID) bool {
	return c.ProductID == nil || *c.ProductID == productID
}

// HasRemainingUses reports whether the coupon can still be consumed.
func (c *Coupon) HasRemainingUses() bool {
	return c.MaxUses == 0 || c.UsedCount < c.MaxUses
}

// SingleUsePerAccount reports whether the coupon is restricted to one use per
// account. Unlimited coupons (MaxUses == 0) are exempt.
func (c *Coupon) SingleUsePerAccount() bool {
	return c.MaxUses > 0
}

// CouponUsage links a consumed coupon to the account and order that used it.
type CouponUsage struct {
	ID        uuid.UUID `json:"id"`
	CouponID  uuid.UUID `json:"coupon_id"`
	AccountID uuid.UUID `json:"account_id"`
	OrderID   uuid.UUID `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}
