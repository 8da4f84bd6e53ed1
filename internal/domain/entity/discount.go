package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonalDiscount is a percentage discount granted to one account, optionally
// scoped to a single product. An unscoped discount applies to all products.
type PersonalDiscount struct {
	ID        uuid.UUID  `json:"id"`
	AccountID uuid.UUID  `json:"account_id"`
	ProductID *uuid.UUID `json:"product_id,omitempty"` // nil = applies to every product.
	Percent   int        `json:"percent"`              // 1-100.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

// EligibleAt reports whether the discount may be applied at the given instant.
func (d *PersonalDiscount) EligibleAt(now time.Time) bool {
	if !d.Active {
		return false
	}
	if d.ExpiresAt != nil && !d.ExpiresAt.After(now) {
		return false
	}

	return true
}

// IsProductScoped reports whether the discount targets a single product.
func (d *PersonalDiscount) IsProductScoped() bool {
	return d.ProductID != nil
}
