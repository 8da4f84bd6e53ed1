package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountProvenance records which rule produced the applied percentage.
type DiscountProvenance string

const (
	ProvenanceNone     DiscountProvenance = "none"
	ProvenancePersonal DiscountProvenance = "personal"
	ProvenanceCoupon   DiscountProvenance = "coupon"
)

// Order is the immutable record of one successful purchase. It is created
// exactly once and never updated or deleted in normal operation.
type Order struct {
	ID              uuid.UUID          `json:"id"`
	Code            string             `json:"code"` // Unique, human-shareable identifier.
	AccountID       uuid.UUID          `json:"account_id"`
	ProductID       uuid.UUID          `json:"product_id"`
	Quantity        int                `json:"quantity"`
	Lines           []string           `json:"lines"`            // The exact stock-line payloads delivered.
	OriginalCost    decimal.Decimal    `json:"original_cost"`    // Pre-discount cost.
	DiscountPercent int                `json:"discount_percent"` // 0-100.
	Provenance      DiscountProvenance `json:"provenance"`
	FinalCost       decimal.Decimal    `json:"final_cost"` // Credits actually debited.
	CreatedAt       time.Time          `json:"created_at"`
}
