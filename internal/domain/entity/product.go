package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDisabled ProductStatus = "disabled"
)

// Product is a finite digital good sold line by line.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`       // Natural key for snapshot restore.
	UnitPrice decimal.Decimal `json:"unit_price"` // Credits charged per stock line before discount.
	Available int             `json:"available"`  // Number of unsold stock lines; always equals the unsold row count.
	TotalSold int             `json:"total_sold"` // Monotonically non-decreasing.
	Status    ProductStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsActive reports whether the product can currently be purchased.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// StockLine is one discrete, sellable unit of a product's inventory.
// Lines are consumed oldest-first (lowest Position), and a sold line never
// returns to the queue.
type StockLine struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	Position  int64      `json:"position"` // Monotonic append order; defines FIFO consumption.
	Payload   string     `json:"payload"`  // The delivered credential/record, returned verbatim to the buyer.
	Sold      bool       `json:"sold"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
