package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Available int             `gorm:"not null;default:0"`
	TotalSold int             `gorm:"not null;default:0"`
	Status    string          `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// StockLineModel is the GORM-specific struct for the 'stock_lines' table.
// Position is a bigserial; insertion order defines FIFO consumption order.
type StockLineModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_stock_lines_fifo,priority:1"`
	Position  int64      `gorm:"type:bigserial;not null;index:idx_stock_lines_fifo,priority:3"`
	Payload   string     `gorm:"type:text;not null"`
	Sold      bool       `gorm:"not null;default:false;index:idx_stock_lines_fifo,priority:2"`
	SoldAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockLineModel) TableName() string {
	return "stock_lines"
}
