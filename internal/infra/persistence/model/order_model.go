package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Rows are write-once; Lines holds the delivered payloads as a JSON array.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code            string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	Lines           []byte          `gorm:"type:jsonb;not null"`
	OriginalCost    decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	DiscountPercent int             `gorm:"not null;default:0"`
	Provenance      string          `gorm:"type:varchar(32);not null;default:'none'"`
	FinalCost       decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
