package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonalDiscountModel is the GORM-specific struct for the 'personal_discounts' table.
// A NULL product_id means the discount applies to every product.
type PersonalDiscountModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Percent   int        `gorm:"not null;check:percent >= 1 AND percent <= 100"`
	ExpiresAt *time.Time
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonalDiscountModel) TableName() string {
	return "personal_discounts"
}
