package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
// Codes are stored in canonical upper-case form; max_uses = 0 means unlimited.
type CouponModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Percent   int        `gorm:"not null;check:percent >= 1 AND percent <= 100"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	MaxUses   int        `gorm:"not null;default:0"`
	UsedCount int        `gorm:"not null;default:0"`
	ExpiresAt *time.Time
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// CouponUsageModel is the GORM-specific struct for the 'coupon_usages' table.
// The unique index enforces one use per (coupon, account) at the database level.
type CouponUsageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CouponID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_usages_coupon_account,priority:1"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_usages_coupon_account,priority:2"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponUsageModel) TableName() string {
	return "coupon_usages"
}
