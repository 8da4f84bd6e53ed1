// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// It holds the reseller's credit balance and purchase counter.
type AccountModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	SecretHash    string          `gorm:"type:varchar(255);not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	PurchaseCount int             `gorm:"not null;default:0"`
	AllowNegative bool            `gorm:"not null;default:false"`
	Role          string          `gorm:"type:varchar(32);not null;default:'reseller'"`
	Status        string          `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
