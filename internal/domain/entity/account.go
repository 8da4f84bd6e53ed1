// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle status of a reseller account.
type AccountStatus string

const (
	// AccountStatusActive allows the account to purchase.
	AccountStatusActive AccountStatus = "active"

	// AccountStatusDisabled blocks the account from purchasing.
	AccountStatusDisabled AccountStatus = "disabled"
)

// Account represents a reseller with a prepaid credit balance.
type Account struct {
	ID            uuid.UUID       `json:"id"`             // The unique identifier for the account.
	Name          string          `json:"name"`           // Display name, also the natural key for snapshot restore.
	Email         string          `json:"email"`          // Login identity.
	SecretHash    string          `json:"-"`              // Bcrypt hash of the reseller's API secret.
	Balance       decimal.Decimal `json:"balance"`        // Spendable credit; may be negative only when AllowNegative is set.
	PurchaseCount int             `json:"purchase_count"` // Cumulative number of successful purchases.
	AllowNegative bool            `json:"allow_negative"` // Per-account override permitting the balance to go below zero.
	Role          Role            `json:"role"`           // reseller or admin.
	Status        AccountStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsActive reports whether the account may be the subject of a purchase.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// CanSpend reports whether debiting amount is permitted. Accounts with the
// negative-allowed flag may always spend; others must keep balance >= 0.
func (a *Account) CanSpend(amount decimal.Decimal) bool {
	if a.AllowNegative {
		return true
	}

	return a.Balance.GreaterThanOrEqual(amount)
}
