package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_IsActive(t *testing.T) {
	assert.True(t, (&Account{Status: AccountStatusActive}).IsActive())
	assert.False(t, (&Account{Status: AccountStatusDisabled}).IsActive())
	assert.False(t, (&Account{}).IsActive())
}

func TestAccount_CanSpend(t *testing.T) {
	tests := []struct {
		name          string
		balance       string
		allowNegative bool
		amount        string
		want          bool
	}{
		{"covered", "10", false, "10", true},
		{"covered with surplus", "10", false, "4", true},
		{"not covered", "10", false, "12", false},
		{"not covered but negative allowed", "10", true, "12", true},
		{"zero balance zero spend", "0", false, "0", true},
		{"negative balance negative allowed", "-5", true, "3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{
				Balance:       decimal.RequireFromString(tt.balance),
				AllowNegative: tt.allowNegative,
			}
			assert.Equal(t, tt.want, account.CanSpend(decimal.RequireFromString(tt.amount)))
		})
	}
}
