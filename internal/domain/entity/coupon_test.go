package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalCouponCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"save20", "SAVE20"},
		{"SAVE20", "SAVE20"},
		{"  SaVe20  ", "SAVE20"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCouponCode(tt.input))
	}
}

func TestCoupon_EligibleAt(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active without expiry", Coupon{Active: true}, true},
		{"active before expiry", Coupon{Active: true, ExpiresAt: &future}, true},
		{"inactive", Coupon{Active: false}, false},
		{"expired", Coupon{Active: true, ExpiresAt: &past}, false},
		{"expiring exactly now", Coupon{Active: true, ExpiresAt: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.EligibleAt(now))
		})
	}
}

func TestCoupon_AppliesTo(t *testing.T) {
	productID := uuid.New()
	otherID := uuid.New()

	unscoped := Coupon{}
	assert.True(t, unscoped.AppliesTo(productID))
	assert.True(t, unscoped.AppliesTo(otherID))

	scoped := Coupon{ProductID: &productID}
	assert.True(t, scoped.AppliesTo(productID))
	assert.False(t, scoped.AppliesTo(otherID))
}

func TestCoupon_HasRemainingUses(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"unlimited", Coupon{MaxUses: 0, UsedCount: 1000}, true},
		{"uses left", Coupon{MaxUses: 5, UsedCount: 4}, true},
		{"exhausted", Coupon{MaxUses: 5, UsedCount: 5}, false},
		{"over-consumed", Coupon{MaxUses: 5, UsedCount: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.HasRemainingUses())
		})
	}
}

func TestCoupon_SingleUsePerAccount(t *testing.T) {
	// Unlimited coupons are exempt from the one-use-per-account rule.
	assert.False(t, (&Coupon{MaxUses: 0}).SingleUsePerAccount())
	assert.True(t, (&Coupon{MaxUses: 1}).SingleUsePerAccount())
	assert.True(t, (&Coupon{MaxUses: 100}).SingleUsePerAccount())
}
