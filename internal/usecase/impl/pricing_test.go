package impl

import (
	"testing"

	"vend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveDiscount(t *testing.T) {
	tests := []struct {
		name           string
		personal       int
		coupon         int
		wantPercent    int
		wantProvenance entity.DiscountProvenance
	}{
		{"no discounts", 0, 0, 0, entity.ProvenanceNone},
		{"personal only", 10, 0, 10, entity.ProvenancePersonal},
		{"coupon only", 0, 15, 15, entity.ProvenanceCoupon},
		{"personal beats coupon", 25, 15, 25, entity.ProvenancePersonal},
		{"coupon beats personal", 10, 20, 20, entity.ProvenanceCoupon},
		{"tie goes to personal", 10, 10, 10, entity.ProvenancePersonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var personal *entity.PersonalDiscount
			if tt.personal > 0 {
				personal = &entity.PersonalDiscount{Percent: tt.personal}
			}
			var coupon *entity.Coupon
			if tt.coupon > 0 {
				coupon = &entity.Coupon{Percent: tt.coupon}
			}

			percent, provenance := resolveDiscount(personal, coupon)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantProvenance, provenance)
		})
	}
}

func TestResolveDiscount_BothNil(t *testing.T) {
	percent, provenance := resolveDiscount(nil, nil)
	assert.Equal(t, 0, percent)
	assert.Equal(t, entity.ProvenanceNone, provenance)
}

func TestPurchaseCost(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    string
		quantity     int
		percent      int
		wantOriginal string
		wantFinal    string
	}{
		{"no discount", "4", 3, 0, "12", "12"},
		{"exact division", "10", 2, 20, "20", "16"},
		{"rounds up", "3", 1, 15, "3", "3"},
		{"rounds up multi line", "7", 3, 10, "21", "19"},
		{"full discount", "5", 2, 100, "10", "0"},
		{"fractional price", "2.5", 3, 0, "7.5", "8"},
		{"single line", "1", 1, 50, "1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, final := purchaseCost(decimal.RequireFromString(tt.unitPrice), tt.quantity, tt.percent)
			assert.Equal(t, tt.wantOriginal, original.String())
			assert.Equal(t, tt.wantFinal, final.String())
		})
	}
}
