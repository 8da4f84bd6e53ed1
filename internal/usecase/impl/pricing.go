// Package impl contains the implementation of the application's business logic.
package impl

import (
	"vend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// resolveDiscount arbitrates between the best personal discount and the
// supplied coupon. The higher percentage wins; ties favor the personal
// discount because it requires no consumable use. Either side may be nil.
func resolveDiscount(personal *entity.PersonalDiscount, coupon *entity.Coupon) (int, entity.DiscountProvenance) {
	personalPercent := 0
	if personal != nil {
		personalPercent = personal.Percent
	}

	couponPercent := 0
	if coupon != nil {
		couponPercent = coupon.Percent
	}

	switch {
	case personalPercent == 0 && couponPercent == 0:
		return 0, entity.ProvenanceNone
	case couponPercent > personalPercent:
		return couponPercent, entity.ProvenanceCoupon
	default:
		return personalPercent, entity.ProvenancePersonal
	}
}

// purchaseCost computes the pre-discount cost and the final charge.
// The final cost is always rounded up to a whole credit (ceiling), never in
// the buyer's favor.
func purchaseCost(unitPrice decimal.Decimal, quantity, percent int) (original, final decimal.Decimal) {
	original = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	final = original.
		Mul(decimal.NewFromInt(int64(100 - percent))).
		Div(oneHundred).
		Ceil()

	return original, final
}
