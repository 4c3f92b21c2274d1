package pricing

import (
	"github.com/shopspring/decimal"
)

// LinearPricePrecision is the number of decimal places interpolated prices keep
const LinearPricePrecision int32 = 2

// InterpolateLinear prices quantity on the straight line from
// (MinQuantity, MaxPrice) to (MaxQuantity, MinPrice), rounded half up to
// cents. Quantities outside the curve are not clamped and extrapolate;
// callers bound their input.
func InterpolateLinear(curve LinearCurve, quantity int) decimal.Decimal {
	span := curve.MaxQuantity - curve.MinQuantity
	if span <= 0 {
		return curve.MaxPrice
	}
	drop := curve.MaxPrice.Sub(curve.MinPrice).
		Mul(decimal.NewFromInt(int64(quantity - curve.MinQuantity))).
		Div(decimal.NewFromInt(int64(span)))
	return roundHalfUp(curve.MaxPrice.Sub(drop), LinearPricePrecision)
}
