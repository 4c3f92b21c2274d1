package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.RequireFromString("0.5")
)

// ResolveTierPrice returns the price of the tier with the largest MinQuantity
// not above quantity. Quantities below every threshold get the lowest tier's
// price; minimum order size is enforced by callers, not here. Tiers must be
// sorted ascending by MinQuantity.
func ResolveTierPrice(quantity int, tiers []Tier) decimal.Decimal {
	if len(tiers) == 0 {
		return decimal.Zero
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		if quantity >= tiers[i].MinQuantity {
			return tiers[i].PricePerUnit
		}
	}
	return tiers[0].PricePerUnit
}

// ResolveTier is ResolveTierPrice returning the whole row
func ResolveTier(quantity int, tiers []Tier) (Tier, bool) {
	if len(tiers) == 0 {
		return Tier{}, false
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		if quantity >= tiers[i].MinQuantity {
			return tiers[i], true
		}
	}
	return tiers[0], true
}

// ResolveCommitmentPrice returns the plan's unit price
func ResolveCommitmentPrice(plan CommitmentPlan) decimal.Decimal {
	return plan.PricePerUnit
}

// ComputeTotal is quantity * pricePerUnit with no rounding
func ComputeTotal(quantity int, pricePerUnit decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeSavings is quantity * (listPrice - pricePerUnit). A negative result
// means the unit price is above list and points at bad catalog data.
func ComputeSavings(quantity int, pricePerUnit, listPrice decimal.Decimal) decimal.Decimal {
	return listPrice.Sub(pricePerUnit).Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeDiscountPercent rounds (listPrice - pricePerUnit) / listPrice * 100
// to a whole percent, half up. Display only.
func ComputeDiscountPercent(pricePerUnit, listPrice decimal.Decimal) int {
	if listPrice.IsZero() {
		return 0
	}
	percent := listPrice.Sub(pricePerUnit).Mul(hundred).Div(listPrice)
	return int(roundHalfUp(percent, 0).IntPart())
}

// roundHalfUp rounds ties toward positive infinity. decimal.Round sends
// negative ties away from zero instead.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}
