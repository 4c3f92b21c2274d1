package pricing

import (
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
)

// Strategy turns an order quantity into a unit price. A catalog uses
// exactly one strategy; they are never mixed.
type Strategy interface {
	Name() types.PricingStrategy
	UnitPrice(quantity int) decimal.Decimal
}

// NewStrategy returns the strategy named by the catalog configuration
func NewStrategy(name types.PricingStrategy, tiers []Tier, curve *LinearCurve) (Strategy, error) {
	switch name {
	case types.PricingStrategyTiered:
		if len(tiers) == 0 {
			return nil, ierr.NewError("tiered pricing requires at least one tier").
				WithHint("The tiered pricing strategy needs a tier table").
				Mark(ierr.ErrDataIntegrity)
		}
		return &tieredStrategy{tiers: tiers}, nil
	case types.PricingStrategyLinear:
		if curve == nil {
			return nil, ierr.NewError("linear pricing requires a curve").
				WithHint("The linear pricing strategy needs a linear curve").
				Mark(ierr.ErrDataIntegrity)
		}
		return &linearStrategy{curve: *curve}, nil
	default:
		return nil, name.Validate()
	}
}

type tieredStrategy struct {
	tiers []Tier
}

func (s *tieredStrategy) Name() types.PricingStrategy {
	return types.PricingStrategyTiered
}

func (s *tieredStrategy) UnitPrice(quantity int) decimal.Decimal {
	return ResolveTierPrice(quantity, s.tiers)
}

type linearStrategy struct {
	curve LinearCurve
}

func (s *linearStrategy) Name() types.PricingStrategy {
	return types.PricingStrategyLinear
}

func (s *linearStrategy) UnitPrice(quantity int) decimal.Decimal {
	return InterpolateLinear(s.curve, quantity)
}
