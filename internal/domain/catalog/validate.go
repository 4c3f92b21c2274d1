package catalog

import (
	"fmt"
	"strings"

	"github.com/letybo/ordering/internal/domain/pricing"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/samber/lo"
)

// New validates data and returns a catalog ready for pricing. Every
// integrity problem is reported at once so a bad file fails startup with
// the full list.
func New(data Catalog) (*Catalog, error) {
	c := data
	c.Currency = strings.ToLower(strings.TrimSpace(c.Currency))
	c.Tiers = append([]pricing.Tier(nil), data.Tiers...)
	c.Plans = append([]pricing.CommitmentPlan(nil), data.Plans...)
	if data.Linear != nil {
		curve := *data.Linear
		c.Linear = &curve
	}
	if c.PlanResetPolicy == "" {
		c.PlanResetPolicy = types.PlanResetMinimum
	}

	if problems := c.problems(); len(problems) > 0 {
		return nil, ierr.NewError(fmt.Sprintf("catalog validation failed: %s", strings.Join(problems, "; "))).
			WithHint("Catalog data failed integrity checks").
			WithReportableDetails(map[string]any{
				"problems": problems,
			}).
			Mark(ierr.ErrDataIntegrity)
	}

	strategy, err := pricing.NewStrategy(c.PricingStrategy, c.Tiers, c.Linear)
	if err != nil {
		return nil, err
	}
	c.strategy = strategy
	return &c, nil
}

func (c *Catalog) problems() []string {
	var errs []string

	if c.Currency == "" {
		errs = append(errs, "currency is required")
	}
	if !c.ListPrice.IsPositive() {
		errs = append(errs, "list_price must be > 0")
	}
	if c.Step <= 0 {
		errs = append(errs, "step must be >= 1")
		// every remaining quantity check divides by step
		return errs
	}
	if c.MinimumQuantity <= 0 || c.MinimumQuantity%c.Step != 0 {
		errs = append(errs, fmt.Sprintf("minimum_quantity must be a positive multiple of step %d", c.Step))
	}
	if c.MaximumQuantity < c.MinimumQuantity || c.MaximumQuantity%c.Step != 0 {
		errs = append(errs, fmt.Sprintf("maximum_quantity must be a multiple of step %d and >= minimum_quantity", c.Step))
	}
	if err := c.PricingStrategy.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("pricing_strategy %q is not one of TIERED, LINEAR", c.PricingStrategy))
	}
	if err := c.PlanResetPolicy.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("plan_reset_policy %q is not one of MINIMUM, PLAN_QUANTITY", c.PlanResetPolicy))
	}

	switch c.PricingStrategy {
	case types.PricingStrategyTiered:
		errs = append(errs, c.tierProblems()...)
	case types.PricingStrategyLinear:
		errs = append(errs, c.curveProblems()...)
	}
	errs = append(errs, c.planProblems()...)

	return errs
}

func (c *Catalog) tierProblems() []string {
	var errs []string

	if len(c.Tiers) == 0 {
		return append(errs, "tiers must not be empty for TIERED pricing")
	}
	if c.Tiers[0].MinQuantity != c.MinimumQuantity {
		errs = append(errs, fmt.Sprintf("tiers[0].min_quantity must equal minimum_quantity %d", c.MinimumQuantity))
	}

	for i, tier := range c.Tiers {
		if tier.MinQuantity <= 0 {
			errs = append(errs, fmt.Sprintf("tiers[%d].min_quantity must be > 0", i))
		}
		if !tier.PricePerUnit.IsPositive() {
			errs = append(errs, fmt.Sprintf("tiers[%d].price_per_unit must be > 0", i))
		}
		if tier.PricePerUnit.GreaterThan(c.ListPrice) {
			errs = append(errs, fmt.Sprintf("tiers[%d].price_per_unit %s is above list price, savings would be negative", i, tier.PricePerUnit))
		}
		if tier.DiscountPercent < 0 || tier.DiscountPercent > 100 {
			errs = append(errs, fmt.Sprintf("tiers[%d].discount_percent must be in [0,100]", i))
		} else if c.ListPrice.IsPositive() {
			if want := pricing.ComputeDiscountPercent(tier.PricePerUnit, c.ListPrice); want != tier.DiscountPercent {
				errs = append(errs, fmt.Sprintf("tiers[%d].discount_percent is %d, price implies %d", i, tier.DiscountPercent, want))
			}
		}

		if i == 0 {
			continue
		}
		prev := c.Tiers[i-1]
		if tier.MinQuantity <= prev.MinQuantity {
			errs = append(errs, fmt.Sprintf("tiers[%d].min_quantity %d must be greater than tiers[%d].min_quantity %d", i, tier.MinQuantity, i-1, prev.MinQuantity))
		}
		if tier.PricePerUnit.GreaterThan(prev.PricePerUnit) {
			errs = append(errs, fmt.Sprintf("tiers[%d].price_per_unit %s rises above tiers[%d] %s", i, tier.PricePerUnit, i-1, prev.PricePerUnit))
		}
	}

	return errs
}

func (c *Catalog) curveProblems() []string {
	var errs []string

	curve := c.Linear
	if curve == nil {
		return append(errs, "linear curve is required for LINEAR pricing")
	}
	if curve.MinQuantity >= curve.MaxQuantity {
		errs = append(errs, "linear.min_quantity must be < linear.max_quantity")
	}
	if !curve.MinPrice.IsPositive() || curve.MinPrice.GreaterThan(curve.MaxPrice) {
		errs = append(errs, "linear prices must satisfy 0 < min_price <= max_price")
	}
	if curve.MaxPrice.GreaterThan(c.ListPrice) {
		errs = append(errs, "linear.max_price is above list price, savings would be negative")
	}
	if curve.MinQuantity > c.MinimumQuantity || curve.MaxQuantity < c.MaximumQuantity {
		errs = append(errs, "linear curve must cover [minimum_quantity, maximum_quantity]")
	}

	return errs
}

func (c *Catalog) planProblems() []string {
	var errs []string

	quantities := lo.Map(c.Plans, func(p pricing.CommitmentPlan, _ int) int { return p.PlanQuantity })
	for _, dup := range lo.FindDuplicates(quantities) {
		errs = append(errs, fmt.Sprintf("plan_quantity %d is listed more than once", dup))
	}

	for i, plan := range c.Plans {
		if plan.PlanQuantity < c.MinimumQuantity || plan.PlanQuantity > c.MaximumQuantity || plan.PlanQuantity%c.Step != 0 {
			errs = append(errs, fmt.Sprintf("plans[%d].plan_quantity %d must be a multiple of %d in [%d,%d]", i, plan.PlanQuantity, c.Step, c.MinimumQuantity, c.MaximumQuantity))
		}
		if !plan.PricePerUnit.IsPositive() {
			errs = append(errs, fmt.Sprintf("plans[%d].price_per_unit must be > 0", i))
		}
		if plan.CommitmentPeriodMonths <= 0 {
			errs = append(errs, fmt.Sprintf("plans[%d].commitment_period_months must be > 0", i))
		}
		if plan.Savings.IsNegative() {
			errs = append(errs, fmt.Sprintf("plans[%d].savings must be >= 0", i))
		}
		if want := pricing.ComputeSavings(plan.PlanQuantity, plan.PricePerUnit, c.ListPrice); !want.Equal(plan.Savings) {
			errs = append(errs, fmt.Sprintf("plans[%d].savings is %s, quantity and price imply %s", i, plan.Savings, want))
		}
	}

	return errs
}
