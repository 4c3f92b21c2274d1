package catalog

import (
	"github.com/letybo/ordering/internal/domain/pricing"
	"github.com/letybo/ordering/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Catalog is the immutable price book the service runs with. It is built
// once at startup, validated, and shared read-only afterwards.
type Catalog struct {
	// Currency 3 digit ISO currency code in lowercase ex usd
	Currency string `json:"currency"`

	// ListPrice is the undiscounted unit price, used for savings and discount display only
	ListPrice decimal.Decimal `json:"list_price"`

	// Step is the quantum every order quantity must be a multiple of
	Step int `json:"step"`

	// MinimumQuantity and MaximumQuantity bound what a customer can select
	MinimumQuantity int `json:"minimum_quantity"`
	MaximumQuantity int `json:"maximum_quantity"`

	PricingStrategy types.PricingStrategy `json:"pricing_strategy"`

	// Tiers sorted ascending by MinQuantity; the first one starts at MinimumQuantity
	Tiers []pricing.Tier `json:"tiers"`

	Plans []pricing.CommitmentPlan `json:"plans"`

	// Linear is set only for the LINEAR strategy
	Linear *pricing.LinearCurve `json:"linear,omitempty"`

	PlanResetPolicy types.PlanResetPolicy `json:"plan_reset_policy"`

	strategy pricing.Strategy
}

// Strategy returns the pricing strategy resolved when the catalog was validated
func (c *Catalog) Strategy() pricing.Strategy {
	return c.strategy
}

// UnitPrice prices quantity with the catalog strategy
func (c *Catalog) UnitPrice(quantity int) decimal.Decimal {
	return c.strategy.UnitPrice(quantity)
}

// FindPlan looks up a commitment plan by its quantity
func (c *Catalog) FindPlan(planQuantity int) (pricing.CommitmentPlan, bool) {
	return lo.Find(c.Plans, func(p pricing.CommitmentPlan) bool {
		return p.PlanQuantity == planQuantity
	})
}

// FindTier looks up a tier by its exact threshold
func (c *Catalog) FindTier(minQuantity int) (pricing.Tier, bool) {
	return lo.Find(c.Tiers, func(t pricing.Tier) bool {
		return t.MinQuantity == minQuantity
	})
}

// DefaultQuantity is the quantity a fresh selection starts with
func (c *Catalog) DefaultQuantity() int {
	return c.MinimumQuantity
}

// IsSelectableQuantity reports whether quantity is a step multiple inside the catalog bounds
func (c *Catalog) IsSelectableQuantity(quantity int) bool {
	return quantity >= c.MinimumQuantity &&
		quantity <= c.MaximumQuantity &&
		quantity%c.Step == 0
}

// SelectableQuantities lists every quantity the slider can land on
func (c *Catalog) SelectableQuantities() []int {
	out := make([]int, 0, (c.MaximumQuantity-c.MinimumQuantity)/c.Step+1)
	for q := c.MinimumQuantity; q <= c.MaximumQuantity; q += c.Step {
		out = append(out, q)
	}
	return out
}
