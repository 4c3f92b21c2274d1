package selection

import (
	"fmt"
	"strings"

	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/pricing"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
)

const (
	PackageLabelVolume = "Volume Pricing"
	PackageLabelCustom = "Custom Quantity"
)

// Quote is everything the order form displays for a selection
type Quote struct {
	Mode     types.OrderMode       `json:"mode"`
	Strategy types.PricingStrategy `json:"strategy"`
	Currency string                `json:"currency"`

	// Quantity is what this order ships; for a plan it is the initial order
	Quantity        int             `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	Total           decimal.Decimal `json:"total"`
	ListTotal       decimal.Decimal `json:"list_total"`
	Savings         decimal.Decimal `json:"savings"`
	DiscountPercent int             `json:"discount_percent"`

	PlanQuantity           int `json:"plan_quantity,omitempty"`
	RemainingQuantity      int `json:"remaining_quantity,omitempty"`
	CommitmentPeriodMonths int `json:"commitment_period_months,omitempty"`

	PackageLabel string `json:"package_label"`
	Summary      string `json:"summary"`
}

// Quote prices the selection. A plan's price wins over the catalog strategy;
// otherwise the strategy prices the quantity.
func (s *Selection) Quote(c *catalog.Catalog) Quote {
	q := Quote{
		Mode:     s.Mode,
		Strategy: c.Strategy().Name(),
		Currency: c.Currency,
		Quantity: s.ChargedQuantity(),
	}

	if s.HasPlan() {
		q.PricePerUnit = pricing.ResolveCommitmentPrice(*s.Plan)
		q.PlanQuantity = s.Plan.PlanQuantity
		q.RemainingQuantity = s.Plan.PlanQuantity - s.InitialOrderQuantity
		q.CommitmentPeriodMonths = s.Plan.CommitmentPeriodMonths
		q.PackageLabel = PlanLabel(s.Plan.PlanQuantity)
	} else {
		q.PricePerUnit = c.UnitPrice(q.Quantity)
		q.PackageLabel = PackageLabelVolume
		if s.Mode == types.OrderModeCustom {
			q.PackageLabel = PackageLabelCustom
		}
	}

	q.Total = types.RoundToCurrencyPrecision(pricing.ComputeTotal(q.Quantity, q.PricePerUnit), c.Currency)
	q.ListTotal = types.RoundToCurrencyPrecision(pricing.ComputeTotal(q.Quantity, c.ListPrice), c.Currency)
	q.Savings = types.RoundToCurrencyPrecision(pricing.ComputeSavings(q.Quantity, q.PricePerUnit, c.ListPrice), c.Currency)
	q.DiscountPercent = pricing.ComputeDiscountPercent(q.PricePerUnit, c.ListPrice)
	q.Summary = q.summary()
	return q
}

// PlanLabel names a commitment package, e.g. "36 Vials Plan"
func PlanLabel(planQuantity int) string {
	return fmt.Sprintf("%d Vials Plan", planQuantity)
}

// SummaryLines is the order summary panel, one entry per line
func (q Quote) SummaryLines() []string {
	lines := []string{
		fmt.Sprintf("Quantity: %d vials", q.Quantity),
		fmt.Sprintf("Price per Vial: %s", types.FormatAmount(q.PricePerUnit, q.Currency)),
		fmt.Sprintf("Total Price: %s", types.FormatAmount(q.Total, q.Currency)),
		fmt.Sprintf("Total Savings: %s", types.FormatAmount(q.Savings, q.Currency)),
	}
	if q.Mode == types.OrderModeCommitment {
		return append(lines, fmt.Sprintf("Commitment Plan: %s", q.PackageLabel))
	}
	return append(lines, q.PackageLabel)
}

func (q Quote) summary() string {
	return strings.Join(q.SummaryLines(), "\n")
}
