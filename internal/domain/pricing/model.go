package pricing

import (
	"github.com/shopspring/decimal"
)

// Tier is one row of the volume pricing table. Quantities at or above
// MinQuantity pay PricePerUnit until the next tier starts.
type Tier struct {
	MinQuantity     int             `json:"min_quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	DiscountPercent int             `json:"discount_percent"`
}

// CommitmentPlan is a fixed package bought over a multi-month commitment.
// Its price overrides tier resolution whenever the plan is active.
type CommitmentPlan struct {
	PlanQuantity           int             `json:"plan_quantity"`
	PricePerUnit           decimal.Decimal `json:"price_per_unit"`
	Description            string          `json:"description"`
	Savings                decimal.Decimal `json:"savings"`
	CommitmentPeriodMonths int             `json:"commitment_period_months"`
}

// LinearCurve is the continuous alternative to a tier table: MaxPrice at
// MinQuantity falling in a straight line to MinPrice at MaxQuantity.
type LinearCurve struct {
	MinQuantity int             `json:"min_quantity"`
	MaxQuantity int             `json:"max_quantity"`
	MinPrice    decimal.Decimal `json:"min_price"`
	MaxPrice    decimal.Decimal `json:"max_price"`
}
