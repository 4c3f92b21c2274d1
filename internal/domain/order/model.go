package order

import (
	"context"
	"strings"
	"time"

	"github.com/letybo/ordering/internal/domain/pricing"
	"github.com/letybo/ordering/internal/domain/selection"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
)

// Order is a placed order. ID, OrderNumber and the timestamps are assigned
// by the store; everything else comes from the quote it was placed from.
type Order struct {
	// ID is the unique identifier for the order
	ID string `db:"id" json:"id"`

	// OrderNumber is the short human readable reference, e.g. ORD-4F9XK2QA
	OrderNumber string `db:"order_number" json:"order_number"`

	// UserID and Email come from the identity provider, unverified
	UserID string `db:"user_id" json:"user_id"`
	Email  string `db:"email" json:"email"`

	// SelectedPackage is the package label shown on the summary, e.g. "36 Vials Plan"
	SelectedPackage string `db:"selected_package" json:"selected_package"`

	Mode types.OrderMode `db:"mode" json:"mode"`

	// Vials is the quantity shipped by this order
	Vials int `db:"vials" json:"vials"`

	PricePerVial decimal.Decimal `db:"price_per_vial" json:"price_per_vial"`
	Total        decimal.Decimal `db:"total" json:"total"`
	Savings      decimal.Decimal `db:"savings" json:"savings"`

	// PlanVials is the commitment plan size, 0 outside commitment orders
	PlanVials int `db:"plan_vials" json:"plan_vials"`

	CommitmentPeriodMonths int `db:"commitment_period_months" json:"commitment_period_months"`

	// Currency 3 digit ISO currency code in lowercase ex usd
	Currency string `db:"currency" json:"currency"`

	types.BaseModel
}

// FromQuote builds an order from a quote, attributed to the identity on ctx
func FromQuote(ctx context.Context, q selection.Quote) *Order {
	return &Order{
		UserID:                 types.GetUserIDOrDefault(ctx),
		Email:                  types.GetUserEmail(ctx),
		SelectedPackage:        q.PackageLabel,
		Mode:                   q.Mode,
		Vials:                  q.Quantity,
		PricePerVial:           q.PricePerUnit,
		Total:                  q.Total,
		Savings:                q.Savings,
		PlanVials:              q.PlanQuantity,
		CommitmentPeriodMonths: q.CommitmentPeriodMonths,
		Currency:               q.Currency,
		BaseModel:              types.GetDefaultBaseModel(ctx),
	}
}

// AssignIdentity fills the store-owned fields. Existing values are kept so
// a retried insert reuses its id.
func (o *Order) AssignIdentity(now time.Time) {
	if o.ID == "" {
		o.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER)
	}
	if o.OrderNumber == "" {
		o.OrderNumber = types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER)
	}
	now = now.UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}

// Validate checks the computed triple before the order reaches a store
func (o *Order) Validate() error {
	var problems []string

	if strings.TrimSpace(o.UserID) == "" {
		problems = append(problems, "user_id is required")
	}
	if o.Vials <= 0 {
		problems = append(problems, "vials must be > 0")
	}
	if !o.PricePerVial.IsPositive() {
		problems = append(problems, "price_per_vial must be > 0")
	}
	if o.Currency == "" {
		problems = append(problems, "currency is required")
	}
	if err := o.Mode.Validate(); err != nil {
		problems = append(problems, "mode is invalid")
	}
	if o.Mode == types.OrderModeCommitment && o.PlanVials < o.Vials {
		problems = append(problems, "plan_vials must cover vials for commitment orders")
	}
	want := types.RoundToCurrencyPrecision(pricing.ComputeTotal(o.Vials, o.PricePerVial), o.Currency)
	if !want.Equal(o.Total) {
		problems = append(problems, "total must equal vials * price_per_vial")
	}

	if len(problems) > 0 {
		return ierr.NewError("invalid order").
			WithHint("Order failed validation").
			WithReportableDetails(map[string]any{
				"problems": problems,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
