package selection

import (
	"time"

	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/pricing"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
)

// Selection is the order form state of one session. Every mutation checks
// the catalog first and leaves the selection untouched when it fails.
type Selection struct {
	ID string `json:"id"`

	// UserID owns the session; only the owner can read, change or place it
	UserID string `json:"user_id,omitempty"`

	Mode types.OrderMode `json:"mode"`

	// Quantity is the tier or slider quantity; in COMMITMENT mode it is the plan size
	Quantity int `json:"quantity"`

	// Plan is set only in COMMITMENT mode
	Plan *pricing.CommitmentPlan `json:"plan,omitempty"`

	// InitialOrderQuantity is the first shipment of a commitment plan
	InitialOrderQuantity int `json:"initial_order_quantity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New starts a selection at the catalog's minimum tier
func New(id string, c *catalog.Catalog) *Selection {
	now := time.Now().UTC()
	return &Selection{
		ID:        id,
		Mode:      types.OrderModeVolume,
		Quantity:  c.DefaultQuantity(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy safe to hand to another goroutine
func (s *Selection) Clone() *Selection {
	out := *s
	if s.Plan != nil {
		plan := *s.Plan
		out.Plan = &plan
	}
	return &out
}

// HasPlan reports whether a commitment plan is active
func (s *Selection) HasPlan() bool {
	return s.Mode == types.OrderModeCommitment && s.Plan != nil
}

// ChargedQuantity is what the next order ships and bills
func (s *Selection) ChargedQuantity() int {
	if s.HasPlan() {
		return s.InitialOrderQuantity
	}
	return s.Quantity
}

// SelectTier switches to VOLUME at the tier's threshold and drops any plan
func (s *Selection) SelectTier(c *catalog.Catalog, minQuantity int) error {
	if _, ok := c.FindTier(minQuantity); !ok {
		return ierr.NewError("tier not in catalog").
			WithHintf("There is no pricing tier starting at %d vials", minQuantity).
			WithReportableDetails(map[string]any{
				"min_quantity": minQuantity,
			}).
			Mark(ierr.ErrInvalidSelection)
	}
	if err := checkQuantity(c, minQuantity); err != nil {
		return err
	}

	s.Mode = types.OrderModeVolume
	s.Quantity = minQuantity
	s.clearPlan()
	return nil
}

// SetQuantity is a slider move: CUSTOM mode, any step multiple in bounds, plan dropped
func (s *Selection) SetQuantity(c *catalog.Catalog, quantity int) error {
	if err := checkQuantity(c, quantity); err != nil {
		return err
	}

	s.Mode = types.OrderModeCustom
	s.Quantity = quantity
	s.clearPlan()
	return nil
}

// SelectPlan activates a commitment plan. The initial order moves per the
// catalog reset policy regardless of where it was before.
func (s *Selection) SelectPlan(c *catalog.Catalog, planQuantity int) error {
	plan, ok := c.FindPlan(planQuantity)
	if !ok {
		return ierr.NewError("commitment plan not in catalog").
			WithHintf("There is no %d vial commitment plan", planQuantity).
			WithReportableDetails(map[string]any{
				"plan_quantity": planQuantity,
			}).
			Mark(ierr.ErrInvalidSelection)
	}

	s.Mode = types.OrderModeCommitment
	s.Quantity = plan.PlanQuantity
	s.Plan = &plan
	s.InitialOrderQuantity = ResetInitialOrder(c, plan)
	s.touch()
	return nil
}

// SetInitialOrderQuantity moves the initial order slider of the active plan
func (s *Selection) SetInitialOrderQuantity(c *catalog.Catalog, quantity int) error {
	if !s.HasPlan() {
		return ierr.NewError("no commitment plan selected").
			WithHint("Select a commitment plan before choosing an initial order").
			Mark(ierr.ErrInvalidSelection)
	}
	if err := checkInitialOrder(c, *s.Plan, quantity); err != nil {
		return err
	}

	s.InitialOrderQuantity = quantity
	s.touch()
	return nil
}

// Validate rechecks the whole state against c. Used when a selection is
// assembled from outside input rather than built through the mutators.
func (s *Selection) Validate(c *catalog.Catalog) error {
	if err := s.Mode.Validate(); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrInvalidSelection)
	}

	switch s.Mode {
	case types.OrderModeCommitment:
		if s.Plan == nil {
			return ierr.NewError("commitment mode without plan").
				WithHint("A commitment order needs a plan").
				Mark(ierr.ErrInvalidSelection)
		}
		plan, ok := c.FindPlan(s.Plan.PlanQuantity)
		if !ok || !plan.PricePerUnit.Equal(s.Plan.PricePerUnit) {
			return ierr.NewError("commitment plan not in catalog").
				WithHintf("There is no %d vial commitment plan", s.Plan.PlanQuantity).
				Mark(ierr.ErrInvalidSelection)
		}
		return checkInitialOrder(c, plan, s.InitialOrderQuantity)
	case types.OrderModeVolume:
		if _, ok := c.FindTier(s.Quantity); !ok && c.PricingStrategy == types.PricingStrategyTiered {
			return ierr.NewError("tier not in catalog").
				WithHintf("There is no pricing tier starting at %d vials", s.Quantity).
				Mark(ierr.ErrInvalidSelection)
		}
	}

	if s.Plan != nil {
		return ierr.NewError("plan outside commitment mode").
			WithHint("Only commitment orders can carry a plan").
			Mark(ierr.ErrInvalidSelection)
	}
	return checkQuantity(c, s.Quantity)
}

// ResetInitialOrder is where the initial order lands when plan is chosen
func ResetInitialOrder(c *catalog.Catalog, plan pricing.CommitmentPlan) int {
	if c.PlanResetPolicy == types.PlanResetPlanQuantity {
		return plan.PlanQuantity
	}
	return c.MinimumQuantity
}

func (s *Selection) clearPlan() {
	s.Plan = nil
	s.InitialOrderQuantity = 0
	s.touch()
}

func (s *Selection) touch() {
	s.UpdatedAt = time.Now().UTC()
}

func checkQuantity(c *catalog.Catalog, quantity int) error {
	if c.IsSelectableQuantity(quantity) {
		return nil
	}
	return ierr.NewError("quantity outside catalog bounds").
		WithHintf("Quantity must be a multiple of %d between %d and %d vials", c.Step, c.MinimumQuantity, c.MaximumQuantity).
		WithReportableDetails(map[string]any{
			"quantity": quantity,
			"step":     c.Step,
			"minimum":  c.MinimumQuantity,
			"maximum":  c.MaximumQuantity,
		}).
		Mark(ierr.ErrInvalidSelection)
}

func checkInitialOrder(c *catalog.Catalog, plan pricing.CommitmentPlan, quantity int) error {
	if quantity >= c.MinimumQuantity && quantity <= plan.PlanQuantity && quantity%c.Step == 0 {
		return nil
	}
	return ierr.NewError("initial order outside plan bounds").
		WithHintf("Initial order must be a multiple of %d between %d and %d vials", c.Step, c.MinimumQuantity, plan.PlanQuantity).
		WithReportableDetails(map[string]any{
			"initial_order_quantity": quantity,
			"plan_quantity":          plan.PlanQuantity,
			"step":                   c.Step,
			"minimum":                c.MinimumQuantity,
		}).
		Mark(ierr.ErrInvalidSelection)
}
