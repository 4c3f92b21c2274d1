package dto

import (
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/selection"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/letybo/ordering/internal/validator"
)

// CatalogResponse is the price book plus the quantities the slider offers
type CatalogResponse struct {
	*catalog.Catalog
	SelectableQuantities []int `json:"selectable_quantities"`
	DefaultQuantity      int   `json:"default_quantity"`
}

func NewCatalogResponse(c *catalog.Catalog) *CatalogResponse {
	return &CatalogResponse{
		Catalog:              c,
		SelectableQuantities: c.SelectableQuantities(),
		DefaultQuantity:      c.DefaultQuantity(),
	}
}

// QuoteRequest prices an order form state without creating a session.
// Quantity is the tier threshold for VOLUME and the slider value for CUSTOM;
// PlanQuantity and InitialOrderQuantity apply to COMMITMENT.
type QuoteRequest struct {
	Mode                 types.OrderMode `json:"mode" validate:"required"`
	Quantity             int             `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	PlanQuantity         int             `json:"plan_quantity,omitempty" validate:"omitempty,gt=0"`
	InitialOrderQuantity int             `json:"initial_order_quantity,omitempty" validate:"omitempty,gt=0"`
}

func (r *QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Mode.Validate(); err != nil {
		return err
	}

	switch r.Mode {
	case types.OrderModeCommitment:
		if r.PlanQuantity == 0 {
			return ierr.NewError("plan_quantity is required").
				WithHint("A commitment quote needs a plan quantity").
				Mark(ierr.ErrValidation)
		}
	default:
		if r.Quantity == 0 {
			return ierr.NewError("quantity is required").
				WithHint("A volume or custom quote needs a quantity").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ToSelection replays the request through the selection mutators so the
// same rules apply as for a live session
func (r *QuoteRequest) ToSelection(c *catalog.Catalog) (*selection.Selection, error) {
	s := selection.New("", c)

	var err error
	switch r.Mode {
	case types.OrderModeVolume:
		err = s.SelectTier(c, r.Quantity)
	case types.OrderModeCustom:
		err = s.SetQuantity(c, r.Quantity)
	case types.OrderModeCommitment:
		if err = s.SelectPlan(c, r.PlanQuantity); err == nil && r.InitialOrderQuantity > 0 {
			err = s.SetInitialOrderQuantity(c, r.InitialOrderQuantity)
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

type QuoteResponse struct {
	selection.Quote
	SummaryLines []string `json:"summary_lines"`
}

func NewQuoteResponse(q selection.Quote) *QuoteResponse {
	return &QuoteResponse{
		Quote:        q,
		SummaryLines: q.SummaryLines(),
	}
}
