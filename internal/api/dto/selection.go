package dto

import (
	"github.com/letybo/ordering/internal/domain/selection"
)

type SelectTierRequest struct {
	MinQuantity int `json:"min_quantity" binding:"required" validate:"required,gt=0"`
}

func (r *SelectTierRequest) Validate() error {
	return validate(r)
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" validate:"required,gt=0"`
}

func (r *SetQuantityRequest) Validate() error {
	return validate(r)
}

type SelectPlanRequest struct {
	PlanQuantity int `json:"plan_quantity" binding:"required" validate:"required,gt=0"`
}

func (r *SelectPlanRequest) Validate() error {
	return validate(r)
}

type SetInitialOrderRequest struct {
	Quantity int `json:"quantity" binding:"required" validate:"required,gt=0"`
}

func (r *SetInitialOrderRequest) Validate() error {
	return validate(r)
}

// SelectionResponse is the selection with its current quote
type SelectionResponse struct {
	Selection *selection.Selection `json:"selection"`
	Quote     *QuoteResponse       `json:"quote"`
}
