package types

import (
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/samber/lo"
)

// PricingStrategy names how a catalog turns a quantity into a unit price
type PricingStrategy string

const (
	// PricingStrategyTiered picks the tier with the largest threshold at or below the quantity
	PricingStrategyTiered PricingStrategy = "TIERED"
	// PricingStrategyLinear interpolates between the curve end points
	PricingStrategyLinear PricingStrategy = "LINEAR"
)

func (s PricingStrategy) String() string {
	return string(s)
}

func (s PricingStrategy) Validate() error {
	allowed := []PricingStrategy{PricingStrategyTiered, PricingStrategyLinear}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid pricing strategy").
			WithHintf("Pricing strategy must be %s or %s", PricingStrategyTiered, PricingStrategyLinear).
			WithReportableDetails(map[string]any{
				"strategy": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// OrderMode is how the customer arrived at the current quantity
type OrderMode string

const (
	// OrderModeVolume is a click on one of the listed tiers
	OrderModeVolume OrderMode = "VOLUME"
	// OrderModeCommitment is a multi-month plan with an initial order
	OrderModeCommitment OrderMode = "COMMITMENT"
	// OrderModeCustom is a free quantity picked on the slider
	OrderModeCustom OrderMode = "CUSTOM"
)

func (m OrderMode) String() string {
	return string(m)
}

func (m OrderMode) Validate() error {
	allowed := []OrderMode{OrderModeVolume, OrderModeCommitment, OrderModeCustom}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid order mode").
			WithHint("Order mode must be VOLUME, COMMITMENT or CUSTOM").
			WithReportableDetails(map[string]any{
				"mode": m,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PlanResetPolicy decides where the initial order lands after a plan change
type PlanResetPolicy string

const (
	// PlanResetMinimum resets the initial order to the catalog minimum
	PlanResetMinimum PlanResetPolicy = "MINIMUM"
	// PlanResetPlanQuantity resets the initial order to the whole plan
	PlanResetPlanQuantity PlanResetPolicy = "PLAN_QUANTITY"
)

func (p PlanResetPolicy) Validate() error {
	allowed := []PlanResetPolicy{PlanResetMinimum, PlanResetPlanQuantity}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid plan reset policy").
			WithHintf("Plan reset policy must be %s or %s", PlanResetMinimum, PlanResetPlanQuantity).
			Mark(ierr.ErrValidation)
	}
	return nil
}
