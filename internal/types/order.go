package types

import (
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/samber/lo"
)

// OrderFilter narrows an order listing. UserID is filled from the caller's identity.
type OrderFilter struct {
	*QueryFilter

	UserID string     `json:"user_id,omitempty" form:"-"`
	Mode   *OrderMode `json:"mode,omitempty" form:"mode"`
}

var orderSortColumns = []string{"created_at", "vials", "total"}

func NewOrderFilter() *OrderFilter {
	return &OrderFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitOrderFilter() *OrderFilter {
	return &OrderFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *OrderFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
		if !lo.Contains(orderSortColumns, f.GetSort()) {
			return ierr.NewError("invalid sort field").
				WithHintf("Orders can be sorted by %v", orderSortColumns).
				Mark(ierr.ErrValidation)
		}
	}
	if f.Mode != nil {
		if err := f.Mode.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *OrderFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *OrderFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return 0
	}
	return f.QueryFilter.GetOffset()
}

func (f *OrderFilter) GetSort() string {
	if f.QueryFilter == nil {
		return FILTER_DEFAULT_SORT
	}
	return f.QueryFilter.GetSort()
}

func (f *OrderFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return FILTER_DEFAULT_ORDER
	}
	return f.QueryFilter.GetOrder()
}

func (f *OrderFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return false
	}
	return f.QueryFilter.IsUnlimited()
}
