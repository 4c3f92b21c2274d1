package service

import ierr "github.com/letybo/ordering/internal/errors"

func notFoundOrder(id string) error {
	return ierr.NewError("order not found").
		WithHintf("Order %s was not found", id).
		WithReportableDetails(map[string]any{
			"order_id": id,
		}).
		Mark(ierr.ErrNotFound)
}

func notFoundSelection(id string) error {
	return ierr.NewError("selection not found").
		WithHintf("Selection %s does not exist or has expired", id).
		WithReportableDetails(map[string]any{
			"selection_id": id,
		}).
		Mark(ierr.ErrNotFound)
}
