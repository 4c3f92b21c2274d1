package order

import (
	"context"

	"github.com/letybo/ordering/internal/types"
)

// Repository is the order store. Create assigns identity and timestamps and
// fails with a validation error or a database error the caller may retry.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter *types.OrderFilter) ([]*Order, error)
	Count(ctx context.Context, filter *types.OrderFilter) (int, error)
	SumQuantityByUser(ctx context.Context, userID string) (int, error)
}
