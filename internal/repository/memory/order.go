package memory

import (
	"context"
	"strings"
	"time"

	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/types"
)

// OrderStore keeps orders in process memory. Orders are copied in and out so
// callers never share a pointer with the store.
type OrderStore struct {
	*InMemoryStore[*order.Order]
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		InMemoryStore: NewInMemoryStore[*order.Order](),
	}
}

var _ order.Repository = (*OrderStore)(nil)

func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.AssignIdentity(time.Now())

	stored := *o
	return s.InMemoryStore.Create(ctx, o.ID, &stored)
}

func (s *OrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := *o
	return &out, nil
}

func (s *OrderStore) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	if filter == nil {
		filter = types.NewOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.InMemoryStore.List(ctx, filter, orderFilterFn, orderSortFn(filter))
	if err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0, len(items))
	for _, o := range items {
		c := *o
		out = append(out, &c)
	}
	return out, nil
}

func (s *OrderStore) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	if filter == nil {
		filter = types.NewNoLimitOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return 0, err
	}
	return s.InMemoryStore.Count(ctx, filter, orderFilterFn)
}

func (s *OrderStore) SumQuantityByUser(_ context.Context, userID string) (int, error) {
	total := 0
	s.Each(func(o *order.Order) {
		if o.UserID == userID {
			total += o.Vials
		}
	})
	return total, nil
}

func orderFilterFn(_ context.Context, o *order.Order, filter interface{}) bool {
	f, ok := filter.(*types.OrderFilter)
	if !ok || f == nil {
		return true
	}
	if f.UserID != "" && o.UserID != f.UserID {
		return false
	}
	if f.Mode != nil && o.Mode != *f.Mode {
		return false
	}
	return true
}

// orderSortFn mirrors the postgres ORDER BY, with id as the tie breaker
func orderSortFn(filter *types.OrderFilter) SortFunc[*order.Order] {
	desc := strings.EqualFold(filter.GetOrder(), types.OrderDesc)
	sortBy := filter.GetSort()

	return func(a, b *order.Order) bool {
		var cmp int
		switch sortBy {
		case "vials":
			cmp = a.Vials - b.Vials
		case "total":
			cmp = a.Total.Cmp(b.Total)
		default:
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		}
		if cmp == 0 {
			cmp = strings.Compare(a.ID, b.ID)
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	}
}
