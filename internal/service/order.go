package service

import (
	"context"

	"github.com/letybo/ordering/internal/api/dto"
	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/domain/selection"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/idempotency"
	"github.com/letybo/ordering/internal/sentry"
	"github.com/letybo/ordering/internal/types"
	"github.com/sourcegraph/conc/pool"
)

type OrderService interface {
	// PlaceOrder turns the session's current selection into a stored order
	// and ends the session
	PlaceOrder(ctx context.Context, selectionID string) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error)
}

type orderService struct {
	ServiceParams
	selections SelectionCheckout
	keys       *idempotency.Generator
}

func NewOrderService(params ServiceParams, selections SelectionCheckout) OrderService {
	return &orderService{
		ServiceParams: params,
		selections:    selections,
		keys:          idempotency.NewGenerator(),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, selectionID string) (*dto.OrderResponse, error) {
	log := s.Logger.WithContext(ctx)

	var resp *dto.OrderResponse
	err := s.selections.Checkout(ctx, selectionID, func(sel *selection.Selection) error {
		if err := sel.Validate(s.Catalog); err != nil {
			return err
		}

		q := sel.Quote(s.Catalog)
		o := order.FromQuote(ctx, q)
		o.ID = s.placementID(selectionID, o.UserID, q)

		span, spanCtx := s.Sentry.StartDBSpan(ctx, "orders.create", map[string]interface{}{
			"mode":  o.Mode,
			"vials": o.Vials,
		})
		err := s.OrderRepo.Create(spanCtx, o)
		sentry.FinishSpan(span, err)
		if ierr.IsAlreadyExists(err) {
			existing, err := s.replayPlacement(ctx, selectionID, o)
			if err != nil {
				return err
			}
			resp = dto.NewOrderResponse(existing)
			return nil
		}
		if err != nil {
			log.Errorw("failed to place order",
				"selection_id", selectionID,
				"user_id", o.UserID,
				"error", err,
			)
			return err
		}

		s.Metrics.OrdersPlaced.WithLabelValues(string(o.Mode)).Inc()
		s.Metrics.VialsOrdered.WithLabelValues(string(o.Mode)).Add(float64(o.Vials))
		s.Sentry.AddBreadcrumb("order", "order placed", map[string]interface{}{
			"order_id": o.ID,
			"vials":    o.Vials,
		})

		log.Infow("order placed",
			"order_id", o.ID,
			"order_number", o.OrderNumber,
			"user_id", o.UserID,
			"mode", o.Mode,
			"vials", o.Vials,
			"total", o.Total,
		)
		resp = dto.NewOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// placementID keys the order by its session and the quote it charges, so a
// retried placement whose first response was lost maps onto the stored order
// while a changed selection never does
func (s *orderService) placementID(selectionID, userID string, q selection.Quote) string {
	return s.keys.GenerateID(types.UUID_PREFIX_ORDER, idempotency.ScopeOrderPlacement, map[string]interface{}{
		"selection_id":   selectionID,
		"user_id":        userID,
		"mode":           q.Mode,
		"quantity":       q.Quantity,
		"plan_quantity":  q.PlanQuantity,
		"price_per_unit": q.PricePerUnit.String(),
	})
}

// replayPlacement returns the stored order only when it charges exactly what
// the retried placement would
func (s *orderService) replayPlacement(ctx context.Context, selectionID string, o *order.Order) (*order.Order, error) {
	existing, err := s.OrderRepo.Get(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if !samePlacement(existing, o) {
		return nil, ierr.NewError("order id already used by a different placement").
			WithHint("The order could not be placed").
			WithReportableDetails(map[string]any{
				"selection_id": selectionID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.Logger.WithContext(ctx).Infow("order already placed for selection",
		"order_id", existing.ID,
		"selection_id", selectionID,
	)
	return existing, nil
}

func samePlacement(a, b *order.Order) bool {
	return a.UserID == b.UserID &&
		a.Mode == b.Mode &&
		a.Vials == b.Vials &&
		a.PlanVials == b.PlanVials &&
		a.PricePerVial.Equal(b.PricePerVial) &&
		a.Total.Equal(b.Total)
}

// GetOrder only returns orders of the calling user
func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != types.GetUserIDOrDefault(ctx) {
		return nil, notFoundOrder(id)
	}
	return dto.NewOrderResponse(o), nil
}

func (s *orderService) ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error) {
	if filter == nil {
		filter = types.NewOrderFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	filter.UserID = types.GetUserIDOrDefault(ctx)

	var (
		orders []*order.Order
		total  int
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		orders, err = s.OrderRepo.List(ctx, filter)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = s.OrderRepo.Count(ctx, filter)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	items := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.NewOrderResponse(o))
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}
