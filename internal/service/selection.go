package service

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/letybo/ordering/internal/api/dto"
	"github.com/letybo/ordering/internal/cache"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/selection"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
)

// SelectionService owns the order form state of each session. Selections
// live in the cache and expire after cache.selection_ttl of inactivity.
type SelectionService interface {
	Create(ctx context.Context) (*dto.SelectionResponse, error)
	Get(ctx context.Context, id string) (*dto.SelectionResponse, error)
	SelectTier(ctx context.Context, id string, req *dto.SelectTierRequest) (*dto.SelectionResponse, error)
	SetQuantity(ctx context.Context, id string, req *dto.SetQuantityRequest) (*dto.SelectionResponse, error)
	SelectPlan(ctx context.Context, id string, req *dto.SelectPlanRequest) (*dto.SelectionResponse, error)
	SetInitialOrderQuantity(ctx context.Context, id string, req *dto.SetInitialOrderRequest) (*dto.SelectionResponse, error)
	Discard(ctx context.Context, id string) error

	SelectionCheckout
}

// SelectionCheckout hands a selection to order placement. place runs under
// the same lock as selection changes and the selection is removed only when
// place succeeds.
type SelectionCheckout interface {
	Checkout(ctx context.Context, id string, place func(*selection.Selection) error) error
}

const selectionLockStripes = 64

type selectionService struct {
	ServiceParams

	// locks serialize read-modify-write of a cached selection; ids hash onto
	// a fixed set of stripes
	locks [selectionLockStripes]sync.Mutex
}

func NewSelectionService(params ServiceParams) SelectionService {
	return &selectionService{ServiceParams: params}
}

func selectionKey(id string) string {
	return cache.GenerateKey(cache.PrefixSelection, id)
}

func (s *selectionService) Create(ctx context.Context) (*dto.SelectionResponse, error) {
	sel := selection.New(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SELECTION), s.Catalog)
	sel.UserID = types.GetUserIDOrDefault(ctx)
	s.store(ctx, sel)

	s.Logger.WithContext(ctx).Debugw("created selection", "selection_id", sel.ID)
	return s.respond(sel), nil
}

func (s *selectionService) Get(ctx context.Context, id string) (*dto.SelectionResponse, error) {
	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(sel), nil
}

func (s *selectionService) SelectTier(ctx context.Context, id string, req *dto.SelectTierRequest) (*dto.SelectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "select_tier", func(sel *selection.Selection, c *catalog.Catalog) error {
		return sel.SelectTier(c, req.MinQuantity)
	})
}

func (s *selectionService) SetQuantity(ctx context.Context, id string, req *dto.SetQuantityRequest) (*dto.SelectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "set_quantity", func(sel *selection.Selection, c *catalog.Catalog) error {
		return sel.SetQuantity(c, req.Quantity)
	})
}

func (s *selectionService) SelectPlan(ctx context.Context, id string, req *dto.SelectPlanRequest) (*dto.SelectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "select_plan", func(sel *selection.Selection, c *catalog.Catalog) error {
		return sel.SelectPlan(c, req.PlanQuantity)
	})
}

func (s *selectionService) SetInitialOrderQuantity(ctx context.Context, id string, req *dto.SetInitialOrderRequest) (*dto.SelectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "set_initial_order", func(sel *selection.Selection, c *catalog.Catalog) error {
		return sel.SetInitialOrderQuantity(c, req.Quantity)
	})
}

func (s *selectionService) Discard(ctx context.Context, id string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	s.Cache.Delete(ctx, selectionKey(id))
	return nil
}

func (s *selectionService) Checkout(ctx context.Context, id string, place func(*selection.Selection) error) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sel, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := place(sel); err != nil {
		return err
	}

	s.Cache.Delete(ctx, selectionKey(id))
	s.Logger.WithContext(ctx).Debugw("selection checked out", "selection_id", id)
	return nil
}

func (s *selectionService) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%selectionLockStripes]
}

// mutate applies fn to a copy and stores it only when fn succeeds, so a
// rejected change leaves the cached selection as it was
func (s *selectionService) mutate(ctx context.Context, id, operation string, fn func(*selection.Selection, *catalog.Catalog) error) (*dto.SelectionResponse, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sel, s.Catalog); err != nil {
		s.Metrics.SelectionRejections.WithLabelValues(operation).Inc()
		s.Logger.WithContext(ctx).Debugw("selection change rejected",
			"selection_id", id,
			"operation", operation,
			"error", err,
		)
		return nil, err
	}

	s.store(ctx, sel)
	return s.respond(sel), nil
}

// load returns a copy of the cached selection. Selections of other users
// are reported as missing.
func (s *selectionService) load(ctx context.Context, id string) (*selection.Selection, error) {
	v, ok := s.Cache.Get(ctx, selectionKey(id))
	if !ok {
		return nil, notFoundSelection(id)
	}

	sel, ok := v.(*selection.Selection)
	if !ok {
		return nil, ierr.NewError("cached selection has unexpected type").
			Mark(ierr.ErrSystem)
	}
	if sel.UserID != types.GetUserIDOrDefault(ctx) {
		return nil, notFoundSelection(id)
	}
	return sel.Clone(), nil
}

func (s *selectionService) store(ctx context.Context, sel *selection.Selection) {
	s.Cache.Set(ctx, selectionKey(sel.ID), sel.Clone(), s.Config.Cache.SelectionTTL)
}

func (s *selectionService) respond(sel *selection.Selection) *dto.SelectionResponse {
	q := sel.Quote(s.Catalog)
	s.Metrics.QuotesTotal.WithLabelValues(string(q.Mode), string(q.Strategy)).Inc()
	return &dto.SelectionResponse{
		Selection: sel,
		Quote:     dto.NewQuoteResponse(q),
	}
}
