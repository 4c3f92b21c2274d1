package service

import (
	"context"

	"github.com/letybo/ordering/internal/api/dto"
)

// CatalogService serves the price book and stateless quotes
type CatalogService interface {
	GetCatalog(ctx context.Context) *dto.CatalogResponse
	Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) GetCatalog(_ context.Context) *dto.CatalogResponse {
	return dto.NewCatalogResponse(s.Catalog)
}

func (s *catalogService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sel, err := req.ToSelection(s.Catalog)
	if err != nil {
		s.Metrics.SelectionRejections.WithLabelValues("quote").Inc()
		return nil, err
	}

	q := sel.Quote(s.Catalog)
	s.Metrics.QuotesTotal.WithLabelValues(string(q.Mode), string(q.Strategy)).Inc()
	s.Logger.WithContext(ctx).Debugw("quoted order",
		"mode", q.Mode,
		"quantity", q.Quantity,
		"price_per_unit", q.PricePerUnit,
		"total", q.Total,
	)
	return dto.NewQuoteResponse(q), nil
}
