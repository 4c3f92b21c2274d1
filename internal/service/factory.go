package service

import (
	"github.com/letybo/ordering/internal/cache"
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/loyalty"
	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/metrics"
	"github.com/letybo/ordering/internal/sentry"
	"github.com/letybo/ordering/internal/support"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	Catalog *catalog.Catalog
	Tracker *loyalty.Tracker
	Cache   cache.Cache
	Metrics *metrics.Collector
	Sentry  *sentry.Service

	// Repositories
	OrderRepo order.Repository

	// Support assistant
	SupportClient support.Client
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	catalog *catalog.Catalog,
	tracker *loyalty.Tracker,
	cache cache.Cache,
	metrics *metrics.Collector,
	sentry *sentry.Service,
	orderRepo order.Repository,
	supportClient support.Client,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        config,
		Catalog:       catalog,
		Tracker:       tracker,
		Cache:         cache,
		Metrics:       metrics,
		Sentry:        sentry,
		OrderRepo:     orderRepo,
		SupportClient: supportClient,
	}
}
