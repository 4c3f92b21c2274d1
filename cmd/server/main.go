package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/letybo/ordering/docs/swagger"
	"github.com/letybo/ordering/internal/api"
	v1 "github.com/letybo/ordering/internal/api/v1"
	"github.com/letybo/ordering/internal/cache"
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/metrics"
	"github.com/letybo/ordering/internal/postgres"
	"github.com/letybo/ordering/internal/repository"
	"github.com/letybo/ordering/internal/sentry"
	"github.com/letybo/ordering/internal/service"
	"github.com/letybo/ordering/internal/support"
	"github.com/letybo/ordering/internal/types"
	"github.com/letybo/ordering/internal/validator"
	"go.uber.org/fx"
)

//go:generate swag init -g cmd/server/main.go -d ../.. -o ../../docs/swagger --parseInternal

// @title Letybo Ordering API
// @version 1.0
// @description Vial pricing, order form sessions, orders, loyalty progress and support chat
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Metrics
			metrics.New,

			// Cache
			fx.Annotate(cache.NewInMemoryCache, fx.As(new(cache.Cache))),

			// Postgres
			provideDB,

			// Repositories
			provideOrderRepository,

			// Price book and loyalty ladder
			service.LoadCatalog,
			service.NewLoyaltyTracker,

			// Support assistant
			support.NewClient,
		),
		sentry.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCatalogService,
			service.NewSelectionService,
			provideSelectionCheckout,
			service.NewOrderService,
			service.NewLoyaltyService,
			service.NewSupportService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

// provideSelectionCheckout lets order placement share the selection locks
func provideSelectionCheckout(s service.SelectionService) service.SelectionCheckout {
	return s
}

// provideDB opens postgres only when it backs the order store
func provideDB(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) (*postgres.DB, error) {
	if cfg.Store.Provider != types.StoreProviderPostgres {
		return nil, nil
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing postgres connection")
			db.Close()
			return nil
		},
	})
	return db, nil
}

func provideOrderRepository(cfg *config.Configuration, db *postgres.DB, log *logger.Logger) (order.Repository, error) {
	return repository.NewOrderRepository(repository.RepositoryParams{
		Config: cfg,
		DB:     db,
		Logger: log,
	})
}

func provideHandlers(
	logger *logger.Logger,
	c *catalog.Catalog,
	catalogService service.CatalogService,
	selectionService service.SelectionService,
	orderService service.OrderService,
	loyaltyService service.LoyaltyService,
	supportService service.SupportService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(c, logger),
		Catalog:   v1.NewCatalogHandler(catalogService, logger),
		Selection: v1.NewSelectionHandler(selectionService, logger),
		Order:     v1.NewOrderHandler(orderService, logger),
		Loyalty:   v1.NewLoyaltyHandler(loyaltyService, logger),
		Support:   v1.NewSupportHandler(supportService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) error {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}
	if err := mode.Validate(); err != nil {
		return err
	}
	if mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
	return nil
}
