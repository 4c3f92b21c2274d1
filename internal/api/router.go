package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/letybo/ordering/internal/api/v1"
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/metrics"
	"github.com/letybo/ordering/internal/rest/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Catalog   *v1.CatalogHandler
	Selection *v1.SelectionHandler
	Order     *v1.OrderHandler
	Loyalty   *v1.LoyaltyHandler
	Support   *v1.SupportHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, m *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware(cfg.Server.AllowedOrigins),
		middleware.MetricsMiddleware(m),
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.IdentityMiddleware)
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/catalog", handlers.Catalog.GetCatalog)
	router.POST("/quotes", handlers.Catalog.Quote)

	selections := router.Group("/selections")
	{
		selections.POST("", handlers.Selection.CreateSelection)
		selections.GET("/:id", handlers.Selection.GetSelection)
		selections.DELETE("/:id", handlers.Selection.DiscardSelection)
		selections.PUT("/:id/tier", handlers.Selection.SelectTier)
		selections.PUT("/:id/quantity", handlers.Selection.SetQuantity)
		selections.PUT("/:id/plan", handlers.Selection.SelectPlan)
		selections.PUT("/:id/initial-order", handlers.Selection.SetInitialOrder)
		selections.POST("/:id/order", handlers.Order.PlaceOrder)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", handlers.Order.ListOrders)
		orders.GET("/:id", handlers.Order.GetOrder)
	}

	router.GET("/loyalty", handlers.Loyalty.GetProgress)

	support := router.Group("/support/conversations")
	{
		support.POST("", handlers.Support.StartConversation)
		support.POST("/:id/messages", handlers.Support.SendMessage)
	}
}
