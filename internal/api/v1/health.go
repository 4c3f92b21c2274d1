package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/logger"
)

type HealthHandler struct {
	catalog *catalog.Catalog
	logger  *logger.Logger
}

func NewHealthHandler(
	catalog *catalog.Catalog,
	logger *logger.Logger,
) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// @Summary Health check
// @Description Reports that the service is up with a loaded catalog
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"strategy": string(h.catalog.PricingStrategy),
	})
}
