package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letybo/ordering/internal/api/dto"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

// GetCatalog godoc
// @Summary Get the price book
// @Description Tiers, commitment plans and the quantities the slider can select
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetCatalog(c.Request.Context()))
}

// Quote godoc
// @Summary Quote an order
// @Description Price an order form state without starting a session
// @Tags Catalog
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Order form state"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotes [post]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
