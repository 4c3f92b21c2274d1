package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/service"
	"github.com/letybo/ordering/internal/types"
	"github.com/samber/lo"
)

type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

func NewOrderHandler(service service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, log: log}
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Stores the selection's current quote as an order attributed to the caller and ends the session
// @Tags Orders
// @Produce json
// @Param id path string true "Selection ID"
// @Param X-User-ID header string false "Caller identity"
// @Param X-User-Email header string false "Caller contact address"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /selections/{id}/order [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	resp, err := h.service.PlaceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetOrder godoc
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	resp, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOrders godoc
// @Summary List the caller's orders
// @Tags Orders
// @Produce json
// @Param filter query types.OrderFilter false "Filter"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := types.NewOrderFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if filter.GetLimit() == 0 {
		filter.Limit = lo.ToPtr(types.FILTER_DEFAULT_LIMIT)
	}

	resp, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
