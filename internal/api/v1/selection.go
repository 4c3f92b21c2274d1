package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letybo/ordering/internal/api/dto"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/service"
)

type SelectionHandler struct {
	service service.SelectionService
	log     *logger.Logger
}

func NewSelectionHandler(service service.SelectionService, log *logger.Logger) *SelectionHandler {
	return &SelectionHandler{service: service, log: log}
}

// CreateSelection godoc
// @Summary Start an order form session
// @Description The selection starts at the minimum tier
// @Tags Selections
// @Produce json
// @Success 201 {object} dto.SelectionResponse
// @Router /selections [post]
func (h *SelectionHandler) CreateSelection(c *gin.Context) {
	resp, err := h.service.Create(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSelection godoc
// @Summary Get a selection
// @Description Current selection with its quote
// @Tags Selections
// @Produce json
// @Param id path string true "Selection ID"
// @Success 200 {object} dto.SelectionResponse
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id} [get]
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DiscardSelection godoc
// @Summary Discard a selection
// @Tags Selections
// @Param id path string true "Selection ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id} [delete]
func (h *SelectionHandler) DiscardSelection(c *gin.Context) {
	if err := h.service.Discard(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectTier godoc
// @Summary Select a volume tier
// @Description Switches to volume pricing at the tier threshold and drops any plan
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Selection ID"
// @Param tier body dto.SelectTierRequest true "Tier threshold"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id}/tier [put]
func (h *SelectionHandler) SelectTier(c *gin.Context) {
	var req dto.SelectTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.service.SelectTier(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetQuantity godoc
// @Summary Move the quantity slider
// @Description Any step multiple within the catalog bounds; drops any plan
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Selection ID"
// @Param quantity body dto.SetQuantityRequest true "Quantity"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id}/quantity [put]
func (h *SelectionHandler) SetQuantity(c *gin.Context) {
	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.service.SetQuantity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SelectPlan godoc
// @Summary Select a commitment plan
// @Description Resets the initial order per the catalog reset policy
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Selection ID"
// @Param plan body dto.SelectPlanRequest true "Plan size"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id}/plan [put]
func (h *SelectionHandler) SelectPlan(c *gin.Context) {
	var req dto.SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.service.SelectPlan(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetInitialOrder godoc
// @Summary Set the initial order of a plan
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Selection ID"
// @Param initial_order body dto.SetInitialOrderRequest true "Initial order quantity"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /selections/{id}/initial-order [put]
func (h *SelectionHandler) SetInitialOrder(c *gin.Context) {
	var req dto.SetInitialOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.service.SetInitialOrderQuantity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func invalidRequest(err error) error {
	return ierr.WithError(err).
		WithHint("Invalid request format").
		Mark(ierr.ErrValidation)
}
