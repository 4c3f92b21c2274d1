package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/service"
)

type LoyaltyHandler struct {
	service service.LoyaltyService
	log     *logger.Logger
}

func NewLoyaltyHandler(service service.LoyaltyService, log *logger.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{service: service, log: log}
}

// GetProgress godoc
// @Summary Get loyalty progress
// @Description Places the caller's shipped vials on the loyalty ladder
// @Tags Loyalty
// @Produce json
// @Success 200 {object} dto.LoyaltyResponse
// @Failure 500 {object} ErrorResponse
// @Router /loyalty [get]
func (h *LoyaltyHandler) GetProgress(c *gin.Context) {
	resp, err := h.service.GetProgress(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
