package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letybo/ordering/internal/api/dto"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/service"
)

type SupportHandler struct {
	service service.SupportService
	log     *logger.Logger
}

func NewSupportHandler(service service.SupportService, log *logger.Logger) *SupportHandler {
	return &SupportHandler{service: service, log: log}
}

// StartConversation godoc
// @Summary Start a support conversation
// @Tags Support
// @Produce json
// @Success 201 {object} dto.StartConversationResponse
// @Failure 409 {object} ErrorResponse
// @Router /support/conversations [post]
func (h *SupportHandler) StartConversation(c *gin.Context) {
	resp, err := h.service.StartConversation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SendMessage godoc
// @Summary Send a support message
// @Description Blocks until the assistant replies or the run fails
// @Tags Support
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param message body dto.SendMessageRequest true "Message"
// @Success 200 {object} dto.SendMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /support/conversations/{id}/messages [post]
func (h *SupportHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SendMessage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
