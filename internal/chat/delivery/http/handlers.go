package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"axle-assist/internal/chat"
)

// genericFailureMsg hides routing and upstream detail from the chat client.
const genericFailureMsg = "Something went wrong. Please try again."

// ProcessMessage handles one chat turn
// @Summary Process a chat message
// @Description Classifies the user's text and returns one of the four typed chat responses
// @Tags chat
// @Accept json
// @Produce json
// @Param request body aiRequest true "Chat turn"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/ai [post]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAIRequest(c)
	if err != nil {
		if errors.Is(err, chat.ErrMissingText) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: chat.ErrMissingText.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.uc.Respond(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ProcessMessage: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: genericFailureMsg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchLoadsPassthrough relays a raw load search to the upstream API
// @Summary Legacy load search passthrough
// @Description Forwards the raw query string to the upstream transaction listing and relays the response verbatim
// @Tags loads
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorResponse
// @Router /api/search-loads [get]
func (h *handler) SearchLoadsPassthrough(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := h.axle.Passthrough(ctx, c.Request.URL.RawQuery)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.SearchLoadsPassthrough: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: genericFailureMsg})
		return
	}

	contentType := raw.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(raw.StatusCode, contentType, raw.Body)
}
