package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"axle-assist/internal/chat"
)

// processAIRequest binds and validates the POST /api/ai body.
func (h *handler) processAIRequest(c *gin.Context) (chat.RespondInput, error) {
	var req aiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return chat.RespondInput{}, chat.ErrMissingText
	}
	if strings.TrimSpace(req.Text) == "" {
		return chat.RespondInput{}, chat.ErrMissingText
	}

	return chat.RespondInput{
		Text:    req.Text,
		History: req.History,
		Lang:    req.Lang.Normalize(),
	}, nil
}
