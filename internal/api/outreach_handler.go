package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/services"
)

// MessageSender delivers an outreach message to a stored lead.
type MessageSender interface {
	SendMessage(ctx context.Context, leadID string) (services.SendResult, error)
}

// OutreachHandler triggers simulated WhatsApp sends
type OutreachHandler struct {
	sender MessageSender
}

// NewOutreachHandler creates a new outreach handler
func NewOutreachHandler(sender MessageSender) *OutreachHandler {
	return &OutreachHandler{sender: sender}
}

type sendMessageRequest struct {
	LeadID string `json:"leadId" binding:"required"`
}

// SendMessage delivers the active template to a lead.
func (h *OutreachHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid send request: " + err.Error()})
		return
	}

	result, err := h.sender.SendMessage(c.Request.Context(), req.LeadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"lead":    result.Lead,
		"message": result.Message,
		"sentAt":  result.SentAt,
	})
}
