package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/store"
)

// SettingsHandler manages the outreach template and pacing configuration
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(st store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// GetMessageTemplate returns the active outreach template.
func (h *SettingsHandler) GetMessageTemplate(c *gin.Context) {
	tpl, err := h.store.ActiveMessageTemplate()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// UpdateMessageTemplate replaces the active outreach template.
func (h *SettingsHandler) UpdateMessageTemplate(c *gin.Context) {
	var insert models.InsertMessageTemplate
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.store.UpdateMessageTemplate(insert))
}

// GetSpeedConfig returns the outreach pacing configuration.
func (h *SettingsHandler) GetSpeedConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SpeedConfig())
}

// UpdateSpeedConfig replaces the outreach pacing configuration.
func (h *SettingsHandler) UpdateSpeedConfig(c *gin.Context) {
	var insert models.InsertSpeedConfig
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speed config: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.store.UpdateSpeedConfig(insert))
}
