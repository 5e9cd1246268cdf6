package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/store"
)

// DashboardHandler serves aggregate metrics and liveness
type DashboardHandler struct {
	store store.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(st store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// GetMetrics returns the dashboard aggregates.
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.DashboardMetrics())
}

// Health is the liveness probe.
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}
