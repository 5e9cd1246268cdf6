package api

import (
	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/logger"
	"github.com/leadradar/leadgen-api/internal/places"
	"github.com/leadradar/leadgen-api/internal/search"
	"github.com/leadradar/leadgen-api/internal/services"
	"github.com/leadradar/leadgen-api/internal/store"
	"github.com/leadradar/leadgen-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, cfg *config.Config, st store.Store, log logger.Logger) {
	// Create services
	placesClient := places.NewClient(cfg)
	searchService := search.NewService(placesClient, st, log, cfg)
	outreachService := services.NewOutreachService(st, log, cfg.OutreachSendDelay)

	// Create handlers
	leadsHandler := NewLeadsHandler(st, searchService)
	settingsHandler := NewSettingsHandler(st)
	dashboardHandler := NewDashboardHandler(st)
	outreachHandler := NewOutreachHandler(outreachService)

	RegisterRoutes(r, leadsHandler, settingsHandler, dashboardHandler, outreachHandler)
}

// RegisterRoutes attaches the handlers to the router. Split from SetupRoutes
// so tests can inject stub collaborators.
func RegisterRoutes(r *gin.Engine, leads *LeadsHandler, settings *SettingsHandler, dashboard *DashboardHandler, outreach *OutreachHandler) {
	api := r.Group("/api")
	{
		// Lead management endpoints
		api.GET("/leads", leads.GetLeads)
		api.GET("/leads/:id", leads.GetLead)
		api.POST("/leads", leads.CreateLead)
		api.PATCH("/leads/:id/status", leads.UpdateLeadStatus)
		api.POST("/leads/search", leads.SearchLeads)

		// Outreach settings
		api.GET("/message-template", settings.GetMessageTemplate)
		api.POST("/message-template", settings.UpdateMessageTemplate)
		api.GET("/speed-config", settings.GetSpeedConfig)
		api.POST("/speed-config", settings.UpdateSpeedConfig)

		// Dashboard endpoints
		api.GET("/dashboard-metrics", dashboard.GetMetrics)
		api.GET("/health", dashboard.Health)

		// Export endpoints
		api.GET("/export/csv", leads.ExportCSV)

		// Simulated WhatsApp outreach
		api.POST("/whatsapp/send", outreach.SendMessage)
	}
}
