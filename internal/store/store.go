package store

import (
	"github.com/leadradar/leadgen-api/internal/models"
)

// Store defines the lead repository boundary. Handlers and services receive
// a Store handle instead of reaching for package-level state, which keeps
// them testable in isolation.
type Store interface {
	// Lead operations
	ListLeads() []models.Lead
	GetLead(id string) (models.Lead, error)
	CreateLead(insert models.InsertLead) models.Lead
	UpdateLeadStatus(id, status string) (models.Lead, error)
	SearchLeads(businessType, location string) []models.Lead

	// Message template operations
	ActiveMessageTemplate() (models.MessageTemplate, error)
	UpdateMessageTemplate(insert models.InsertMessageTemplate) models.MessageTemplate

	// Speed config operations
	SpeedConfig() models.SpeedConfig
	UpdateSpeedConfig(insert models.InsertSpeedConfig) models.SpeedConfig

	// Dashboard metrics
	DashboardMetrics() models.DashboardMetrics
}
