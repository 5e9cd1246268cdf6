package models

import "time"

// MessageTemplate is an outreach message with a {NOME_DA_EMPRESA}
// placeholder. Only one template is active at a time.
type MessageTemplate struct {
	ID       string `json:"id"`
	Template string `json:"template"`
	IsActive int    `json:"isActive"`
}

// InsertMessageTemplate is the payload for replacing the active template.
type InsertMessageTemplate struct {
	Template string `json:"template" binding:"required"`
}

// SpeedConfig paces the simulated outreach sender.
type SpeedConfig struct {
	ID                string `json:"id"`
	MessagesPerMinute int    `json:"messagesPerMinute"`
	MessagesPerHour   int    `json:"messagesPerHour"`
}

// InsertSpeedConfig is the payload for updating the sender pacing.
type InsertSpeedConfig struct {
	MessagesPerMinute int `json:"messagesPerMinute" binding:"required,min=1"`
	MessagesPerHour   int `json:"messagesPerHour" binding:"required,min=1"`
}

// DashboardMetrics is the single aggregate recomputed by the store on every
// lead creation and status transition.
type DashboardMetrics struct {
	ID             string    `json:"id"`
	TotalLeads     int       `json:"totalLeads"`
	MessagesToday  int       `json:"messagesToday"`
	MessagesMonth  int       `json:"messagesMonth"`
	ConversionRate string    `json:"conversionRate"`
	Contacted      int       `json:"contacted"`
	NotContacted   int       `json:"notContacted"`
	LastUpdated    time.Time `json:"lastUpdated"`
}
