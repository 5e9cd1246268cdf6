package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadradar/leadgen-api/internal/apperrors"
	"github.com/leadradar/leadgen-api/internal/models"
)

const defaultTemplate = "Olá! Somos uma empresa especializada em soluções digitais para negócios como o {NOME_DA_EMPRESA}. " +
	"Gostaria de agendar uma conversa rápida para apresentar como podemos ajudar a aumentar suas vendas? Sem compromisso! 😊"

// Memory is a volatile in-memory Store. All data is lost on restart. Writes
// are serialized by a single mutex so concurrent requests never lose metric
// updates.
type Memory struct {
	mu        sync.RWMutex
	leads     map[string]models.Lead
	templates map[string]models.MessageTemplate
	speed     models.SpeedConfig
	metrics   models.DashboardMetrics
	now       func() time.Time
}

// NewMemory creates a Memory store seeded with the default message
// template, speed config and zeroed dashboard metrics.
func NewMemory() *Memory {
	m := &Memory{
		leads:     make(map[string]models.Lead),
		templates: make(map[string]models.MessageTemplate),
		now:       time.Now,
	}

	m.speed = models.SpeedConfig{
		ID:                uuid.NewString(),
		MessagesPerMinute: 3,
		MessagesPerHour:   30,
	}

	m.metrics = models.DashboardMetrics{
		ID:             uuid.NewString(),
		ConversionRate: "0%",
		LastUpdated:    m.now(),
	}

	templateID := uuid.NewString()
	m.templates[templateID] = models.MessageTemplate{
		ID:       templateID,
		Template: defaultTemplate,
		IsActive: 1,
	}

	return m
}

// ListLeads returns all leads, newest first.
func (m *Memory) ListLeads() []models.Lead {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedLeadsLocked()
}

// GetLead returns the lead with the given id.
func (m *Memory) GetLead(id string) (models.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lead, ok := m.leads[id]
	if !ok {
		return models.Lead{}, apperrors.NotFound(fmt.Sprintf("lead %s not found", id), nil)
	}
	return lead, nil
}

// CreateLead stores a new lead and bumps the dashboard aggregates.
func (m *Memory) CreateLead(insert models.InsertLead) models.Lead {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := insert.Status
	if status == "" {
		status = models.StatusNotContacted
	}

	lead := models.Lead{
		ID:                 uuid.NewString(),
		Name:               insert.Name,
		Address:            insert.Address,
		Phone:              insert.Phone,
		Email:              insert.Email,
		Status:             status,
		DateAdded:          m.now(),
		BusinessType:       insert.BusinessType,
		Location:           insert.Location,
		Website:            insert.Website,
		Rating:             insert.Rating,
		UserRatingsTotal:   insert.UserRatingsTotal,
		LeadScore:          insert.LeadScore,
		LeadScoreBreakdown: insert.LeadScoreBreakdown,
		LeadCategory:       insert.LeadCategory,
	}
	m.leads[lead.ID] = lead

	m.metrics.TotalLeads++
	m.metrics.NotContacted++
	m.recomputeMetricsLocked()

	return lead
}

// UpdateLeadStatus transitions a lead and adjusts the dashboard aggregates
// for the Não Contatado -> Mensagem Enviada -> Já Contatado flow. Unknown
// ids yield a NOT_FOUND error.
func (m *Memory) UpdateLeadStatus(id, status string) (models.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lead, ok := m.leads[id]
	if !ok {
		return models.Lead{}, apperrors.NotFound(fmt.Sprintf("lead %s not found", id), nil)
	}

	oldStatus := lead.Status
	lead.Status = status
	m.leads[id] = lead

	if oldStatus == models.StatusNotContacted && status == models.StatusMessageSent {
		if m.metrics.NotContacted > 0 {
			m.metrics.NotContacted--
		}
		m.metrics.MessagesToday++
		m.metrics.MessagesMonth++
	} else if oldStatus == models.StatusMessageSent && status == models.StatusContacted {
		m.metrics.Contacted++
	}
	m.recomputeMetricsLocked()

	return lead, nil
}

// SearchLeads returns stored leads whose business type and location contain
// the given fragments, case-insensitively. Empty fragments match anything.
func (m *Memory) SearchLeads(businessType, location string) []models.Lead {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Lead, 0)
	for _, lead := range m.sortedLeadsLocked() {
		if businessType != "" && !strings.Contains(strings.ToLower(lead.BusinessType), strings.ToLower(businessType)) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(lead.Location), strings.ToLower(location)) {
			continue
		}
		matched = append(matched, lead)
	}
	return matched
}

// ActiveMessageTemplate returns the currently active outreach template.
func (m *Memory) ActiveMessageTemplate() (models.MessageTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tpl := range m.templates {
		if tpl.IsActive == 1 {
			return tpl, nil
		}
	}
	return models.MessageTemplate{}, apperrors.NotFound("no active message template", nil)
}

// UpdateMessageTemplate stores a new template and deactivates all previous
// ones.
func (m *Memory) UpdateMessageTemplate(insert models.InsertMessageTemplate) models.MessageTemplate {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, tpl := range m.templates {
		tpl.IsActive = 0
		m.templates[id] = tpl
	}

	tpl := models.MessageTemplate{
		ID:       uuid.NewString(),
		Template: insert.Template,
		IsActive: 1,
	}
	m.templates[tpl.ID] = tpl
	return tpl
}

// SpeedConfig returns the outreach pacing configuration.
func (m *Memory) SpeedConfig() models.SpeedConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.speed
}

// UpdateSpeedConfig replaces the outreach pacing configuration.
func (m *Memory) UpdateSpeedConfig(insert models.InsertSpeedConfig) models.SpeedConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.speed.MessagesPerMinute = insert.MessagesPerMinute
	m.speed.MessagesPerHour = insert.MessagesPerHour
	return m.speed
}

// DashboardMetrics returns the current aggregate snapshot.
func (m *Memory) DashboardMetrics() models.DashboardMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metrics
}

// recomputeMetricsLocked refreshes the derived fields. Callers must hold
// the write lock.
func (m *Memory) recomputeMetricsLocked() {
	m.metrics.LastUpdated = m.now()
	if m.metrics.Contacted > 0 && m.metrics.TotalLeads > 0 {
		rate := float64(m.metrics.Contacted) / float64(m.metrics.TotalLeads) * 100
		m.metrics.ConversionRate = fmt.Sprintf("%.1f%%", rate)
	}
}

func (m *Memory) sortedLeadsLocked() []models.Lead {
	leads := make([]models.Lead, 0, len(m.leads))
	for _, lead := range m.leads {
		leads = append(leads, lead)
	}
	sort.Slice(leads, func(i, j int) bool {
		if leads[i].DateAdded.Equal(leads[j].DateAdded) {
			return leads[i].ID < leads[j].ID
		}
		return leads[i].DateAdded.After(leads[j].DateAdded)
	})
	return leads
}
