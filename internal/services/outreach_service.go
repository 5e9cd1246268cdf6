package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/leadradar/leadgen-api/internal/logger"
	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/store"
)

// companyPlaceholder is substituted with the lead's name in outreach
// templates.
const companyPlaceholder = "{NOME_DA_EMPRESA}"

// OutreachService simulates WhatsApp message delivery. Sends are paced by the
// stored speed config and take a configurable simulated-delivery delay.
type OutreachService struct {
	store     store.Store
	log       logger.Logger
	limiter   *rate.Limiter
	sendDelay time.Duration
}

// NewOutreachService creates an OutreachService with the given simulated
// delivery delay.
func NewOutreachService(st store.Store, log logger.Logger, sendDelay time.Duration) *OutreachService {
	return &OutreachService{
		store:     st,
		log:       log,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		sendDelay: sendDelay,
	}
}

// SendResult describes a simulated delivery.
type SendResult struct {
	Lead    models.Lead `json:"lead"`
	Message string      `json:"message"`
	SentAt  time.Time   `json:"sentAt"`
}

// SendMessage delivers the active template to a lead and transitions it to
// Mensagem Enviada. The speed config is re-read on every send so dashboard
// changes apply without a restart.
func (s *OutreachService) SendMessage(ctx context.Context, leadID string) (SendResult, error) {
	lead, err := s.store.GetLead(leadID)
	if err != nil {
		return SendResult{}, err
	}

	tpl, err := s.store.ActiveMessageTemplate()
	if err != nil {
		return SendResult{}, err
	}

	s.applySpeedConfig()
	if err := s.limiter.Wait(ctx); err != nil {
		return SendResult{}, err
	}

	message := strings.ReplaceAll(tpl.Template, companyPlaceholder, lead.Name)

	// Simulated delivery window.
	select {
	case <-time.After(s.sendDelay):
	case <-ctx.Done():
		return SendResult{}, ctx.Err()
	}

	updated, err := s.store.UpdateLeadStatus(leadID, models.StatusMessageSent)
	if err != nil {
		return SendResult{}, err
	}

	s.log.Info("outreach message sent",
		zap.String("leadId", updated.ID),
		zap.String("name", updated.Name),
	)

	return SendResult{
		Lead:    updated,
		Message: message,
		SentAt:  time.Now(),
	}, nil
}

// applySpeedConfig syncs the limiter with the stored pacing. The per-minute
// and per-hour caps are combined by taking the stricter of the two.
func (s *OutreachService) applySpeedConfig() {
	cfg := s.store.SpeedConfig()

	perMinute := rate.Limit(float64(cfg.MessagesPerMinute) / 60.0)
	perHour := rate.Limit(float64(cfg.MessagesPerHour) / 3600.0)

	limit := perMinute
	if perHour > 0 && perHour < limit {
		limit = perHour
	}
	if limit <= 0 {
		limit = rate.Inf
	}
	s.limiter.SetLimit(limit)
}
