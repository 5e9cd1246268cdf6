package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/leadradar/leadgen-api/internal/apperrors"
	"github.com/leadradar/leadgen-api/internal/logger"
	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/store"
)

func newOutreachFixture(t *testing.T) (*OutreachService, store.Store) {
	t.Helper()
	st := store.NewMemory()
	// Effectively unthrottled so tests stay fast.
	st.UpdateSpeedConfig(models.InsertSpeedConfig{
		MessagesPerMinute: 60000,
		MessagesPerHour:   3600000,
	})
	return NewOutreachService(st, logger.NewNop(), 0), st
}

func TestSendMessage(t *testing.T) {
	svc, st := newOutreachFixture(t)
	lead := seedLead(t, st, "Café X")

	result, err := svc.SendMessage(context.Background(), lead.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusMessageSent, result.Lead.Status)
	assert.Contains(t, result.Message, "Café X")
	assert.NotContains(t, result.Message, "{NOME_DA_EMPRESA}")
	assert.False(t, result.SentAt.IsZero())

	stored, err := st.GetLead(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusMessageSent, stored.Status)

	metrics := st.DashboardMetrics()
	assert.Equal(t, 1, metrics.MessagesToday)
}

func TestSendMessage_UnknownLead(t *testing.T) {
	svc, _ := newOutreachFixture(t)

	_, err := svc.SendMessage(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestSendMessage_CustomTemplate(t *testing.T) {
	svc, st := newOutreachFixture(t)
	lead := seedLead(t, st, "Padaria Central")
	st.UpdateMessageTemplate(models.InsertMessageTemplate{
		Template: "Oi {NOME_DA_EMPRESA}! Conheça nossa oferta, {NOME_DA_EMPRESA}.",
	})

	result, err := svc.SendMessage(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oi Padaria Central! Conheça nossa oferta, Padaria Central.", result.Message)
}

func TestSendMessage_SimulatedDelay(t *testing.T) {
	st := store.NewMemory()
	st.UpdateSpeedConfig(models.InsertSpeedConfig{
		MessagesPerMinute: 60000,
		MessagesPerHour:   3600000,
	})
	svc := NewOutreachService(st, logger.NewNop(), 50*time.Millisecond)
	lead := seedLead(t, st, "Café X")

	start := time.Now()
	_, err := svc.SendMessage(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSendMessage_ContextCancelledDuringDelay(t *testing.T) {
	st := store.NewMemory()
	st.UpdateSpeedConfig(models.InsertSpeedConfig{
		MessagesPerMinute: 60000,
		MessagesPerHour:   3600000,
	})
	svc := NewOutreachService(st, logger.NewNop(), time.Second)
	lead := seedLead(t, st, "Café X")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.SendMessage(ctx, lead.ID)
	require.Error(t, err)

	// The lead must not transition when delivery was cancelled.
	stored, err := st.GetLead(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotContacted, stored.Status)
}

func TestApplySpeedConfig_PicksStricterLimit(t *testing.T) {
	st := store.NewMemory()
	st.UpdateSpeedConfig(models.InsertSpeedConfig{
		MessagesPerMinute: 60, // 1/s
		MessagesPerHour:   360,
	})
	svc := NewOutreachService(st, logger.NewNop(), 0)

	svc.applySpeedConfig()

	// 360/hour = 0.1/s is stricter than 60/minute = 1/s.
	assert.InDelta(t, 0.1, float64(svc.limiter.Limit()), 1e-9)
}

func TestApplySpeedConfig_ZeroCapsMeanUnthrottled(t *testing.T) {
	st := store.NewMemory()
	svc := NewOutreachService(st, logger.NewNop(), 0)
	svc.applySpeedConfig()

	// Default caps are 3/minute and 30/hour; the hourly cap is stricter.
	assert.InDelta(t, 30.0/3600.0, float64(svc.limiter.Limit()), 1e-9)

	st.UpdateSpeedConfig(models.InsertSpeedConfig{})
	svc.applySpeedConfig()

	assert.Equal(t, rate.Inf, svc.limiter.Limit())
}
