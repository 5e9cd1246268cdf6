package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadradar/leadgen-api/internal/apperrors"
	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/services"
)

func TestGetMetrics(t *testing.T) {
	f := newRouterFixture()
	storedLead(f, "Café X")

	w := f.do(t, http.MethodGet, "/api/dashboard-metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var metrics models.DashboardMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.Equal(t, 1, metrics.TotalLeads)
	assert.Equal(t, 1, metrics.NotContacted)
}

func TestHealth(t *testing.T) {
	f := newRouterFixture()

	w := f.do(t, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
}

func TestSendMessageEndpoint(t *testing.T) {
	f := newRouterFixture()
	f.sender.result = services.SendResult{
		Lead:    models.Lead{ID: "1", Name: "Café X", Status: models.StatusMessageSent},
		Message: "Olá Café X",
		SentAt:  time.Now(),
	}

	w := f.do(t, http.MethodPost, "/api/whatsapp/send", map[string]string{"leadId": "1"})

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Success bool        `json:"success"`
		Lead    models.Lead `json:"lead"`
		Message string      `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, models.StatusMessageSent, payload.Lead.Status)
	assert.Equal(t, "Olá Café X", payload.Message)
}

func TestSendMessageEndpoint_MissingLeadID(t *testing.T) {
	f := newRouterFixture()

	w := f.do(t, http.MethodPost, "/api/whatsapp/send", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageEndpoint_UnknownLead(t *testing.T) {
	f := newRouterFixture()
	f.sender.err = apperrors.NotFound("lead missing not found", nil)

	w := f.do(t, http.MethodPost, "/api/whatsapp/send", map[string]string{"leadId": "missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
