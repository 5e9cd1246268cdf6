package services

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/store"
)

func seedLead(t *testing.T, st store.Store, name string) models.Lead {
	t.Helper()
	return st.CreateLead(models.InsertLead{
		Name:         name,
		Address:      "Rua A, 1",
		Phone:        "(11) 99999-0000",
		Email:        "contato@teste.com.br",
		BusinessType: "Restaurantes",
		Location:     "São Paulo, SP",
	})
}

func TestExportLeads_CSV(t *testing.T) {
	st := store.NewMemory()
	lead := seedLead(t, st, "Café X")
	svc := NewLeadExportService(st)

	data, err := svc.ExportLeads(FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Nome", "Endereço", "Telefone", "Email", "Status",
		"Data Adicionado", "Tipo de Empresa", "Localização",
	}, records[0])

	row := records[1]
	assert.Equal(t, "Café X", row[0])
	assert.Equal(t, models.StatusNotContacted, row[4])
	assert.Equal(t, lead.DateAdded.Format("02/01/2006"), row[5])
	assert.Equal(t, "Restaurantes", row[6])
}

func TestExportLeads_CSV_EmptyStoreStillHasHeader(t *testing.T) {
	svc := NewLeadExportService(store.NewMemory())

	data, err := svc.ExportLeads(FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportLeads_JSON(t *testing.T) {
	st := store.NewMemory()
	seedLead(t, st, "Café X")
	seedLead(t, st, "Padaria Central")
	svc := NewLeadExportService(st)

	data, err := svc.ExportLeads(FormatJSON)
	require.NoError(t, err)

	var payload struct {
		Leads []models.Lead `json:"leads"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, 2, payload.Count)
	assert.Len(t, payload.Leads, 2)
}

func TestExportLeads_UnsupportedFormat(t *testing.T) {
	svc := NewLeadExportService(store.NewMemory())

	_, err := svc.ExportLeads("xml")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	svc := NewLeadExportService(store.NewMemory())

	name := svc.FileName(FormatCSV)
	assert.True(t, strings.HasPrefix(name, "leads_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
