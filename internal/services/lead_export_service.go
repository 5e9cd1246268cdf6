package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/store"
)

// LeadExportService renders stored leads for download.
type LeadExportService struct {
	store store.Store
}

// NewLeadExportService creates a new lead export service
func NewLeadExportService(st store.Store) *LeadExportService {
	return &LeadExportService{store: st}
}

// ExportFormat specifies the format for exporting leads
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// csvHeaders are the dashboard's export columns, in Portuguese.
var csvHeaders = []string{
	"Nome", "Endereço", "Telefone", "Email", "Status",
	"Data Adicionado", "Tipo de Empresa", "Localização",
}

// dateLayout renders dates in Brazilian day-first order.
const dateLayout = "02/01/2006"

// ExportLeads renders all stored leads in the requested format.
func (s *LeadExportService) ExportLeads(format ExportFormat) ([]byte, error) {
	leads := s.store.ListLeads()

	switch format {
	case FormatJSON:
		return s.exportToJSON(leads)
	case FormatCSV:
		return s.exportToCSV(leads)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// FileName returns the download filename for the given format.
func (s *LeadExportService) FileName(format ExportFormat) string {
	return fmt.Sprintf("leads_%s.%s", time.Now().Format("2006-01-02"), format)
}

func (s *LeadExportService) exportToJSON(leads []models.Lead) ([]byte, error) {
	exportData := map[string]interface{}{
		"leads":       leads,
		"count":       len(leads),
		"exported_at": time.Now(),
	}
	return json.MarshalIndent(exportData, "", "  ")
}

func (s *LeadExportService) exportToCSV(leads []models.Lead) ([]byte, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	if err := writer.Write(csvHeaders); err != nil {
		return nil, err
	}

	for _, lead := range leads {
		row := []string{
			lead.Name,
			lead.Address,
			lead.Phone,
			lead.Email,
			lead.Status,
			lead.DateAdded.Format(dateLayout),
			lead.BusinessType,
			lead.Location,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(output.String()), nil
}
