package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/scoring"
	"github.com/leadradar/leadgen-api/internal/services"
	"github.com/leadradar/leadgen-api/internal/store"
)

// LeadSearcher runs a places search and persists the scored results.
type LeadSearcher interface {
	SearchAndStore(ctx context.Context, params models.SearchLeadsParams) ([]models.Lead, error)
}

// LeadsHandler handles lead CRUD, search and export operations
type LeadsHandler struct {
	store         store.Store
	searcher      LeadSearcher
	exportService *services.LeadExportService
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(st store.Store, searcher LeadSearcher) *LeadsHandler {
	return &LeadsHandler{
		store:         st,
		searcher:      searcher,
		exportService: services.NewLeadExportService(st),
	}
}

// GetLeads returns stored leads, optionally narrowed by query-string filters.
func (h *LeadsHandler) GetLeads(c *gin.Context) {
	var leads []models.Lead
	businessType := c.Query("businessType")
	location := c.Query("location")
	if businessType != "" || location != "" {
		leads = h.store.SearchLeads(businessType, location)
	} else {
		leads = h.store.ListLeads()
	}

	criteria, err := parseFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, scoring.FilterLeadsByScore(leads, criteria))
}

// GetLead returns a single lead by id.
func (h *LeadsHandler) GetLead(c *gin.Context) {
	lead, err := h.store.GetLead(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// CreateLead stores a manually entered lead.
func (h *LeadsHandler) CreateLead(c *gin.Context) {
	var insert models.InsertLead
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead data: " + err.Error()})
		return
	}
	if insert.Status != "" && !models.ValidStatus(insert.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead status: " + insert.Status})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateLead(insert))
}

// UpdateLeadStatus transitions a lead through the outreach flow.
func (h *LeadsHandler) UpdateLeadStatus(c *gin.Context) {
	var payload models.UpdateLeadStatus
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload: " + err.Error()})
		return
	}
	if !models.ValidStatus(payload.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead status: " + payload.Status})
		return
	}

	lead, err := h.store.UpdateLeadStatus(c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// SearchLeads runs a places search, scores the results and persists the
// survivors.
func (h *LeadsHandler) SearchLeads(c *gin.Context) {
	var params models.SearchLeadsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters: " + err.Error()})
		return
	}

	leads, err := h.searcher.SearchAndStore(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// ExportCSV streams all leads as a CSV download.
func (h *LeadsHandler) ExportCSV(c *gin.Context) {
	data, err := h.exportService.ExportLeads(services.FormatCSV)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export leads: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.exportService.FileName(services.FormatCSV)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// parseFilterFromQuery reads the optional scoring filters off the query
// string.
func parseFilterFromQuery(c *gin.Context) (scoring.FilterCriteria, error) {
	var criteria scoring.FilterCriteria

	if raw := c.Query("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, err
		}
		criteria.MinRating = &v
	}
	if raw := c.Query("minUserRatings"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, err
		}
		criteria.MinUserRatings = &v
	}
	if raw := c.Query("hasWebsite"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, err
		}
		criteria.HasWebsite = &v
	}
	if raw := c.Query("leadCategory"); raw != "" {
		criteria.LeadCategory = &raw
	}
	if raw := c.Query("minLeadScore"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, err
		}
		criteria.MinLeadScore = &v
	}

	return criteria, nil
}
