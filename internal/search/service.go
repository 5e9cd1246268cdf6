package search

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadradar/leadgen-api/internal/logger"
	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/places"
	"github.com/leadradar/leadgen-api/internal/scoring"
	"github.com/leadradar/leadgen-api/internal/store"
	"github.com/leadradar/leadgen-api/pkg/config"
)

const (
	defaultLocation     = "São Paulo, SP"
	defaultBusinessType = "Restaurantes"
	fallbackTypeLabel   = "Estabelecimento"
)

// businessTypeCategories maps dashboard business types to Google place
// categories.
var businessTypeCategories = map[string][]string{
	"Restaurantes": {"restaurant", "food", "meal_takeaway"},
	"Academias":    {"gym", "fitness", "health"},
	"Clínicas":     {"hospital", "doctor", "health", "medical"},
	"Escritórios":  {"lawyer", "accounting", "real_estate_agency"},
	"Comércio":     {"store", "shopping_mall", "clothing_store"},
}

var emailNamePattern = regexp.MustCompile(`[^a-z0-9]`)

// Service orchestrates a lead search: geocode, fan out per-category place
// searches, enrich with details, score, filter and persist.
type Service struct {
	placesAPI places.API
	store     store.Store
	log       logger.Logger

	radius             int
	resultsPerCategory int
	maxResults         int
}

// NewService creates a search Service.
func NewService(placesAPI places.API, st store.Store, log logger.Logger, cfg *config.Config) *Service {
	return &Service{
		placesAPI:          placesAPI,
		store:              st,
		log:                log,
		radius:             cfg.SearchRadiusMeters,
		resultsPerCategory: cfg.ResultsPerCategory,
		maxResults:         cfg.MaxSearchResults,
	}
}

// SearchAndStore finds businesses matching the search params, scores them,
// applies the optional filter criteria and persists the survivors. It returns
// the created leads, newest search hits first.
func (s *Service) SearchAndStore(ctx context.Context, params models.SearchLeadsParams) ([]models.Lead, error) {
	location := params.Location
	if location == "" {
		location = defaultLocation
	}

	center, err := s.placesAPI.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	summaries, err := s.collectSummaries(ctx, center, params)
	if err != nil {
		return nil, err
	}

	details := s.collectDetails(ctx, summaries)

	businessType := params.BusinessType
	if businessType == "" {
		businessType = fallbackTypeLabel
	}

	criteria := scoring.FilterCriteria{
		MinRating:      params.MinRating,
		MinUserRatings: params.MinUserRatings,
		HasWebsite:     params.HasWebsite,
		LeadCategory:   params.LeadCategory,
		MinLeadScore:   params.MinLeadScore,
	}

	seen := make(map[string]bool)
	leads := make([]models.Lead, 0, s.maxResults)
	for _, detail := range details {
		if detail.Name == "" || seen[detail.Name] {
			continue
		}
		seen[detail.Name] = true

		candidate := s.buildLead(detail, businessType, location)
		if scored := scoring.FilterLeadsByScore([]models.Lead{candidate.preview}, criteria); len(scored) == 0 {
			continue
		}

		leads = append(leads, s.store.CreateLead(candidate.insert))
		if len(leads) >= s.maxResults {
			break
		}
	}

	s.log.Info("lead search completed",
		zap.String("businessType", businessType),
		zap.String("location", location),
		zap.Int("found", len(details)),
		zap.Int("stored", len(leads)),
	)
	return leads, nil
}

// collectSummaries fans out one search per mapped category, or a single text
// search for free-form queries. Failed branches are logged and dropped so one
// category cannot sink the whole search.
func (s *Service) collectSummaries(ctx context.Context, center places.LatLng, params models.SearchLeadsParams) ([]places.PlaceSummary, error) {
	if params.FreeSearch != "" {
		results, err := s.placesAPI.TextSearch(ctx, params.FreeSearch, center, s.radius)
		if err != nil {
			return nil, err
		}
		return results, nil
	}

	businessType := params.BusinessType
	if businessType == "" {
		businessType = defaultBusinessType
	}
	categories, ok := businessTypeCategories[businessType]
	if !ok {
		categories = []string{"establishment"}
	}

	var mu sync.Mutex
	summaries := make([]places.PlaceSummary, 0, len(categories)*s.resultsPerCategory)

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range categories {
		category := category
		g.Go(func() error {
			results, err := s.placesAPI.NearbySearch(gctx, center, s.radius, category)
			if err != nil {
				s.log.Warn("nearby search failed for category",
					zap.String("category", category),
					zap.Error(err),
				)
				return nil
			}
			if len(results) > s.resultsPerCategory {
				results = results[:s.resultsPerCategory]
			}
			mu.Lock()
			summaries = append(summaries, results...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// collectDetails fans out detail lookups; failed lookups are dropped.
func (s *Service) collectDetails(ctx context.Context, summaries []places.PlaceSummary) []places.PlaceDetail {
	details := make([]places.PlaceDetail, len(summaries))
	found := make([]bool, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	for i, summary := range summaries {
		i, summary := i, summary
		g.Go(func() error {
			detail, err := s.placesAPI.PlaceDetails(gctx, summary.PlaceID)
			if err != nil {
				s.log.Warn("place details lookup failed",
					zap.String("placeId", summary.PlaceID),
					zap.Error(err),
				)
				return nil
			}
			details[i] = detail
			found[i] = true
			return nil
		})
	}
	_ = g.Wait()

	kept := make([]places.PlaceDetail, 0, len(summaries))
	for i := range details {
		if found[i] {
			kept = append(kept, details[i])
		}
	}
	return kept
}

type scoredCandidate struct {
	insert  models.InsertLead
	preview models.Lead
}

// buildLead scores a place and shapes it for persistence. Score fields are
// stored as text to match the lead schema.
func (s *Service) buildLead(detail places.PlaceDetail, businessType, location string) scoredCandidate {
	phone := detail.FormattedPhone
	if phone == "" {
		phone = models.PhoneNotInformed
	}

	record := scoring.BusinessRecord{
		Name:             detail.Name,
		Address:          detail.FormattedAddress,
		Phone:            phone,
		Website:          detail.Website,
		Rating:           detail.Rating,
		UserRatingsTotal: detail.UserRatingsTotal,
	}
	result := scoring.CalculateLeadScore(record)

	breakdownJSON, err := json.Marshal(result.Breakdown)
	if err != nil {
		s.log.Warn("failed to encode score breakdown", zap.String("name", detail.Name), zap.Error(err))
	}

	rating := ""
	if detail.Rating > 0 {
		rating = strconv.FormatFloat(detail.Rating, 'f', -1, 64)
	}
	userRatings := ""
	if detail.UserRatingsTotal > 0 {
		userRatings = strconv.Itoa(detail.UserRatingsTotal)
	}

	insert := models.InsertLead{
		Name:               detail.Name,
		Address:            detail.FormattedAddress,
		Phone:              phone,
		Email:              generateEmailFromName(detail.Name),
		Status:             models.StatusNotContacted,
		BusinessType:       businessType,
		Location:           location,
		Website:            detail.Website,
		Rating:             rating,
		UserRatingsTotal:   userRatings,
		LeadScore:          strconv.Itoa(result.Score),
		LeadScoreBreakdown: string(breakdownJSON),
		LeadCategory:       result.Category,
	}

	preview := models.Lead{
		Name:             insert.Name,
		Website:          insert.Website,
		Rating:           insert.Rating,
		UserRatingsTotal: insert.UserRatingsTotal,
		LeadScore:        insert.LeadScore,
		LeadCategory:     insert.LeadCategory,
	}
	return scoredCandidate{insert: insert, preview: preview}
}

// generateEmailFromName synthesizes a plausible contact address from the
// business name.
func generateEmailFromName(name string) string {
	clean := emailNamePattern.ReplaceAllString(strings.ToLower(name), "")
	if len(clean) > 15 {
		clean = clean[:15]
	}
	if clean == "" {
		clean = "contato"
	}
	return "contato@" + clean + ".com.br"
}
