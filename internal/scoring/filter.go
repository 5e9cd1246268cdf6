package scoring

import (
	"strconv"

	"github.com/leadradar/leadgen-api/internal/models"
)

// FilterCriteria holds optional lead filter predicates. A nil field imposes
// no constraint; present fields are ANDed together.
type FilterCriteria struct {
	MinRating      *float64 `json:"minRating,omitempty"`
	MinUserRatings *int     `json:"minUserRatings,omitempty"`
	HasWebsite     *bool    `json:"hasWebsite,omitempty"`
	LeadCategory   *string  `json:"leadCategory,omitempty"`
	MinLeadScore   *int     `json:"minLeadScore,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.MinRating == nil && c.MinUserRatings == nil && c.HasWebsite == nil &&
		c.LeadCategory == nil && c.MinLeadScore == nil
}

// FilterLeadsByScore returns the leads satisfying every present criterion,
// preserving input order. Rating, review count and score are stored as text
// on the lead and are compared numerically, never lexically; a lead whose
// stored value does not parse fails the corresponding criterion.
func FilterLeadsByScore(leads []models.Lead, criteria FilterCriteria) []models.Lead {
	if criteria.IsEmpty() {
		return leads
	}

	filtered := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if matchesCriteria(lead, criteria) {
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

func matchesCriteria(lead models.Lead, criteria FilterCriteria) bool {
	if criteria.MinRating != nil {
		rating, ok := parseFloat(lead.Rating)
		if !ok || rating < *criteria.MinRating {
			return false
		}
	}

	if criteria.MinUserRatings != nil {
		total, ok := parseInt(lead.UserRatingsTotal)
		if !ok || total < *criteria.MinUserRatings {
			return false
		}
	}

	if criteria.HasWebsite != nil {
		if *criteria.HasWebsite != (lead.Website != "") {
			return false
		}
	}

	if criteria.LeadCategory != nil && lead.LeadCategory != *criteria.LeadCategory {
		return false
	}

	if criteria.MinLeadScore != nil {
		score, ok := parseInt(lead.LeadScore)
		if !ok || score < *criteria.MinLeadScore {
			return false
		}
	}

	return true
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	// Scores may be persisted with a decimal part by older clients.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
