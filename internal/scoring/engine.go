package scoring

import (
	"math"
	"strings"

	"github.com/leadradar/leadgen-api/internal/models"
)

// BusinessRecord carries the raw attributes of a business candidate before
// scoring. Name, Address and Phone are expected to be non-empty; the
// optional fields degrade to floor scores when missing.
type BusinessRecord struct {
	Name             string
	Address          string
	Phone            string
	Website          string
	Rating           float64
	UserRatingsTotal int
}

// Breakdown holds the per-dimension component scores, the weighted overall
// score and one reasoning line per dimension (website, rating, volume,
// profile — always in that order).
type Breakdown struct {
	WebsiteScore             int      `json:"websiteScore"`
	RatingScore              int      `json:"ratingScore"`
	VolumeScore              int      `json:"volumeScore"`
	ProfileCompletenessScore int      `json:"profileCompletenessScore"`
	OverallScore             int      `json:"overallScore"`
	Reasoning                []string `json:"reasoning"`
}

// LeadScore is the full result of scoring one business record.
type LeadScore struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
	Category  string    `json:"category"`
}

// Metric weights. Rating is weighted highest; it is the strongest
// independent success signal. The weights must sum to 1.0.
const (
	weightWebsite = 0.25
	weightRating  = 0.35
	weightVolume  = 0.25
	weightProfile = 0.15
)

// CalculateLeadScore converts a business record into the weighted overall
// score, the per-dimension breakdown with reasoning, and the lead category.
// It is pure and deterministic: identical input always yields an identical
// result.
func CalculateLeadScore(rec BusinessRecord) LeadScore {
	websiteScore := WebsiteScore(rec.Website)
	ratingScore := RatingScore(rec.Rating)
	volumeScore := VolumeScore(rec.UserRatingsTotal)
	profileScore := ProfileCompletenessScore(rec)

	overall := int(math.Round(
		float64(websiteScore)*weightWebsite +
			float64(ratingScore)*weightRating +
			float64(volumeScore)*weightVolume +
			float64(profileScore)*weightProfile))

	breakdown := Breakdown{
		WebsiteScore:             websiteScore,
		RatingScore:              ratingScore,
		VolumeScore:              volumeScore,
		ProfileCompletenessScore: profileScore,
		OverallScore:             overall,
		Reasoning:                generateReasoning(websiteScore, ratingScore, volumeScore, profileScore),
	}

	return LeadScore{
		Score:     overall,
		Breakdown: breakdown,
		Category:  CategorizeLead(overall, rec),
	}
}

// WebsiteScore rates the sales opportunity of a business website. No website
// means a high opportunity (the business is a prospect for a new site); a
// site on a popular builder platform is judged good enough already and
// lowers opportunity.
func WebsiteScore(website string) int {
	if website == "" {
		return 90
	}

	hasHTTPS := strings.Contains(website, "https://")
	hasWWW := strings.Contains(website, "www.")
	isCommercialDomain := strings.Contains(website, ".com.br") || strings.Contains(website, ".com")

	score := 60
	if hasHTTPS {
		score += 10
	}
	if hasWWW {
		score += 5
	}
	if isCommercialDomain {
		score += 5
	}

	if strings.Contains(website, "wix") || strings.Contains(website, "wordpress") || strings.Contains(website, "shopify") {
		score -= 20
	}

	return clamp(score)
}

// RatingScore maps a star rating in [0,5] to [0,100]. A missing rating is
// treated as unknown, not bad, and scores the documented floor of 30.
func RatingScore(rating float64) int {
	if rating == 0 {
		return 30
	}
	if rating >= 4.5 {
		return 100
	}
	if rating <= 3.0 {
		return 0
	}
	return int(math.Round(((rating - 3.0) / 1.5) * 100))
}

// VolumeScore maps a review count to [0,100]. A missing count scores the
// documented floor of 20.
func VolumeScore(userRatingsTotal int) int {
	if userRatingsTotal == 0 {
		return 20
	}
	if userRatingsTotal >= 50 {
		return 100
	}
	if userRatingsTotal <= 5 {
		return 0
	}
	return int(math.Round((float64(userRatingsTotal-5) / 45.0) * 100))
}

// ProfileCompletenessScore awards 25 points for each populated profile
// field: name, address, phone (the "not informed" sentinel does not count)
// and website. The result is always a multiple of 25.
func ProfileCompletenessScore(rec BusinessRecord) int {
	score := 0
	if strings.TrimSpace(rec.Name) != "" {
		score += 25
	}
	if strings.TrimSpace(rec.Address) != "" {
		score += 25
	}
	if phone := strings.TrimSpace(rec.Phone); phone != "" && phone != models.PhoneNotInformed {
		score += 25
	}
	if strings.TrimSpace(rec.Website) != "" {
		score += 25
	}
	return score
}

// CategorizeLead buckets a scored record as Quente, Morno or Frio. The hot
// check runs before the warm check; at edge values both can match and the
// first match wins.
func CategorizeLead(overallScore int, rec BusinessRecord) string {
	if isHotLead(overallScore, rec) {
		return models.CategoryHot
	}
	if overallScore >= 60 || isWarmLead(rec) {
		return models.CategoryWarm
	}
	return models.CategoryCold
}

func isHotLead(overallScore int, rec BusinessRecord) bool {
	// Proven demand with no digital presence.
	if rec.UserRatingsTotal >= 30 && rec.Rating >= 4.5 && rec.Website == "" {
		return true
	}
	return overallScore >= 90
}

func isWarmLead(rec BusinessRecord) bool {
	if ProfileCompletenessScore(rec) >= 75 && rec.Website == "" {
		return true
	}
	if rec.Website != "" && WebsiteScore(rec.Website) >= 60 {
		return true
	}
	return false
}

// generateReasoning produces one human-readable line per scoring dimension,
// in the fixed order website, rating, volume, profile.
func generateReasoning(websiteScore, ratingScore, volumeScore, profileScore int) []string {
	reasoning := make([]string, 0, 4)

	switch {
	case websiteScore >= 80:
		reasoning = append(reasoning, "🎯 Alta oportunidade: Empresa sem presença digital")
	case websiteScore >= 60:
		reasoning = append(reasoning, "📱 Oportunidade média: Site pode precisar de upgrade")
	default:
		reasoning = append(reasoning, "💻 Baixa oportunidade: Site já bem estabelecido")
	}

	switch {
	case ratingScore >= 80:
		reasoning = append(reasoning, "⭐ Excelente reputação: Empresa bem-sucedida e confiável")
	case ratingScore >= 50:
		reasoning = append(reasoning, "👍 Boa reputação: Empresa com clientes satisfeitos")
	default:
		reasoning = append(reasoning, "⚠️ Reputação baixa: Pode ter problemas de qualidade")
	}

	switch {
	case volumeScore >= 80:
		reasoning = append(reasoning, "🔥 Muito estabelecida: Alto volume de clientes")
	case volumeScore >= 50:
		reasoning = append(reasoning, "📈 Estabelecida: Volume moderado de clientes")
	default:
		reasoning = append(reasoning, "🌱 Em crescimento: Volume baixo de clientes")
	}

	switch {
	case profileScore >= 80:
		reasoning = append(reasoning, "📋 Perfil completo: Empresa atenta aos detalhes")
	case profileScore >= 50:
		reasoning = append(reasoning, "📝 Perfil parcial: Algumas informações disponíveis")
	default:
		reasoning = append(reasoning, "❓ Perfil incompleto: Poucas informações disponíveis")
	}

	return reasoning
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
