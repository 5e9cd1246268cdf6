package main

import (
	"fmt"

	"github.com/leadradar/leadgen-api/internal/models"
	"github.com/leadradar/leadgen-api/internal/scoring"
)

func main() {
	fmt.Println("🎯 Lead Scoring Engine Test")
	fmt.Println("===========================")

	samples := []scoring.BusinessRecord{
		{
			Name:             "Café X",
			Address:          "Rua A, 1 - São Paulo",
			Phone:            models.PhoneNotInformed,
			Rating:           4.8,
			UserRatingsTotal: 40,
		},
		{
			Name:             "Padaria Central",
			Address:          "Rua B, 22 - São Paulo",
			Phone:            "(11) 99999-0000",
			Website:          "https://www.padariacentral.com.br",
			Rating:           4.1,
			UserRatingsTotal: 12,
		},
		{
			Name:             "Loja Z",
			Address:          "Rua C, 3 - São Paulo",
			Phone:            "(11) 3333-4444",
			Website:          "https://lojaz.wordpress.com",
			Rating:           3.2,
			UserRatingsTotal: 4,
		},
		{
			Name:    "Banca do Zé",
			Address: "Praça da Sé, s/n - São Paulo",
			Phone:   models.PhoneNotInformed,
		},
	}

	for _, rec := range samples {
		printScoringResult(rec, scoring.CalculateLeadScore(rec))
	}

	fmt.Println("\n🎯 Scoring Engine Test Complete!")
}

func printScoringResult(rec scoring.BusinessRecord, result scoring.LeadScore) {
	fmt.Printf("\n%s\n", rec.Name)
	fmt.Println("------------------")
	fmt.Printf("Overall Score: %d\n", result.Score)
	fmt.Printf("Category: %s %s\n", categoryEmoji(result.Category), result.Category)

	fmt.Println("\nBreakdown:")
	fmt.Printf("  Website: %d\n", result.Breakdown.WebsiteScore)
	fmt.Printf("  Rating: %d\n", result.Breakdown.RatingScore)
	fmt.Printf("  Volume: %d\n", result.Breakdown.VolumeScore)
	fmt.Printf("  Profile: %d\n", result.Breakdown.ProfileCompletenessScore)

	fmt.Println("\nReasoning:")
	for _, reason := range result.Breakdown.Reasoning {
		fmt.Printf("  %s\n", reason)
	}
}

func categoryEmoji(category string) string {
	switch category {
	case models.CategoryHot:
		return "🔥"
	case models.CategoryWarm:
		return "🌤️"
	default:
		return "❄️"
	}
}
