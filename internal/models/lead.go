package models

import (
	"time"
)

// Lead statuses follow the outreach flow used by the dashboard. Transitions
// normally run Não Contatado -> Mensagem Enviada -> Já Contatado, but the
// store does not enforce that ordering.
const (
	StatusNotContacted = "Não Contatado"
	StatusMessageSent  = "Mensagem Enviada"
	StatusContacted    = "Já Contatado"
)

// Lead categories derived from the scoring engine.
const (
	CategoryHot  = "Quente"
	CategoryWarm = "Morno"
	CategoryCold = "Frio"
)

// PhoneNotInformed is the sentinel stored when the places API returns no
// phone number for a business. Profile completeness treats it as missing.
const PhoneNotInformed = "Não informado"

// Lead is a persisted business record that is a prospective sales contact.
// Rating, UserRatingsTotal and LeadScore are stored as text, mirroring the
// dashboard's storage schema; consumers that compare them must parse first.
type Lead struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Status             string    `json:"status"`
	DateAdded          time.Time `json:"dateAdded"`
	BusinessType       string    `json:"businessType,omitempty"`
	Location           string    `json:"location,omitempty"`
	Website            string    `json:"website,omitempty"`
	Rating             string    `json:"rating,omitempty"`
	UserRatingsTotal   string    `json:"userRatingsTotal,omitempty"`
	LeadScore          string    `json:"leadScore,omitempty"`
	LeadScoreBreakdown string    `json:"leadScoreBreakdown,omitempty"`
	LeadCategory       string    `json:"leadCategory,omitempty"`
}

// InsertLead carries the fields accepted when creating a lead. The store
// assigns the ID and DateAdded.
type InsertLead struct {
	Name               string `json:"name" binding:"required"`
	Address            string `json:"address" binding:"required"`
	Phone              string `json:"phone" binding:"required"`
	Email              string `json:"email" binding:"required"`
	Status             string `json:"status"`
	BusinessType       string `json:"businessType"`
	Location           string `json:"location"`
	Website            string `json:"website"`
	Rating             string `json:"rating"`
	UserRatingsTotal   string `json:"userRatingsTotal"`
	LeadScore          string `json:"leadScore"`
	LeadScoreBreakdown string `json:"leadScoreBreakdown"`
	LeadCategory       string `json:"leadCategory"`
}

// UpdateLeadStatus is the payload for a status transition.
type UpdateLeadStatus struct {
	Status string `json:"status" binding:"required"`
}

// SearchLeadsParams drives a places search. The scoring fields are optional
// filters applied to the scored candidates before they are persisted.
type SearchLeadsParams struct {
	BusinessType   string   `json:"businessType"`
	Location       string   `json:"location"`
	FreeSearch     string   `json:"freeSearch"`
	MinRating      *float64 `json:"minRating"`
	MinUserRatings *int     `json:"minUserRatings"`
	HasWebsite     *bool    `json:"hasWebsite"`
	LeadCategory   *string  `json:"leadCategory"`
	MinLeadScore   *int     `json:"minLeadScore"`
}

// ValidStatus reports whether s is one of the three lead statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNotContacted, StatusMessageSent, StatusContacted:
		return true
	}
	return false
}

// ValidCategory reports whether c is one of the three lead categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryHot, CategoryWarm, CategoryCold:
		return true
	}
	return false
}
