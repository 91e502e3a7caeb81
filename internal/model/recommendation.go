package model

import "github.com/shopspring/decimal"

// SuggestedItem is a product as echoed back by the model. Nothing in it is
// trusted until it has been matched against the candidate pool.
type SuggestedItem struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Color        string          `json:"color"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	PurchaseLink string          `json:"purchase_link"`
}

// RecommendationPayload is the structured block the model must return for a
// styling request.
type RecommendationPayload struct {
	StylingProposal   string          `json:"overall_styling_proposal"`
	SuggestedProducts []SuggestedItem `json:"suggested_products"`
}

// TagPayload is the structured block the model must return when tagging.
type TagPayload struct {
	OccasionTags []string `json:"occasion_tags"`
	StyleTags    []string `json:"style_tags"`
}

// WarningKind classifies a non-fatal pipeline warning.
type WarningKind string

const (
	WarningUngroundedSuggestion WarningKind = "ungrounded_suggestion"
)

// Warning is a non-fatal issue surfaced next to a partial result.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Message  string      `json:"message"`
}

// Recommendation is the validated result of one query. Items are always
// drawn from the candidate pool, never from the model's copy.
type Recommendation struct {
	StylingProposal string          `json:"styling_proposal"`
	Items           []Product       `json:"items"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	BudgetExceeded  bool            `json:"budget_exceeded"`
	Budget          decimal.Decimal `json:"budget"`
	Currency        string          `json:"currency"`
	OutfitMode      bool            `json:"outfit_mode"`
	CandidateCount  int             `json:"candidate_count"`
	Warnings        []Warning       `json:"warnings,omitempty"`
}

// Empty reports whether no suggestion survived grounding.
func (r *Recommendation) Empty() bool {
	return r == nil || len(r.Items) == 0
}
