package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel values written by the data preparation step for missing fields.
const (
	UnspecifiedGender   = "unspecified gender"
	UnspecifiedCategory = "unspecified category"
)

// Product is one catalog item as persisted in the prepared dataset.
type Product struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"product_name" validate:"required"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	SubCategory    string          `json:"sub_category"`
	MasterCategory string          `json:"master_category,omitempty"`
	Gender         string          `json:"gender"`
	Color          string          `json:"color"`
	Brand          string          `json:"brand"`
	CollectionYear int             `json:"collection_year,omitempty"`
	Season         string          `json:"season,omitempty"`
	UsageType      string          `json:"usage_type,omitempty"`
	Price          decimal.Decimal `json:"price" validate:"gte=0"`
	Currency       string          `json:"currency"`
	PurchaseLink   string          `json:"purchase_link"`
	ImageURL       string          `json:"image_url"`
	OccasionTags   []string        `json:"occasion_tags"`
	StyleTags      []string        `json:"style_tags"`
}

// Key is the (name, category) identity used when grounding model output.
type Key struct {
	Name     string
	Category string
}

// Key returns the grounding identity of the product.
func (p Product) Key() Key {
	return Key{Name: p.Name, Category: p.Category}
}

// NormalizeTags trims tags and drops empty entries and case-insensitive
// duplicates, keeping the first spelling seen. Never returns nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
