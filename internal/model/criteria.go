package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Wildcard values accepted in QueryCriteria.
const (
	WildcardAny        = "any"
	WildcardFullOutfit = "full outfit"
)

// QueryCriteria is one user request. Gender, Category and Color are matched
// during retrieval; Occasion, Style and Keywords only reach the model.
type QueryCriteria struct {
	Gender       string          `json:"gender,omitempty" validate:"max=64"`
	Category     string          `json:"category,omitempty" validate:"max=64"`
	MaxPrice     decimal.Decimal `json:"max_price" validate:"gte=0"`
	Color        string          `json:"color,omitempty" validate:"max=64"`
	OccasionTags []string        `json:"occasion_tags,omitempty" validate:"max=20,dive,max=64"`
	StyleTags    []string        `json:"style_tags,omitempty" validate:"max=20,dive,max=64"`
	Occasion     string          `json:"occasion,omitempty" validate:"max=256"`
	Style        string          `json:"style,omitempty" validate:"max=256"`
	Keywords     string          `json:"keywords,omitempty" validate:"max=512"`
	Budget       decimal.Decimal `json:"budget" validate:"gte=0"`
}

// Normalized fills whichever of MaxPrice and Budget is zero from the other.
// Zero means unset for both fields: an explicit max_price of 0 sent with a
// non-zero budget becomes the budget, so a query cannot ask for free items
// only. Forms with a single price control send only one of them, meaning the
// same ceiling for each.
func (c QueryCriteria) Normalized() QueryCriteria {
	switch {
	case c.MaxPrice.IsZero():
		c.MaxPrice = c.Budget
	case c.Budget.IsZero():
		c.Budget = c.MaxPrice
	}
	return c
}

// IsFullOutfit reports whether the request asks for a multi-item look.
func (c QueryCriteria) IsFullOutfit() bool {
	return strings.EqualFold(strings.TrimSpace(c.Category), WildcardFullOutfit)
}

// CategoryLabel is the clothing type shown to the model.
func (c QueryCriteria) CategoryLabel() string {
	if strings.TrimSpace(c.Category) == "" {
		return "Any"
	}
	return c.Category
}

// IsWildcard reports whether v places no constraint on a field.
func IsWildcard(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, WildcardAny)
}
