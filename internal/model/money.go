package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// number renders d as a bare JSON number, whatever the package-wide
// decimal settings are.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// MarshalJSON writes the price as a JSON number, the form the dataset uses.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price json.Number `json:"price"`
	}{alias(p), number(p.Price)})
}

// MarshalJSON writes the money fields as JSON numbers.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	type alias Recommendation
	return json.Marshal(struct {
		alias
		TotalPrice json.Number `json:"total_price"`
		Budget     json.Number `json:"budget"`
	}{alias(r), number(r.TotalPrice), number(r.Budget)})
}
