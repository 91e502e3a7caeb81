package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"dedupe case-insensitive", []string{"Casual", "casual", "CASUAL"}, []string{"Casual"}},
		{"trim and drop empty", []string{" party ", "", "  "}, []string{"party"}},
		{"order preserved", []string{"office", "Party", "office"}, []string{"office", "Party"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestProductKey(t *testing.T) {
	t.Parallel()

	p := Product{Name: "Red Dress", Category: "Dress", Color: "Red"}
	assert.Equal(t, Key{Name: "Red Dress", Category: "Dress"}, p.Key())
}

func TestProductUnmarshalDataset(t *testing.T) {
	t.Parallel()

	raw := `{
  "product_name": "Red Dress",
  "description": "Red Dress in Red",
  "category": "Dress",
  "sub_category": "Dress",
  "gender": "Women",
  "color": "Red",
  "brand": "Unknown Brand",
  "price": 120.5,
  "currency": "PLN",
  "purchase_link": "https://yourboutique.com/apparel/dress/red-dress",
  "image_url": "https://img.example/1.jpg",
  "occasion_tags": ["party"],
  "style_tags": []
}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "Red Dress", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("120.5")))
	assert.Equal(t, []string{"party"}, p.OccasionTags)
	assert.Empty(t, p.StyleTags)
}
