package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMarshal_PriceIsNumber(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Product{Name: "Red Dress", Price: decimal.RequireFromString("119.99")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":119.99`)
	assert.Contains(t, string(data), `"product_name":"Red Dress"`)

	var back Product
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Price.Equal(decimal.RequireFromString("119.99")))
}

func TestRecommendationMarshal_MoneyIsNumber(t *testing.T) {
	t.Parallel()

	rec := Recommendation{
		StylingProposal: "x",
		Items:           []Product{{Name: "A", Price: decimal.NewFromInt(120)}},
		TotalPrice:      decimal.NewFromInt(255),
		Budget:          decimal.NewFromInt(200),
		BudgetExceeded:  true,
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"total_price":255`)
	assert.Contains(t, s, `"budget":200`)
	assert.Contains(t, s, `"price":120`)
	assert.Contains(t, s, `"budget_exceeded":true`)
}
