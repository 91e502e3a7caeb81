package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/style-advisor/internal/model"
)

func asSuggestion(p model.Product) model.SuggestedItem {
	return model.SuggestedItem{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Color:        p.Color,
		Category:     p.Category,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		PurchaseLink: p.PurchaseLink,
	}
}

func TestGround_TamperedPriceUsesPool(t *testing.T) {
	t.Parallel()
	pool := []model.Product{product("Red Dress", "Dress", "Women", "Red", 120, nil, nil)}

	suggested := []model.SuggestedItem{{
		Name:         "Red Dress",
		Category:     "Dress",
		Price:        decimal.NewFromInt(999),
		PurchaseLink: "https://evil.example",
	}}
	items, warnings := Ground(suggested, pool)

	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "https://shop.example/Red Dress", items[0].PurchaseLink)
}

func TestGround_UnmatchedProducesWarning(t *testing.T) {
	t.Parallel()
	pool := sampleProducts()

	suggested := []model.SuggestedItem{
		asSuggestion(pool[0]),
		{Name: "Golden Crown", Category: "Accessories"},
		asSuggestion(pool[3]),
	}
	items, warnings := Ground(suggested, pool)

	assert.Equal(t, []string{"Red Dress", "Black Jeans"}, names(items))
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarningUngroundedSuggestion, warnings[0].Kind)
	assert.Equal(t, "Golden Crown", warnings[0].Name)
	assert.Equal(t, "Accessories", warnings[0].Category)
	assert.Contains(t, warnings[0].Message, "Golden Crown")
}

func TestGround_CaseSensitiveKey(t *testing.T) {
	t.Parallel()
	pool := sampleProducts()

	items, warnings := Ground([]model.SuggestedItem{{Name: "red dress", Category: "Dress"}}, pool)
	assert.Empty(t, items)
	assert.Len(t, warnings, 1)

	items, warnings = Ground([]model.SuggestedItem{{Name: "Red Dress", Category: "Dresses"}}, pool)
	assert.Empty(t, items)
	assert.Len(t, warnings, 1)
}

func TestGround_IDWinsOverText(t *testing.T) {
	t.Parallel()
	c := sampleCatalog(t)
	pool := c.Products()

	// Echoed ID is authoritative even when the name was paraphrased.
	s := asSuggestion(pool[1])
	s.Name = "Blue blazer"
	items, warnings := Ground([]model.SuggestedItem{s}, pool)
	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "Navy Blazer", items[0].Name)

	// Unknown ID falls back to (name, category).
	s = asSuggestion(pool[2])
	s.ID = "not-in-pool"
	items, warnings = Ground([]model.SuggestedItem{s}, pool)
	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, pool[2].ID, items[0].ID)
}

func TestGround_SubsetAndIdempotent(t *testing.T) {
	t.Parallel()
	pool := sampleCatalog(t).Products()

	suggested := make([]model.SuggestedItem, 0, len(pool))
	for _, p := range pool {
		suggested = append(suggested, asSuggestion(p))
	}
	suggested = append(suggested, model.SuggestedItem{Name: "Invented", Category: "Hat"})

	items, warnings := Ground(suggested, pool)
	assert.Equal(t, pool, items)
	assert.Len(t, warnings, 1)

	inPool := make(map[model.Key]bool, len(pool))
	for _, p := range pool {
		inPool[p.Key()] = true
	}
	for _, it := range items {
		assert.True(t, inPool[it.Key()], it.Name)
	}

	again := make([]model.SuggestedItem, 0, len(items))
	for _, p := range items {
		again = append(again, asSuggestion(p))
	}
	regrounded, warnings := Ground(again, pool)
	assert.Equal(t, items, regrounded)
	assert.Empty(t, warnings)
}

func TestGround_Empty(t *testing.T) {
	t.Parallel()
	items, warnings := Ground(nil, sampleProducts())
	assert.Empty(t, items)
	assert.Empty(t, warnings)
}
