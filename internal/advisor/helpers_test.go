package advisor

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/style-advisor/internal/catalog"
	"github.com/sells-group/style-advisor/internal/llm"
	"github.com/sells-group/style-advisor/internal/model"
)

// MockGenerator implements llm.Generator for tests.
type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*llm.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func product(name, category, gender, color string, price int64, occasion, style []string) model.Product {
	return model.Product{
		Name:         name,
		Description:  name + " description",
		Category:     category,
		SubCategory:  category,
		Gender:       gender,
		Color:        color,
		Brand:        "Reserved",
		Price:        decimal.NewFromInt(price),
		Currency:     "PLN",
		PurchaseLink: "https://shop.example/" + name,
		ImageURL:     "https://img.example/" + name + ".jpg",
		OccasionTags: occasion,
		StyleTags:    style,
	}
}

func sampleProducts() []model.Product {
	return []model.Product{
		product("Red Dress", "Dress", "Women", "Red", 120, []string{"party", "date"}, []string{"elegant"}),
		product("Navy Blazer", "Blazer", "Men", "Navy Blue", 250, []string{"office"}, []string{"classic"}),
		product("White Sneakers", "Shoes", "Unisex", "White", 90, []string{"casual"}, []string{"sporty", "minimalist"}),
		product("Black Jeans", "Jeans", "Men", "Black", 60, []string{"casual", "weekend"}, []string{"streetwear"}),
		product("Silk Scarf", "Accessories", "Women", "Dark Red", 45, []string{"party"}, []string{"boho"}),
		product("Wool Coat", "Coat", "Women", "Camel", 400, []string{"office", "winter"}, []string{"classic", "elegant"}),
	}
}

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(sampleProducts())
	require.NoError(t, err)
	return c
}

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}
