package advisor

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/style-advisor/internal/model"
)

func TestFilter_PriceOnly(t *testing.T) {
	t.Parallel()
	products := sampleProducts()

	for _, p := range []int64{0, 45, 100, 250, 1000} {
		c := model.QueryCriteria{Gender: "any", Category: "Any", Color: "", MaxPrice: decimal.NewFromInt(p)}
		got := Filter(products, c, 100, nil)

		var want []string
		for _, prod := range products {
			if prod.Price.LessThanOrEqual(c.MaxPrice) {
				want = append(want, prod.Name)
			}
		}
		assert.ElementsMatch(t, want, names(got), "max_price %d", p)
	}
}

func TestFilter_Rules(t *testing.T) {
	t.Parallel()
	products := sampleProducts()
	budget := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		criteria model.QueryCriteria
		want     []string
	}{
		{
			name:     "gender case-insensitive",
			criteria: model.QueryCriteria{Gender: "women", MaxPrice: budget},
			want:     []string{"Red Dress", "Silk Scarf", "Wool Coat"},
		},
		{
			name:     "category exact",
			criteria: model.QueryCriteria{Category: "DRESS", MaxPrice: budget},
			want:     []string{"Red Dress"},
		},
		{
			name:     "full outfit relaxes category",
			criteria: model.QueryCriteria{Category: "Full outfit", Gender: "Men", MaxPrice: budget},
			want:     []string{"Navy Blazer", "Black Jeans"},
		},
		{
			name:     "full outfit keeps per-item price",
			criteria: model.QueryCriteria{Category: "Full outfit", MaxPrice: decimal.NewFromInt(100)},
			want:     []string{"White Sneakers", "Black Jeans", "Silk Scarf"},
		},
		{
			name:     "color substring",
			criteria: model.QueryCriteria{Color: "red", MaxPrice: budget},
			want:     []string{"Red Dress", "Silk Scarf"},
		},
		{
			name:     "color any",
			criteria: model.QueryCriteria{Color: "Any", MaxPrice: decimal.NewFromInt(60)},
			want:     []string{"Black Jeans", "Silk Scarf"},
		},
		{
			name:     "occasion tags OR",
			criteria: model.QueryCriteria{OccasionTags: []string{"Party", "weekend"}, MaxPrice: budget},
			want:     []string{"Red Dress", "Black Jeans", "Silk Scarf"},
		},
		{
			name:     "style and occasion both apply",
			criteria: model.QueryCriteria{OccasionTags: []string{"office"}, StyleTags: []string{"ELEGANT"}, MaxPrice: budget},
			want:     []string{"Wool Coat"},
		},
		{
			name:     "nothing matches",
			criteria: model.QueryCriteria{Category: "Hat", MaxPrice: budget},
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(products, tt.criteria, 100, nil)
			assert.ElementsMatch(t, tt.want, names(got))
		})
	}
}

func TestFilter_TagIntersectionNeverEmpty(t *testing.T) {
	t.Parallel()
	c := model.QueryCriteria{OccasionTags: []string{"casual", "party"}, MaxPrice: decimal.NewFromInt(1000)}

	got := Filter(sampleProducts(), c, 100, nil)
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, hasAnyFold(p.OccasionTags, c.OccasionTags), p.Name)
	}
}

func TestFilter_Limit(t *testing.T) {
	t.Parallel()
	c := model.QueryCriteria{MaxPrice: decimal.NewFromInt(1000)}

	assert.Len(t, Filter(sampleProducts(), c, 2, nil), 2)
	assert.Len(t, Filter(sampleProducts(), c, 0, nil), len(sampleProducts()))

	many := make([]model.Product, 0, 50)
	for range 50 {
		many = append(many, sampleProducts()[0])
	}
	assert.Len(t, Filter(many, c, 0, nil), DefaultLimit)
	assert.Len(t, Filter(many, c, RetrievalLimit, nil), RetrievalLimit)
}

func TestFilter_SeededShuffleIsReproducible(t *testing.T) {
	t.Parallel()
	c := model.QueryCriteria{MaxPrice: decimal.NewFromInt(1000)}

	a := Filter(sampleProducts(), c, 10, rand.New(rand.NewPCG(1, 2)))
	b := Filter(sampleProducts(), c, 10, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, names(a), names(b))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	products := sampleProducts()
	before := names(products)

	Filter(products, model.QueryCriteria{MaxPrice: decimal.NewFromInt(1000)}, 10, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, before, names(products))
}

func hasAnyFold(tags, want []string) bool {
	for _, t := range tags {
		for _, w := range want {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}
