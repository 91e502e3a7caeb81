package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/style-advisor/internal/model"
)

func TestBuildRecommendationPrompt_SingleItem(t *testing.T) {
	t.Parallel()
	c := model.QueryCriteria{
		Occasion: "wedding",
		Style:    "elegant",
		Category: "Dress",
		Color:    "Red",
		Budget:   decimal.NewFromInt(150),
	}

	out := BuildRecommendationPrompt(c, "Product 1:\n- Name: Red Dress\n", "PLN")

	assert.Contains(t, out, "- Occasion: wedding")
	assert.Contains(t, out, "- Budget: Up to 150 PLN")
	assert.Contains(t, out, "- Gender: Any")
	assert.Contains(t, out, "- Clothing Type/Outfit Type: Dress")
	assert.Contains(t, out, "- Preferred Occasion Tags: none")
	assert.Contains(t, out, "Product 1:\n- Name: Red Dress")
	assert.Contains(t, out, "Select exactly 1 product")
	assert.Contains(t, out, "within the budget of up to 150 PLN")
	assert.Contains(t, out, "```json\n{")
	assert.Contains(t, out, `"overall_styling_proposal"`)
	assert.Contains(t, out, `"suggested_products"`)
	assert.NotContains(t, out, "%!")
}

func TestBuildRecommendationPrompt_FullOutfit(t *testing.T) {
	t.Parallel()
	c := model.QueryCriteria{
		Category:     "Full outfit",
		Gender:       "Women",
		Budget:       decimal.NewFromInt(200),
		OccasionTags: []string{"party", "date"},
	}

	out := BuildRecommendationPrompt(c, "", "PLN")

	assert.Contains(t, out, "Select 3-5 distinct products")
	assert.Contains(t, out, "TOTAL price of the selected products MUST NOT EXCEED 200 PLN")
	assert.Contains(t, out, "- Preferred Occasion Tags: party, date")
	assert.Contains(t, out, "- Gender: Women")
}
