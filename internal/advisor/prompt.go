package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sells-group/style-advisor/internal/model"
)

const recommendationPrompt = `You are an advanced AI Style Advisor. Your task is to propose personalized stylings based on user preferences and a provided list of available products.
Your response must be creative, practical, and entirely in English.

**User Preferences:**
- Occasion: %s
- Style: %s
- Budget: Up to %s %s
- Gender: %s
- Clothing Type/Outfit Type: %s
- Color: %s
- Additional Keywords: %s
- Preferred Occasion Tags: %s
- Preferred Style Tags: %s

**Available Products (Choose ONLY from this list to suggest to the user):**
%s
**Instructions:**
1. Based on the **User Preferences** and the **Available Products** list, propose a complete styling.
2. Describe why you chose this styling and what elements it consists of.
3. %s
4. %s
5. For each selected product, copy its details EXACTLY as they appear in the "Available Products" list (especially 'ID', 'Name', 'Category', 'Image URL', 'Purchase Link', 'Price'). Never invent products or change any field.

**Response Format (very important - MUST be a valid JSON object inside a ` + "```json" + ` fence):**
` + "```json" + `
{
  "overall_styling_proposal": "[Here, the styling description]",
  "suggested_products": [
    {
      "id": "[ID, EXACTLY from available products]",
      "name": "[Product Name, EXACTLY from available products]",
      "description": "[Brief description]",
      "color": "[Color, EXACTLY from available products]",
      "category": "[Category, EXACTLY from available products]",
      "price": [Price as a number, EXACTLY from available products],
      "image_url": "[Image URL, EXACTLY from available products]",
      "purchase_link": "[Purchase Link, EXACTLY from available products]"
    }
  ]
}
` + "```" + `
Ensure the JSON is valid and only includes products from the provided "Available Products" list.`

// BuildRecommendationPrompt assembles the full model request for one query.
func BuildRecommendationPrompt(c model.QueryCriteria, candidates, currency string) string {
	outfit := c.IsFullOutfit()
	return fmt.Sprintf(recommendationPrompt,
		c.Occasion,
		c.Style,
		c.Budget.String(), currency,
		orAny(c.Gender),
		c.CategoryLabel(),
		c.Color,
		c.Keywords,
		tagsOrNone(c.OccasionTags),
		tagsOrNone(c.StyleTags),
		candidates,
		selectionRule(c, outfit),
		budgetRule(c.Budget, currency, outfit),
	)
}

func selectionRule(c model.QueryCriteria, outfit bool) string {
	if outfit {
		return "Select 3-5 distinct products from the \"Available Products\" list that together form a complete outfit."
	}
	return fmt.Sprintf("Select exactly 1 product from the \"Available Products\" list matching the clothing type '%s'.", c.CategoryLabel())
}

func budgetRule(budget decimal.Decimal, currency string, outfit bool) string {
	if outfit {
		return fmt.Sprintf("The TOTAL price of the selected products MUST NOT EXCEED %s %s.", budget.String(), currency)
	}
	return fmt.Sprintf("The price of the selected product should be within the budget of up to %s %s.", budget.String(), currency)
}

func orAny(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Any"
	}
	return s
}

func tagsOrNone(tags []string) string {
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, tagSeparator)
}
