package tagging

import (
	"fmt"

	"github.com/sells-group/style-advisor/internal/model"
)

const tagPrompt = `Based on the following product description, generate a list of style tags and a list of occasion tags.
Tags should be relevant, concise (one or two words), and represent the character of the product.
Use English language.

**Product Description:**
Name: %s
Category: %s (%s)
Gender: %s
Color: %s
Usage Type: %s
Full description: %s

**Instructions for Tags:**
- Style Tags: Describe the aesthetic, e.g., elegant, casual, boho, minimalist, streetwear, sporty, retro, glamorous, classic, modern.
- Occasion Tags: Describe for which events the product is suitable, e.g., date night, office, party, beach, travel, everyday, wedding, formal, casual.
- Each list should contain between 2 and 5 tags.

**Response Format (JSON):**
` + "```json" + `
{
  "occasion_tags": ["tag1", "tag2"],
  "style_tags": ["tag1", "tag2"]
}
` + "```"

// BuildTagPrompt asks the model for occasion and style tags for p.
func BuildTagPrompt(p model.Product) string {
	return fmt.Sprintf(tagPrompt,
		p.Name,
		p.Category, p.SubCategory,
		p.Gender,
		p.Color,
		p.UsageType,
		p.Description,
	)
}
