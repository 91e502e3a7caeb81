package advisor

import (
	"fmt"
	"strings"

	"github.com/sells-group/style-advisor/internal/model"
)

// tagSeparator joins tags in the candidate context and the prompt.
const tagSeparator = ", "

// FormatCandidates renders the candidate pool as numbered blocks with stable
// field labels. The model is told to echo the labelled values verbatim.
func FormatCandidates(products []model.Product) string {
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "Product %d:\n", i+1)
		b.WriteString("- ID: " + p.ID + "\n")
		b.WriteString("- Name: " + p.Name + "\n")
		b.WriteString("- Description: " + p.Description + "\n")
		b.WriteString("- Category: " + p.Category + "\n")
		b.WriteString("- Subcategory: " + p.SubCategory + "\n")
		b.WriteString("- Color: " + p.Color + "\n")
		b.WriteString("- Brand: " + p.Brand + "\n")
		b.WriteString("- Price: " + p.Price.String() + " " + p.Currency + "\n")
		b.WriteString("- Image URL: " + p.ImageURL + "\n")
		b.WriteString("- Purchase Link: " + p.PurchaseLink + "\n")
		b.WriteString("- Occasion Tags: " + strings.Join(p.OccasionTags, tagSeparator) + "\n")
		b.WriteString("- Style Tags: " + strings.Join(p.StyleTags, tagSeparator) + "\n")
		b.WriteString("\n")
	}
	return b.String()
}
