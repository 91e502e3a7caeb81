package advisor

import (
	"github.com/shopspring/decimal"

	"github.com/sells-group/style-advisor/internal/model"
)

// Reconcile sums the authoritative item prices. The budget only counts as
// exceeded in full-outfit mode; otherwise the total is informational.
func Reconcile(items []model.Product, budget decimal.Decimal, outfitMode bool) (decimal.Decimal, bool) {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Price)
	}
	return total, outfitMode && total.GreaterThan(budget)
}
