package advisor

import (
	"fmt"

	"github.com/sells-group/style-advisor/internal/model"
)

// Ground matches each suggestion against the pool and returns the pool's own
// products in suggestion order. A suggestion matches by echoed ID when that
// ID is in the pool, otherwise by exact (name, category). Unmatched
// suggestions are dropped and reported as warnings.
func Ground(suggested []model.SuggestedItem, pool []model.Product) ([]model.Product, []model.Warning) {
	byID := make(map[string]int, len(pool))
	byKey := make(map[model.Key]int, len(pool))
	for i := len(pool) - 1; i >= 0; i-- {
		// Iterate backwards so the first pool entry wins on collisions.
		if pool[i].ID != "" {
			byID[pool[i].ID] = i
		}
		byKey[pool[i].Key()] = i
	}

	items := make([]model.Product, 0, len(suggested))
	var warnings []model.Warning
	for _, s := range suggested {
		if i, ok := byID[s.ID]; ok && s.ID != "" {
			items = append(items, pool[i])
			continue
		}
		if i, ok := byKey[model.Key{Name: s.Name, Category: s.Category}]; ok {
			items = append(items, pool[i])
			continue
		}
		warnings = append(warnings, model.Warning{
			Kind:     model.WarningUngroundedSuggestion,
			Name:     s.Name,
			Category: s.Category,
			Message:  fmt.Sprintf("suggested product %q (%s) not found in the candidate pool", s.Name, s.Category),
		})
	}
	return items, warnings
}
