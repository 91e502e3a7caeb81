package advisor

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sells-group/style-advisor/internal/model"
)

// Pool sizes handed to the model.
const (
	DefaultLimit   = 20
	RetrievalLimit = 30
)

// Filter returns the products matching every active criterion, shuffled with
// rng and truncated to limit. A nil rng uses the global source. The per-item
// max price always applies, including in full-outfit mode.
func Filter(products []model.Product, c model.QueryCriteria, limit int, rng *rand.Rand) []model.Product {
	if limit <= 0 {
		limit = DefaultLimit
	}

	m := newMatcher(c)
	matched := make([]model.Product, 0)
	for _, p := range products {
		if m.match(p) {
			matched = append(matched, p)
		}
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// matcher holds the folded criteria for one Filter call. cases.Caser is
// stateful, so each call builds its own.
type matcher struct {
	fold     cases.Caser
	c        model.QueryCriteria
	gender   string
	category string
	color    string
	occasion map[string]struct{}
	style    map[string]struct{}
}

func newMatcher(c model.QueryCriteria) *matcher {
	m := &matcher{fold: cases.Fold(), c: c}
	if !model.IsWildcard(c.Gender) {
		m.gender = m.key(c.Gender)
	}
	if !model.IsWildcard(c.Category) && !c.IsFullOutfit() {
		m.category = m.key(c.Category)
	}
	if !model.IsWildcard(c.Color) {
		m.color = m.key(c.Color)
	}
	m.occasion = m.tagSet(c.OccasionTags)
	m.style = m.tagSet(c.StyleTags)
	return m
}

func (m *matcher) key(s string) string {
	return m.fold.String(strings.TrimSpace(s))
}

func (m *matcher) tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if k := m.key(t); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func (m *matcher) match(p model.Product) bool {
	if m.gender != "" && m.key(p.Gender) != m.gender {
		return false
	}
	if m.category != "" && m.key(p.Category) != m.category {
		return false
	}
	if p.Price.GreaterThan(m.c.MaxPrice) {
		return false
	}
	if m.color != "" && !strings.Contains(m.key(p.Color), m.color) {
		return false
	}
	if len(m.occasion) > 0 && !m.anyTag(p.OccasionTags, m.occasion) {
		return false
	}
	if len(m.style) > 0 && !m.anyTag(p.StyleTags, m.style) {
		return false
	}
	return true
}

func (m *matcher) anyTag(tags []string, want map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := want[m.key(t)]; ok {
			return true
		}
	}
	return false
}
