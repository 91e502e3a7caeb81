// Package catalog loads the prepared product dataset into an immutable,
// in-memory store.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/sells-group/style-advisor/internal/model"
)

// DefaultCurrency is used when the dataset carries no currency.
const DefaultCurrency = "PLN"

var (
	// ErrDataNotFound means the catalog file does not exist.
	ErrDataNotFound = eris.New("catalog: data file not found")
	// ErrDataCorrupt means the file is not a valid product list.
	ErrDataCorrupt = eris.New("catalog: data file corrupt")
)

// productNamespace seeds the synthetic product IDs.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/sells-group/style-advisor/product"))

// Catalog is a read-only product collection. It is never mutated after Load
// and may be shared between goroutines.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

// New builds a Catalog from already-decoded products, validating each one
// and assigning synthetic IDs where missing.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, eris.Wrapf(ErrDataCorrupt, "product %d (%q): %v", i, p.Name, err)
		}
		p.OccasionTags = model.NormalizeTags(p.OccasionTags)
		p.StyleTags = model.NormalizeTags(p.StyleTags)
		if p.ID == "" {
			p.ID = ProductID(p)
		}
		if _, dup := c.byID[p.ID]; dup {
			zap.L().Debug("catalog: duplicate product id",
				zap.String("id", p.ID),
				zap.String("name", p.Name),
			)
		} else {
			c.byID[p.ID] = len(c.products)
		}
		c.products = append(c.products, p)
	}
	return c, nil
}

// Load reads a JSON array of products from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrDataNotFound, "%s", path)
		}
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, eris.Wrapf(ErrDataCorrupt, "%s: %v", path, err)
	}

	c, err := New(products)
	if err != nil {
		return nil, err
	}

	zap.L().Info("catalog loaded",
		zap.String("path", path),
		zap.Int("products", c.Len()),
	)
	return c, nil
}

// Save writes products to path as indented JSON without HTML escaping.
func Save(path string, products []model.Product) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return eris.Wrap(err, "catalog: encode products")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrapf(err, "catalog: write %s", path)
	}
	return nil
}

// ProductID derives a stable identifier from the product's name, category
// and color, the same triple the preparation step de-duplicates on.
func ProductID(p model.Product) string {
	key := strings.Join([]string{p.Name, p.Category, p.Color}, "|")
	return uuid.NewSHA1(productNamespace, []byte(key)).String()
}

func validateProduct(p model.Product) error {
	if err := model.Validate(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return eris.New("product_name is blank")
	}
	if p.Price.IsNegative() {
		return eris.Errorf("price %s is negative", p.Price)
	}
	return nil
}

// Products returns the catalog contents. Callers must not modify the slice.
func (c *Catalog) Products() []model.Product {
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product by its synthetic ID.
func (c *Catalog) ByID(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Currency returns the currency of the first product, or DefaultCurrency.
func (c *Catalog) Currency() string {
	if len(c.products) == 0 || c.products[0].Currency == "" {
		return DefaultCurrency
	}
	return c.products[0].Currency
}

// Facets lists the distinct filter values present in the catalog.
type Facets struct {
	Genders      []string `json:"genders" yaml:"genders"`
	Categories   []string `json:"categories" yaml:"categories"`
	OccasionTags []string `json:"occasion_tags" yaml:"occasion_tags"`
	StyleTags    []string `json:"style_tags" yaml:"style_tags"`
}

// Facets returns sorted distinct genders, categories and tags. The
// "unspecified" sentinels are left out. Tags that differ only in case are
// listed once, under the first spelling in catalog order.
func (c *Catalog) Facets() Facets {
	genders := map[string]struct{}{}
	categories := map[string]struct{}{}
	occasions := newFoldedSet()
	styles := newFoldedSet()

	for _, p := range c.products {
		if p.Gender != "" && p.Gender != model.UnspecifiedGender {
			genders[p.Gender] = struct{}{}
		}
		if p.Category != "" && p.Category != model.UnspecifiedCategory {
			categories[p.Category] = struct{}{}
		}
		for _, t := range p.OccasionTags {
			occasions.add(t)
		}
		for _, t := range p.StyleTags {
			styles.add(t)
		}
	}

	return Facets{
		Genders:      sortedKeys(genders),
		Categories:   sortedKeys(categories),
		OccasionTags: occasions.sorted(),
		StyleTags:    styles.sorted(),
	}
}

// foldedSet keeps the first spelling of each case-folded value.
type foldedSet struct {
	fold  cases.Caser
	first map[string]string
}

func newFoldedSet() *foldedSet {
	return &foldedSet{fold: cases.Fold(), first: map[string]string{}}
}

func (s *foldedSet) add(v string) {
	key := s.fold.String(v)
	if _, ok := s.first[key]; !ok {
		s.first[key] = v
	}
}

func (s *foldedSet) sorted() []string {
	out := make([]string, 0, len(s.first))
	for _, v := range s.first {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
