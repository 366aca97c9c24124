package catalog

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Version  int       `yaml:"version"`
	Products []Product `yaml:"products"`
}

// MemoryCatalog holds the product list in catalog order. It is immutable
// after construction.
type MemoryCatalog struct {
	products map[string]Product
	order    []string
}

func NewMemoryCatalog(products []Product) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		products: make(map[string]Product, len(products)),
		order:    make([]string, 0, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.products[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	return c, nil
}

// LoadFile reads a product catalog from a YAML file, falling back to the
// built-in fixtures when the file does not exist. Unlike the cart slot, a
// broken catalog file is a configuration error and is reported.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewMemoryCatalog(Fixtures())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}
	if len(file.Products) == 0 {
		return NewMemoryCatalog(Fixtures())
	}

	return NewMemoryCatalog(file.Products)
}

func (c *MemoryCatalog) Get(id string) (Product, error) {
	p, ok := c.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (c *MemoryCatalog) List() []Product {
	products := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.products[id])
	}
	return products
}

func (c *MemoryCatalog) Search(query string) []Product {
	if query == "" {
		return c.List()
	}

	query = strings.ToLower(query)
	var results []Product
	for _, id := range c.order {
		if matchesQuery(c.products[id], query) {
			results = append(results, c.products[id])
		}
	}
	return results
}

func matchesQuery(p Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Artisan), query) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Category), query)
}

func (c *MemoryCatalog) Filter(opts FilterOptions) []Product {
	var results []Product
	for _, id := range c.order {
		if matchesFilter(c.products[id], opts) {
			results = append(results, c.products[id])
		}
	}

	sortProducts(results, opts.SortBy, opts.Descending)
	return results
}

func matchesFilter(p Product, opts FilterOptions) bool {
	if opts.Category != "" && opts.Category != "all" && p.Category != opts.Category {
		return false
	}
	if opts.Query != "" && !matchesQuery(p, strings.ToLower(opts.Query)) {
		return false
	}
	return true
}

func sortProducts(products []Product, by SortField, descending bool) {
	if by == "" {
		return // keep catalog order
	}

	sort.SliceStable(products, func(i, j int) bool {
		less := compareProducts(products[i], products[j], by)
		if descending {
			return !less
		}
		return less
	})
}

func compareProducts(a, b Product, by SortField) bool {
	var less, equal bool

	switch by {
	case SortByPrice:
		less, equal = a.Price < b.Price, a.Price == b.Price
	case SortByRating:
		less, equal = a.Rating < b.Rating, a.Rating == b.Rating
	default:
		n1, n2 := strings.ToLower(a.Name), strings.ToLower(b.Name)
		less, equal = n1 < n2, n1 == n2
	}

	// Tiebreaker: use ID for deterministic ordering when primary key is equal
	if equal {
		return a.ID < b.ID
	}
	return less
}

func (c *MemoryCatalog) Categories() []string {
	var categories []string
	for _, id := range c.order {
		cat := c.products[id].Category
		if cat != "" && !slices.Contains(categories, cat) {
			categories = append(categories, cat)
		}
	}
	return categories
}

func (c *MemoryCatalog) Count() int {
	return len(c.products)
}
