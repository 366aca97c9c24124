package catalog

import "errors"

var (
	ErrNotFound    = errors.New("product not found")
	ErrDuplicateID = errors.New("duplicate product id")
)

// Catalog is the read-only product reference data the storefront sells from.
type Catalog interface {
	Get(id string) (Product, error)
	List() []Product
	Search(query string) []Product
	Filter(opts FilterOptions) []Product
	Categories() []string
	Count() int
}

type FilterOptions struct {
	Category   string
	Query      string
	SortBy     SortField
	Descending bool
}

type SortField string

const (
	SortByName   SortField = "name"
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
)
