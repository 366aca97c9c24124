package proptest

import (
	"fmt"

	"warung/internal/catalog"

	"pgregory.net/rapid"
)

var (
	iterDirGen  = rapid.StringMatching(`[a-z]{8}`)
	idGen       = rapid.StringMatching(`[a-z]{3,8}-[0-9]`)
	queryGen    = rapid.StringMatching(`[a-z]{1,10}`)
	quantityGen = rapid.IntRange(1, 50)
)

func validNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z][a-zA-Z ]{0,30}`)
}

type ProductGenOpt func(*productGenConfig)

type productGenConfig struct {
	id *string
}

func WithID(id string) ProductGenOpt {
	return func(c *productGenConfig) {
		c.id = &id
	}
}

func GenProduct(t *rapid.T, opts ...ProductGenOpt) catalog.Product {
	cfg := &productGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var id string
	if cfg.id != nil {
		id = *cfg.id
	} else {
		id = idGen.Draw(t, "id")
	}

	return catalog.Product{
		ID:       id,
		Name:     validNameGen().Draw(t, "name"),
		Price:    rapid.Int64Range(0, 10_000_000).Draw(t, "price"),
		Category: rapid.SampledFrom([]string{"bags", "hats", "baskets", "decor"}).Draw(t, "category"),
		Artisan:  validNameGen().Draw(t, "artisan"),
		Rating:   rapid.Float64Range(0, 5).Draw(t, "rating"),
	}
}

func filterOptionsGen() *rapid.Generator[catalog.FilterOptions] {
	return rapid.Custom(func(t *rapid.T) catalog.FilterOptions {
		var query string
		if rapid.Bool().Draw(t, "hasQuery") {
			query = queryGen.Draw(t, "query")
		}

		sortFields := []catalog.SortField{"", catalog.SortByName, catalog.SortByPrice, catalog.SortByRating}

		return catalog.FilterOptions{
			Query:      query,
			Category:   rapid.SampledFrom([]string{"", "all", "bags", "hats", "baskets", "decor"}).Draw(t, "category"),
			SortBy:     rapid.SampledFrom(sortFields).Draw(t, "sortBy"),
			Descending: rapid.Bool().Draw(t, "desc"),
		}
	})
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("key: [unclosed"),
		rapid.Just("key: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("lines:\n  - id: missing\n  quantity: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func missingFieldsGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("version: 1\nlines:\n  - name: test\n"),
		rapid.Just("version: 1\nlines:\n  - id: abc-1\n"),
		rapid.Just("version: 1\nlines:\n  - quantity: 3\n"),
		rapid.Just("version: 1\nlines:\n  - {}\n"),
		rapid.Just("version: 1\nlines:\n  - id: abc-1\n    name: test\n"),
		rapid.Just("lines:\n  - id: abc-1\n    name: test\n    quantity: 2\n"),
	)
}

func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"unknown_field",
			"extra",
			"foo",
			"bar_baz",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			"string_value",
			"123",
			"true",
			"[1, 2, 3]",
			"{nested: value}",
		}).Draw(t, "fieldValue")

		return fmt.Sprintf(`version: 1
%s: %s
lines:
  - id: bag-1
    name: Tas Anyam Premium
    price: 150000
    quantity: 2
    %s: %s
`, extraField, extraValue, extraField, extraValue)
	})
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`version: "not_a_number"
lines: []
`),
		rapid.Just(`version: 1
lines:
  - id: 12345
    name: test-product
    quantity: 1
`),
		rapid.Just(`version: 1
lines:
  - id: bag-1
    name: [not, a, string]
    quantity: 1
`),
		rapid.Just(`version: 1
lines:
  - id: bag-1
    name: test-product
    quantity: "three"
`),
	)
}
