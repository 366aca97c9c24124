package main

import (
	"fmt"
	"text/tabwriter"

	"warung/internal/catalog"
)

type ProductsCmd struct {
	Category string `short:"c" help:"Only show products in this category"`
	Search   string `short:"s" help:"Match against name, artisan, or category"`
	Sort     string `enum:"name,price,rating,catalog" default:"catalog" help:"Sort order"`
	Desc     bool   `help:"Sort descending"`
	IDs      bool   `short:"n" help:"Output only product ids (one per line)"`
}

func (cmd *ProductsCmd) Run(g *Globals) error {
	opts := catalog.FilterOptions{
		Category:   cmd.Category,
		Query:      cmd.Search,
		Descending: cmd.Desc,
	}
	if cmd.Sort != "catalog" {
		opts.SortBy = catalog.SortField(cmd.Sort)
	}

	products := g.Catalog.Filter(opts)

	if cmd.IDs {
		for _, p := range products {
			fmt.Fprintln(g.Out, p.ID)
		}
		return nil
	}

	if len(products) == 0 {
		fmt.Fprintln(g.Out, "No products found.")
		return nil
	}

	return cmd.printProducts(g, products)
}

func (cmd *ProductsCmd) printProducts(g *Globals, products []catalog.Product) error {
	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tARTISAN\tRATING")
	fmt.Fprintln(w, "--\t----\t-----\t--------\t-------\t------")

	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\tRp %s\t%s\t%s\t%.1f\n",
			p.ID, p.Name, g.Render.FormatPrice(p.Price), p.Category, p.Artisan, p.Rating)
	}

	return w.Flush()
}
