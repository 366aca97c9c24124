package main

import (
	"errors"
	"fmt"

	"warung/internal/catalog"
)

type AddCmd struct {
	ID string `arg:"" help:"Product id to add" completion:"warung products -n"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	product, err := g.Catalog.Get(cmd.ID)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no product with id %q (see 'warung products')", cmd.ID)
	}
	if err != nil {
		return err
	}

	if err := g.Cart.Add(product); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	flushToasts(g)
	return nil
}
