package main

import "fmt"

type QtyCmd struct {
	ID       string `arg:"" help:"Product id of the cart line" completion:"warung cart -n"`
	Quantity int    `arg:"" help:"New quantity (0 removes the line)"`
}

func (cmd *QtyCmd) Run(g *Globals) error {
	if err := g.Cart.SetQuantity(cmd.ID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	flushToasts(g)
	return nil
}
