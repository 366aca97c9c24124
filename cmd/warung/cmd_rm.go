package main

import "fmt"

type RmCmd struct {
	ID string `arg:"" help:"Product id to remove from the cart" completion:"warung cart -n"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	if err := g.Cart.Remove(cmd.ID); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	flushToasts(g)
	return nil
}
