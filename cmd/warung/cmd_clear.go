package main

import "fmt"

type ClearCmd struct{}

func (cmd *ClearCmd) Run(g *Globals) error {
	if err := g.Cart.Clear(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	fmt.Fprintln(g.Out, "Cart cleared.")
	return nil
}
