package main

import "fmt"

type CartCmd struct {
	IDs bool `short:"n" help:"Output only line ids (one per line)"`
}

func (cmd *CartCmd) Run(g *Globals) error {
	if cmd.IDs {
		for _, l := range g.Cart.Lines() {
			fmt.Fprintln(g.Out, l.ID)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderCart(cartView(g.Cart)))
	return nil
}
