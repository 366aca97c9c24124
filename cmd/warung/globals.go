package main

import (
	"fmt"
	"io"

	"warung/cmd/warung/render"
	"warung/internal/cart"
	"warung/internal/catalog"
	"warung/internal/checkout"
	"warung/internal/notify"
)

type Globals struct {
	Catalog     catalog.Catalog
	Cart        *cart.Cart
	Checkout    *checkout.Processor
	Toasts      *notify.Stack
	Out         io.Writer
	Render      *render.LipglossRenderer
	Interactive bool
}

// flushToasts prints and dismisses everything the last operation queued.
func flushToasts(g *Globals) {
	toasts := g.Toasts.Flush()
	if len(toasts) == 0 {
		return
	}
	fmt.Fprint(g.Out, g.Render.RenderToasts(toasts))
}

func cartView(c *cart.Cart) render.CartView {
	lines := c.Lines()
	items := make([]render.CartItem, len(lines))
	for i, l := range lines {
		items[i] = render.CartItem{
			ID:       l.ID,
			Name:     l.Name,
			Artisan:  l.Artisan,
			Image:    l.Image,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
	}
	return render.CartView{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
