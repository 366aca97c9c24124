package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"warung/cmd/warung/render"
	"warung/internal/cart"
	"warung/internal/catalog"
	"warung/internal/checkout"
	"warung/internal/notify"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGlobals(t *testing.T) (*Globals, *bytes.Buffer) {
	t.Helper()
	return newTestGlobalsAt(t, filepath.Join(t.TempDir(), "cart.yaml"))
}

// newTestGlobalsAt wires a Globals the way AfterApply does, but with a
// fixed-width renderer, an instant payment sleeper, and a buffer for
// output.
func newTestGlobalsAt(t *testing.T, cartPath string) (*Globals, *bytes.Buffer) {
	t.Helper()

	cat, err := catalog.NewMemoryCatalog(catalog.Fixtures())
	require.NoError(t, err)

	store, err := cart.NewYAMLStore(cartPath)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	rend := render.NewLipglossRenderer(buf, 80)
	toasts := notify.NewStack()

	crt := cart.New(store,
		cart.WithSink(toasts),
		cart.WithObserver(func(c *cart.Cart) {
			fmt.Fprint(buf, rend.RenderBadge(c.TotalItems()))
		}),
	)
	require.NoError(t, crt.Load())

	proc := checkout.NewProcessor(crt, toasts,
		checkout.WithSleeper(func(context.Context, time.Duration) error { return nil }),
	)

	g := &Globals{
		Catalog:  cat,
		Cart:     crt,
		Checkout: proc,
		Toasts:   toasts,
		Out:      buf,
		Render:   rend,
	}
	return g, buf
}

func addProduct(t *testing.T, g *Globals, id string) {
	t.Helper()
	cmd := AddCmd{ID: id}
	require.NoError(t, cmd.Run(g))
}

func TestAddCmd_Run(t *testing.T) {
	t.Run("adds product to cart", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := AddCmd{ID: "bag-1"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 1, g.Cart.Len())
		assert.Equal(t, int64(150000), g.Cart.TotalPrice())
	})

	t.Run("repeat adds increment quantity", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "bag-1")

		require.Equal(t, 1, g.Cart.Len())
		lines := g.Cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("returns error for unknown product id", func(t *testing.T) {
		g, _ := newTestGlobals(t)

		cmd := AddCmd{ID: "no-such-product"}
		err := cmd.Run(g)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no product with id")
		assert.Equal(t, 0, g.Cart.Len())
	})

	t.Run("prints toast and badge", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := AddCmd{ID: "hat-1"}
		err := cmd.Run(g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Added to cart: Topi Anyam Tradisional")
		assert.Contains(t, output, "Cart (1)")
	})
}

func TestRmCmd_Run(t *testing.T) {
	t.Run("removes line from cart", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "hat-1")

		cmd := RmCmd{ID: "bag-1"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 1, g.Cart.Len())
		assert.Equal(t, int64(75000), g.Cart.TotalPrice())
	})

	t.Run("removing an absent id is not an error", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "bag-1")

		cmd := RmCmd{ID: "hat-1"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 1, g.Cart.Len())
	})
}

func TestQtyCmd_Run(t *testing.T) {
	t.Run("sets line quantity", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "basket-1")

		cmd := QtyCmd{ID: "basket-1", Quantity: 5}
		err := cmd.Run(g)

		require.NoError(t, err)
		lines := g.Cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
		assert.Equal(t, int64(600000), g.Cart.TotalPrice())
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "basket-1")

		cmd := QtyCmd{ID: "basket-1", Quantity: 0}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 0, g.Cart.Len())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		g, _ := newTestGlobals(t)
		addProduct(t, g, "basket-1")

		cmd := QtyCmd{ID: "basket-1", Quantity: -3}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 0, g.Cart.Len())
	})
}

func TestCartCmd_Run(t *testing.T) {
	t.Run("shows empty cart message", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CartCmd{}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Your cart is empty.")
	})

	t.Run("shows lines and locale-formatted total", func(t *testing.T) {
		g, out := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "bag-1")
		addProduct(t, g, "hat-1")
		out.Reset()

		cmd := CartCmd{}
		err := cmd.Run(g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Cart (3)")
		assert.Contains(t, output, "Tas Anyam Premium")
		assert.Contains(t, output, "x2")
		assert.Contains(t, output, "Topi Anyam Tradisional")
		assert.Contains(t, output, "Total: Rp 375.000")
	})

	t.Run("ids mode prints one id per line", func(t *testing.T) {
		g, out := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "hat-1")
		out.Reset()

		cmd := CartCmd{IDs: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, "bag-1\nhat-1\n", out.String())
	})
}

func TestClearCmd_Run(t *testing.T) {
	g, out := newTestGlobals(t)
	addProduct(t, g, "bag-1")
	addProduct(t, g, "decor-1")
	out.Reset()

	cmd := ClearCmd{}
	err := cmd.Run(g)

	require.NoError(t, err)
	assert.Equal(t, 0, g.Cart.Len())
	assert.Contains(t, out.String(), "Cart cleared.")
}

func TestProductsCmd_Run(t *testing.T) {
	t.Run("lists all products with header", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ProductsCmd{Sort: "catalog"}
		err := cmd.Run(g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "ID")
		assert.Contains(t, output, "NAME")
		assert.Contains(t, output, "ARTISAN")
		assert.Contains(t, output, "Tas Anyam Premium")
		assert.Contains(t, output, "Rp 150.000")
		assert.Contains(t, output, "Ibu Sari - Yogyakarta")
	})

	t.Run("filters by category", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ProductsCmd{Category: "hats", Sort: "catalog", IDs: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, "hat-1\n", out.String())
	})

	t.Run("searches by keyword", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ProductsCmd{Search: "anyam", Sort: "catalog", IDs: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, "bag-1\nhat-1\n", out.String())
	})

	t.Run("sorts by price", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ProductsCmd{Sort: "price", IDs: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, "hat-1\nbasket-1\nbag-1\ndecor-1\n", out.String())
	})

	t.Run("reports no matches", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := ProductsCmd{Search: "zzz", Sort: "catalog"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "No products found.")
	})
}

func TestCheckoutCmd_Run(t *testing.T) {
	t.Run("warns on empty cart without failing", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CheckoutCmd{Yes: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Your cart is empty!")
		assert.Equal(t, checkout.StateIdle, g.Checkout.State())
	})

	t.Run("successful payment clears the cart", func(t *testing.T) {
		g, out := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "hat-1")
		out.Reset()

		cmd := CheckoutCmd{Yes: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Equal(t, 0, g.Cart.Len())
		assert.Equal(t, checkout.StateSucceeded, g.Checkout.State())

		output := out.String()
		assert.Contains(t, output, "Order summary")
		assert.Contains(t, output, "Processing payment...")
		assert.Contains(t, output, "Payment successful!")
		assert.Contains(t, output, "Rp 225.000")
		assert.Contains(t, output, "Thank you for your purchase!")
	})

	t.Run("summary lists every line with totals", func(t *testing.T) {
		g, out := newTestGlobals(t)
		addProduct(t, g, "bag-1")
		addProduct(t, g, "bag-1")
		out.Reset()

		cmd := CheckoutCmd{Yes: true}
		err := cmd.Run(g)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "Tas Anyam Premium x2")
		assert.Contains(t, output, "Rp 300.000")
	})
}

func TestIntegration_MultipleOperations(t *testing.T) {
	g, out := newTestGlobals(t)

	addProduct(t, g, "bag-1")
	addProduct(t, g, "hat-1")
	addProduct(t, g, "bag-1")

	qtyCmd := QtyCmd{ID: "hat-1", Quantity: 4}
	require.NoError(t, qtyCmd.Run(g))

	assert.Equal(t, 2, g.Cart.Len())
	assert.Equal(t, 6, g.Cart.TotalItems())
	assert.Equal(t, int64(600000), g.Cart.TotalPrice())

	rmCmd := RmCmd{ID: "bag-1"}
	require.NoError(t, rmCmd.Run(g))
	assert.Equal(t, int64(300000), g.Cart.TotalPrice())

	out.Reset()
	cartCmd := CartCmd{}
	require.NoError(t, cartCmd.Run(g))
	assert.Contains(t, out.String(), "Total: Rp 300.000")

	clearCmd := ClearCmd{}
	require.NoError(t, clearCmd.Run(g))
	assert.Equal(t, 0, g.Cart.Len())
}

func TestCartPersistence(t *testing.T) {
	cartPath := filepath.Join(t.TempDir(), "cart.yaml")

	g1, _ := newTestGlobalsAt(t, cartPath)
	addProduct(t, g1, "bag-1")
	addProduct(t, g1, "bag-1")
	addProduct(t, g1, "decor-1")

	g2, _ := newTestGlobalsAt(t, cartPath)
	assert.Equal(t, 2, g2.Cart.Len())
	assert.Equal(t, 3, g2.Cart.TotalItems())
	assert.Equal(t, int64(500000), g2.Cart.TotalPrice())

	lines := g2.Cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "bag-1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCompletionCmd_Run(t *testing.T) {
	t.Run("zsh", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompletionCmd{Shell: "zsh"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "#compdef warung")
	})

	t.Run("bash", func(t *testing.T) {
		g, out := newTestGlobals(t)

		cmd := CompletionCmd{Shell: "bash"}
		err := cmd.Run(g)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "complete -F _warung warung")
	})
}

func TestDataPathParsing(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "short flag with space",
			args:     []string{"-d", "/tmp/cart.yaml", "cart"},
			expected: "/tmp/cart.yaml",
		},
		{
			name:     "long flag with space",
			args:     []string{"--data", "/tmp/cart.yaml", "cart"},
			expected: "/tmp/cart.yaml",
		},
		{
			name:     "long flag with equals",
			args:     []string{"--data=/tmp/cart.yaml", "cart"},
			expected: "/tmp/cart.yaml",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cli := CLI{}

			parser, err := kong.New(&cli,
				kong.Name("warung"),
				kong.Description("Terminal storefront"),
				kong.Exit(func(int) {}),
			)
			require.NoError(t, err)
			_, _ = parser.Parse(tc.args)
			assert.Equal(t, tc.expected, cli.DataPath)
		})
	}
}

func TestDataPathDefault(t *testing.T) {
	cli := CLI{}

	parser, err := kong.New(&cli,
		kong.Name("warung"),
		kong.Description("Terminal storefront"),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	_, _ = parser.Parse([]string{"cart"})
	assert.Empty(t, cli.DataPath)
}
