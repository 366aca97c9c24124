package main

import (
	"fmt"
	"os"

	"warung/cmd/warung/render"
	"warung/internal/cart"
	"warung/internal/catalog"
	"warung/internal/checkout"
	"warung/internal/config"
	"warung/internal/logging"
	"warung/internal/notify"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/x/term"
)

type CLI struct {
	Products   ProductsCmd   `cmd:"" aliases:"p" help:"Browse the product catalog"`
	Add        AddCmd        `cmd:"" aliases:"a" help:"Add a product to the cart"`
	Rm         RmCmd         `cmd:"" help:"Remove a line from the cart"`
	Qty        QtyCmd        `cmd:"" help:"Set the quantity of a cart line"`
	Cart       CartCmd       `cmd:"" aliases:"c" help:"Show the cart"`
	Clear      ClearCmd      `cmd:"" help:"Empty the cart"`
	Checkout   CheckoutCmd   `cmd:"" help:"Pay for the cart contents"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	DataPath    string `name:"data" short:"d" help:"Path to the cart file"`
	CatalogPath string `name:"catalog" help:"Path to a product catalog file"`
	LogLevel    string `name:"log-level" default:"warn" help:"Log verbosity (debug, info, warn, error)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	logging.New(os.Stderr, logging.Options{Level: c.LogLevel})

	cartPath := config.DefaultCartPath()
	if c.DataPath != "" {
		var err error
		if cartPath, err = config.ExpandPath(c.DataPath); err != nil {
			return fmt.Errorf("invalid cart path: %w", err)
		}
	}
	catalogPath := config.DefaultCatalogPath()
	if c.CatalogPath != "" {
		var err error
		if catalogPath, err = config.ExpandPath(c.CatalogPath); err != nil {
			return fmt.Errorf("invalid catalog path: %w", err)
		}
	}

	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store, err := cart.NewYAMLStore(cartPath)
	if err != nil {
		return fmt.Errorf("failed to open cart slot: %w", err)
	}

	out := os.Stdout
	rend := render.NewLipglossRendererAuto(out)
	toasts := notify.NewStack()

	crt := cart.New(store,
		cart.WithSink(toasts),
		cart.WithObserver(func(c *cart.Cart) {
			fmt.Fprint(out, rend.RenderBadge(c.TotalItems()))
		}),
	)
	if err := crt.Load(); err != nil {
		return fmt.Errorf("failed to hydrate cart: %w", err)
	}

	globals := &Globals{
		Catalog:     cat,
		Cart:        crt,
		Checkout:    checkout.NewProcessor(crt, toasts),
		Toasts:      toasts,
		Out:         out,
		Render:      rend,
		Interactive: term.IsTerminal(out.Fd()) && term.IsTerminal(os.Stdin.Fd()),
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("warung"),
		kong.Description("Terminal storefront for Nusantara Eceng artisan goods"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
