package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"warung/internal/checkout"
	"warung/internal/ui"

	"github.com/charmbracelet/huh"
)

type CheckoutCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt"`
}

func (cmd *CheckoutCmd) Run(g *Globals) error {
	if g.Cart.Len() == 0 {
		// Let the processor emit its empty-cart warning.
		_, err := g.Checkout.Checkout(context.Background())
		flushToasts(g)
		if errors.Is(err, checkout.ErrEmptyCart) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, ui.RenderSummary("Order summary", cmd.summaryFields(g)))

	if !cmd.Yes && g.Interactive {
		proceed, err := confirmPayment()
		if err != nil || !proceed {
			return err
		}
	}

	receipt, err := runCheckout(g)
	flushToasts(g)
	if err != nil {
		return err
	}

	total := "Rp " + g.Render.FormatPrice(receipt.Total)
	fmt.Fprint(g.Out, ui.RenderSuccess(shortRef(receipt.OrderRef), total, []string{
		"Thank you for your purchase!",
		"Your order will be processed and shipped shortly.",
	}))

	waitDismiss(g)
	return nil
}

func (cmd *CheckoutCmd) summaryFields(g *Globals) []ui.Field {
	fields := make([]ui.Field, 0, g.Cart.Len()+1)
	for _, l := range g.Cart.Lines() {
		fields = append(fields, ui.Field{
			Label: fmt.Sprintf("%s x%d", l.Name, l.Quantity),
			Value: "Rp " + g.Render.FormatPrice(l.Price*int64(l.Quantity)),
		})
	}
	fields = append(fields, ui.Field{
		Label: "Total",
		Value: "Rp " + g.Render.FormatPrice(g.Cart.TotalPrice()),
	})
	return fields
}

func confirmPayment() (bool, error) {
	var proceed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Pay with QRIS?").
				Affirmative("Pay").
				Negative("Cancel").
				Value(&proceed),
		),
	).WithTheme(ui.ConfirmTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}

// shortRef trims a uuid down to the order reference shown to the customer.
func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}

// waitDismiss keeps the success banner up until the user dismisses it or
// the auto-dismiss timeout passes.
func waitDismiss(g *Globals) {
	if !g.Interactive {
		return
	}

	fmt.Fprint(g.Out, "Press Enter to continue...\n")

	dismissed := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		close(dismissed)
	}()

	select {
	case <-dismissed:
	case <-time.After(checkout.SuccessDismiss):
	}
}
