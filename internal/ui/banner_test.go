package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("title renders after top border", func(t *testing.T) {
		output := stripANSI(RenderSummary("Order summary", nil))

		assert.Contains(t, output, "┌ Order summary")
	})

	t.Run("field renders with label and value", func(t *testing.T) {
		fields := []Field{{Label: "Total", Value: "Rp 150.000"}}
		output := stripANSI(RenderSummary("Order summary", fields))

		assert.Contains(t, output, "◇ Total · Rp 150.000")
	})

	t.Run("bottom border present", func(t *testing.T) {
		output := stripANSI(RenderSummary("Order summary", nil))

		assert.Contains(t, output, "└")
	})
}

func TestRenderSuccess(t *testing.T) {
	t.Run("banner carries order ref and total", func(t *testing.T) {
		output := stripANSI(RenderSuccess("ord-123", "Rp 300.000", nil))

		assert.Contains(t, output, "◆ Payment successful!")
		assert.Contains(t, output, "Order ord-123 · Rp 300.000")
	})

	t.Run("detail lines render with check marks", func(t *testing.T) {
		output := stripANSI(RenderSuccess("ord-123", "Rp 300.000", []string{
			"Thank you for your purchase!",
			"Your order will be processed and shipped shortly.",
		}))

		assert.Contains(t, output, "✓ Thank you for your purchase!")
		assert.Contains(t, output, "✓ Your order will be processed and shipped shortly.")
	})
}
