package proptest

import (
	"warung/internal/cart"

	"pgregory.net/rapid"
)

const (
	InvQuantityPositive   = "INV-1"
	InvLineIDUnique       = "INV-2"
	InvLenEqualsLines     = "INV-3"
	InvTotalItemsIsSum    = "INV-4"
	InvTotalPriceIsSum    = "INV-5"
	InvLoadDropsGarbage   = "INV-6"
	InvSaveLoadRoundTrip  = "INV-7"
	InvClearEmptiesCart   = "INV-8"
	InvModelConsistent    = "INV-9"
	InvSearchSubsetOfList = "INV-10"
	InvFilterSubsetOfList = "INV-11"
)

func verifyCartInvariants(t *rapid.T, c *cart.Cart) {
	lines := c.Lines()

	if c.Len() != len(lines) {
		t.Fatalf("[%s] violated: Len()=%d but len(Lines())=%d", InvLenEqualsLines, c.Len(), len(lines))
	}

	var items int
	var price int64
	idsSeen := make(map[string]bool)
	for _, l := range lines {
		if l.Quantity < 1 {
			t.Fatalf("[%s] violated: line %q has quantity %d", InvQuantityPositive, l.ID, l.Quantity)
		}
		if idsSeen[l.ID] {
			t.Fatalf("[%s] violated: duplicate line id %q", InvLineIDUnique, l.ID)
		}
		idsSeen[l.ID] = true
		items += l.Quantity
		price += l.Price * int64(l.Quantity)
	}

	if c.TotalItems() != items {
		t.Fatalf("[%s] violated: TotalItems()=%d but sum of quantities=%d", InvTotalItemsIsSum, c.TotalItems(), items)
	}
	if c.TotalPrice() != price {
		t.Fatalf("[%s] violated: TotalPrice()=%d but sum of line totals=%d", InvTotalPriceIsSum, c.TotalPrice(), price)
	}
}
