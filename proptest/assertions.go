package proptest

import (
	"warung/internal/cart"
	"warung/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertLinesEqual(t *rapid.T, expected, actual []cart.Line) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("cart lines mismatch (-want +got):\n%s", diff)
	}
}

func assertSameIDs(t *rapid.T, expected []catalog.Product, actual []cart.Line) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("length mismatch: expected %d, got %d", len(expected), len(actual))
	}
	expectedIDs := make(map[string]bool)
	for _, p := range expected {
		expectedIDs[p.ID] = true
	}
	for _, l := range actual {
		if !expectedIDs[l.ID] {
			t.Fatalf("unexpected ID %s in cart", l.ID)
		}
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Product) {
	t.Helper()
	superIDs := make(map[string]bool)
	for _, p := range superset {
		superIDs[p.ID] = true
	}
	for _, p := range subset {
		if !superIDs[p.ID] {
			t.Fatalf("subset contains ID %s not in superset", p.ID)
		}
	}
}
