package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"warung/internal/cart"
	"warung/internal/catalog"

	"pgregory.net/rapid"
)

const (
	minProducts        = 0
	maxProducts        = 20
	typicalMinProducts = 1
	typicalMaxProducts = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenProduct(opts ...ProductGenOpt) catalog.Product {
	return GenProduct(h.T, opts...)
}

type CartHarness struct {
	Harness
	Cart *cart.Cart
}

// CartPath is where this iteration's cart file lives.
func (h *CartHarness) CartPath() string {
	return filepath.Join(h.Dir, "cart.yaml")
}

func (h *CartHarness) MustAdd(opts ...ProductGenOpt) catalog.Product {
	p := h.GenProduct(opts...)
	if err := h.Cart.Add(p); err != nil {
		h.T.Fatalf("failed to add product: %v", err)
	}
	return p
}

// AddProducts draws a batch of distinct products and adds each one once.
func (h *CartHarness) AddProducts(minCount, maxCount int) []catalog.Product {
	var added []catalog.Product
	seen := make(map[string]bool)
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numProducts")
	for range n {
		p := h.GenProduct()
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if err := h.Cart.Add(p); err != nil {
			h.T.Fatalf("failed to add product: %v", err)
		}
		added = append(added, p)
	}
	return added
}

func RunWithCart(t *testing.T, fn func(h *CartHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		store, err := cart.NewYAMLStore(filepath.Join(iterDir, "cart.yaml"))
		if err != nil {
			rt.Fatalf("failed to create store: %v", err)
		}

		harness := &CartHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Cart: cart.New(store),
		}

		fn(harness)
	})
}
