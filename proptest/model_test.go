package proptest

import (
	"slices"

	"warung/internal/cart"
	"warung/internal/catalog"

	"pgregory.net/rapid"
)

// StateTracker is an insertion-ordered id->quantity map, the simplest
// possible rendition of cart semantics.
type StateTracker struct {
	quantities map[string]int
	order      []string
}

func newStateTracker() *StateTracker {
	return &StateTracker{
		quantities: make(map[string]int),
	}
}

func (s *StateTracker) Add(id string) {
	if _, exists := s.quantities[id]; exists {
		s.quantities[id]++
		return
	}
	s.quantities[id] = 1
	s.order = append(s.order, id)
}

func (s *StateTracker) Remove(id string) {
	if _, exists := s.quantities[id]; !exists {
		return
	}
	delete(s.quantities, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
}

func (s *StateTracker) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}
	if _, exists := s.quantities[id]; !exists {
		return
	}
	s.quantities[id] = quantity
}

func (s *StateTracker) Clear() {
	s.quantities = make(map[string]int)
	s.order = nil
}

func (s *StateTracker) Quantity(id string) int {
	return s.quantities[id]
}

func (s *StateTracker) IDs() []string {
	return slices.Clone(s.order)
}

func (s *StateTracker) Count() int {
	return len(s.order)
}

func (s *StateTracker) TotalItems() int {
	var n int
	for _, q := range s.quantities {
		n += q
	}
	return n
}

// CheckedCart applies every operation to the real cart and the model and
// fails on any divergence.
type CheckedCart struct {
	real  *cart.Cart
	model *StateTracker
	t     *rapid.T
}

func NewCheckedCart(t *rapid.T, c *cart.Cart) *CheckedCart {
	return &CheckedCart{
		real:  c,
		model: newStateTracker(),
		t:     t,
	}
}

func (c *CheckedCart) Model() *StateTracker {
	return c.model
}

func (c *CheckedCart) Add(p catalog.Product) {
	if err := c.real.Add(p); err != nil {
		c.t.Fatalf("Add(%s) failed: %v", p.ID, err)
	}
	c.model.Add(p.ID)
	c.verify()
}

func (c *CheckedCart) Remove(id string) {
	if err := c.real.Remove(id); err != nil {
		c.t.Fatalf("Remove(%s) failed: %v", id, err)
	}
	c.model.Remove(id)
	c.verify()
}

func (c *CheckedCart) SetQuantity(id string, quantity int) {
	if err := c.real.SetQuantity(id, quantity); err != nil {
		c.t.Fatalf("SetQuantity(%s, %d) failed: %v", id, quantity, err)
	}
	c.model.SetQuantity(id, quantity)
	c.verify()
}

func (c *CheckedCart) Clear() {
	if err := c.real.Clear(); err != nil {
		c.t.Fatalf("Clear failed: %v", err)
	}
	c.model.Clear()
	c.verify()
}

func (c *CheckedCart) verify() {
	verifyCartInvariants(c.t, c.real)

	if c.real.Len() != c.model.Count() {
		c.t.Fatalf("[%s] violated: real len=%d model len=%d", InvModelConsistent, c.real.Len(), c.model.Count())
	}
	if c.real.TotalItems() != c.model.TotalItems() {
		c.t.Fatalf("[%s] violated: real items=%d model items=%d", InvModelConsistent, c.real.TotalItems(), c.model.TotalItems())
	}

	lines := c.real.Lines()
	modelIDs := c.model.IDs()
	for i, l := range lines {
		if l.ID != modelIDs[i] {
			c.t.Fatalf("[%s] violated: position %d holds %q, model holds %q", InvModelConsistent, i, l.ID, modelIDs[i])
		}
		if l.Quantity != c.model.Quantity(l.ID) {
			c.t.Fatalf("[%s] violated: line %q quantity real=%d model=%d", InvModelConsistent, l.ID, l.Quantity, c.model.Quantity(l.ID))
		}
	}
}
