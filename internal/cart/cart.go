// Package cart owns the shopping cart state: an ordered sequence of lines
// keyed by product id. Every mutation persists the full sequence, refreshes
// the attached view, and may emit a notification, in that order.
package cart

import (
	"sync"

	"warung/internal/catalog"
	"warung/internal/notify"
)

// Line is one product-id-keyed entry in the cart. Quantity is always >= 1;
// a line that would drop to zero is removed instead.
type Line struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    int64  `yaml:"price"`
	Image    string `yaml:"image,omitempty"`
	Artisan  string `yaml:"artisan,omitempty"`
	Quantity int    `yaml:"quantity"`
}

// Store is the persistent slot for the serialized line sequence.
type Store interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

type Cart struct {
	mu       sync.RWMutex
	lines    []Line
	store    Store
	sink     notify.Sink
	onChange func(*Cart)
}

type Option func(*Cart)

// WithSink attaches the notification sink mutations report to.
func WithSink(sink notify.Sink) Option {
	return func(c *Cart) { c.sink = sink }
}

// WithObserver attaches the view-refresh hook, invoked after persist and
// before notification on every mutation.
func WithObserver(fn func(*Cart)) Option {
	return func(c *Cart) { c.onChange = fn }
}

func New(store Store, opts ...Option) *Cart {
	c := &Cart{store: store}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load hydrates the cart from its store. A missing or unreadable slot
// yields an empty cart; hydration never fails on bad data. Lines with a
// non-positive quantity or a duplicate id are dropped (first wins).
func (c *Cart) Load() error {
	lines, err := c.store.Load()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(lines))
	sanitized := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ID == "" || l.Quantity < 1 || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		sanitized = append(sanitized, l)
	}

	c.mu.Lock()
	c.lines = sanitized
	c.mu.Unlock()
	return nil
}

// Add puts one unit of the product in the cart: an existing line for the
// same id gains quantity, otherwise a new line is appended. The product is
// not validated here.
func (c *Cart) Add(p catalog.Product) error {
	c.mu.Lock()
	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, Line{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Artisan:  p.Artisan,
			Quantity: 1,
		})
	}
	c.mu.Unlock()

	return c.committed("Added to cart: "+p.Name, notify.SeveritySuccess)
}

// Remove drops the line with the given id. Removing an absent id is a
// silent no-op with no persistence or notification.
func (c *Cart) Remove(id string) error {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	name := c.lines[i].Name
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.mu.Unlock()

	return c.committed("Removed from cart: "+name, notify.SeverityInfo)
}

// SetQuantity sets the line's quantity to an absolute value. A quantity of
// zero or less behaves exactly as Remove. Setting an absent id is a no-op.
func (c *Cart) SetQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(id)
	}

	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	c.lines[i].Quantity = quantity
	c.mu.Unlock()

	return c.committed("", "")
}

// Clear empties the cart. No notification on this path.
func (c *Cart) Clear() error {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()

	return c.committed("", "")
}

func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, l := range c.lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// Lines returns a copy of the line sequence in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// indexOf requires c.mu held.
func (c *Cart) indexOf(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// committed runs the post-mutation sequence: persist, refresh the view,
// then notify. A save failure is returned after the view refresh so the
// in-memory mutation still shows; the notification is skipped in that case.
func (c *Cart) committed(message string, severity notify.Severity) error {
	err := c.store.Save(c.Lines())

	if c.onChange != nil {
		c.onChange(c)
	}
	if err != nil {
		return err
	}

	if message != "" && c.sink != nil {
		c.sink.Notify(message, severity)
	}
	return nil
}
