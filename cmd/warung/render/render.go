package render

import "warung/internal/notify"

// Renderer projects cart state into displayable text. Rendering must be
// idempotent: the same view renders to identical output.
type Renderer interface {
	RenderBadge(totalItems int) string
	RenderCart(view CartView) string
	RenderToasts(toasts []notify.Toast) string
}

type CartView struct {
	Items      []CartItem
	TotalItems int
	TotalPrice int64
}

type CartItem struct {
	ID       string
	Name     string
	Artisan  string
	Image    string
	Price    int64
	Quantity int
}

func (v CartView) IsEmpty() bool {
	return len(v.Items) == 0
}
