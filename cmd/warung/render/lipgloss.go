package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"warung/internal/notify"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type LipglossRenderer struct {
	width   int
	r       *lipgloss.Renderer
	printer *message.Printer

	nameStyle    lipgloss.Style
	artisanStyle lipgloss.Style
	priceStyle   lipgloss.Style
	faintStyle   lipgloss.Style
	totalStyle   lipgloss.Style
	badgeStyle   lipgloss.Style

	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	warningStyle lipgloss.Style
	dangerStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:   width,
		r:       r,
		printer: message.NewPrinter(language.Indonesian),

		nameStyle:    r.NewStyle().Bold(true),
		artisanStyle: r.NewStyle().Faint(true),
		priceStyle:   r.NewStyle().Foreground(lipgloss.Color("10")),
		faintStyle:   r.NewStyle().Faint(true),
		totalStyle:   r.NewStyle().Bold(true),
		badgeStyle:   r.NewStyle().Bold(true),

		successStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("12")),
		warningStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
		dangerStyle:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

// FormatPrice renders a rupiah amount with Indonesian digit grouping and no
// currency symbol; callers apply the "Rp " prefix.
func (r *LipglossRenderer) FormatPrice(price int64) string {
	return r.printer.Sprintf("%d", price)
}

// RenderBadge is the cart count indicator: hidden entirely when the cart is
// empty, not rendered as zero.
func (r *LipglossRenderer) RenderBadge(totalItems int) string {
	if totalItems == 0 {
		return ""
	}
	return r.badgeStyle.Render(fmt.Sprintf("Cart (%d)", totalItems)) + "\n"
}

func (r *LipglossRenderer) RenderCart(view CartView) string {
	var sb strings.Builder

	if view.IsEmpty() {
		sb.WriteString(r.badgeStyle.Render("Cart"))
		sb.WriteString("\n\n")
		sb.WriteString("Your cart is empty. Run 'warung products' to start shopping.\n")
		return sb.String()
	}

	sb.WriteString(r.RenderBadge(view.TotalItems))
	sb.WriteString("\n")

	for _, item := range view.Items {
		sb.WriteString(r.renderItem(item))
		sb.WriteString("\n")
	}

	sb.WriteString(r.totalStyle.Render("Total: Rp " + r.FormatPrice(view.TotalPrice)))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item CartItem) string {
	name := r.nameStyle.Render(item.Name)
	qty := fmt.Sprintf("x%d", item.Quantity)

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(qty))
	headerLine := name + strings.Repeat(" ", padding) + qty

	lines := []string{headerLine}
	if item.Artisan != "" {
		lines = append(lines, r.artisanStyle.Render("  "+item.Artisan))
	}
	lines = append(lines, "  "+r.priceStyle.Render("Rp "+r.FormatPrice(item.Price)))
	if item.Image != "" {
		lines = append(lines, r.faintStyle.Render("  "+item.Image))
	}
	lines = append(lines, r.faintStyle.Render("  "+controlsHint(item)))

	return strings.Join(lines, "\n") + "\n"
}

// controlsHint maps the row's decrement/increment/remove controls back onto
// cart operations, binding the line id instead of splicing it into markup.
func controlsHint(item CartItem) string {
	return fmt.Sprintf("- qty %s %d · + qty %s %d · x rm %s",
		item.ID, item.Quantity-1, item.ID, item.Quantity+1, item.ID)
}

func (r *LipglossRenderer) RenderToasts(toasts []notify.Toast) string {
	var sb strings.Builder
	for _, t := range toasts {
		style, symbol := r.severityStyle(t.Severity)
		sb.WriteString(style.Render(symbol + " " + t.Message))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) severityStyle(s notify.Severity) (lipgloss.Style, string) {
	switch s {
	case notify.SeveritySuccess:
		return r.successStyle, "✓"
	case notify.SeverityWarning:
		return r.warningStyle, "!"
	case notify.SeverityDanger:
		return r.dangerStyle, "✗"
	default:
		return r.infoStyle, "•"
	}
}
