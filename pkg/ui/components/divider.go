package components

import (
	"strings"
)

// Divider renders a horizontal rule that fills the available width.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with a light rule.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetAppliers(Foreground(PaletteNeutral))
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider across the context width; an explicit
// width wins, 40 cells when nothing bounds it.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.AvailableWidth(40)
	}
	if width <= 0 {
		return ""
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
