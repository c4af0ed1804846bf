package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Flyout is a bordered menu of labels with one highlighted entry. Command
// bars open one to list the commands that did not fit.
type Flyout struct {
	BaseComponent
	items    []string
	selected int
}

// NewFlyout creates a flyout listing items with the first one selected.
func NewFlyout(items ...string) *Flyout {
	f := &Flyout{BaseComponent: NewBaseComponent(), items: items}
	f.SetAppliers(Border(BorderVariantRounded), BorderColour(PaletteNeutral))
	return f
}

// View renders the flyout.
func (f *Flyout) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one line per item; an empty flyout renders nothing.
func (f *Flyout) ViewWithContext(ctx RenderContext) string {
	if len(f.items) == 0 {
		return ""
	}
	theme := ctx.Theme

	width := 0
	for _, item := range f.items {
		width = max(width, lipgloss.Width(item))
	}

	normal := TypographyStyle(theme, TypographyVariantBody).Width(width + 2).PaddingLeft(2)
	active := normal.UnsetPaddingLeft().
		Background(theme.Palette.Surface.Muted).
		Foreground(theme.Palette.Accent.Base).
		Bold(true)

	lines := make([]string, len(f.items))
	for i, item := range f.items {
		if i == f.selected {
			lines[i] = active.Render("› " + item)
			continue
		}
		lines[i] = normal.Render(item)
	}
	return f.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Items returns the labels.
func (f *Flyout) Items() []string {
	return f.items
}

// SetItems replaces the labels, keeping the selection in range.
func (f *Flyout) SetItems(items []string) *Flyout {
	f.items = items
	f.selected = min(max(f.selected, 0), max(len(items)-1, 0))
	return f
}

// Selected returns the highlighted index, or -1 when empty.
func (f *Flyout) Selected() int {
	if len(f.items) == 0 {
		return -1
	}
	return f.selected
}

// SelectedItem returns the highlighted label.
func (f *Flyout) SelectedItem() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	return f.items[f.selected], true
}

// Move shifts the selection by delta, wrapping around.
func (f *Flyout) Move(delta int) *Flyout {
	if n := len(f.items); n > 0 {
		f.selected = ((f.selected+delta)%n + n) % n
	}
	return f
}
