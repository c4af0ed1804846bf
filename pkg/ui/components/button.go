package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a labelled command. In a command bar it doubles as an overflow
// item, identified by its key.
type Button struct {
	BaseComponent
	key      string
	icon     string
	label    string
	variant  ButtonVariant
	disabled bool
	selected bool
}

// NewButton creates a standard button keyed by its label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		key:           strings.ToLower(label),
		label:         label,
		variant:       ButtonVariantStandard,
	}
}

// AccentButton creates an accent-filled button.
func AccentButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantAccent)
}

// SubtleButton creates a fill-less button, the command bar default.
func SubtleButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSubtle)
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.Text())
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.selected {
		style = Background(PaletteAccent)(style, theme).Bold(true)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	return style
}

// Text returns the icon and label as drawn, without styling.
func (b *Button) Text() string {
	if b.icon == "" {
		return b.label
	}
	if b.label == "" {
		return b.icon
	}
	return b.icon + " " + b.label
}

// Key implements ui.Keyed.
func (b *Button) Key() string {
	return b.key
}

// WithKey overrides the key derived from the label.
func (b *Button) WithKey(key string) *Button {
	b.key = key
	return b
}

// WithIcon prefixes the label with a glyph.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithSelected highlights the button.
func (b *Button) WithSelected(selected bool) *Button {
	b.selected = selected
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsSelected returns true if the button is highlighted.
func (b *Button) IsSelected() bool {
	return b.selected
}
