package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a page or section title with an optional caption underneath.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header styled with the title ramp.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	caption := TypographyStyle(ctx.Theme, TypographyVariantCaption).Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, caption)
}

// WithAppliers replaces the header's style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a caption line under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header caption.
func (h *Header) Subtitle() string {
	return h.subtitle
}
