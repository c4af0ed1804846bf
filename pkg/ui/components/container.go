package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/ui"
)

// Container is a box around a vertical stack of children, with optional
// border, padding and margin. Cards and flyouts are built from it.
type Container struct {
	BaseComponent
	layout  *Stack
	border  *lipgloss.Border
	padding Spacing
	margin  Spacing
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container. Children see the width left after
// border and padding.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border != nil {
		style = style.BorderStyle(*c.border)
	}
	style = c.padding.apply(style, false)
	style = c.margin.apply(style, true)

	inner := ctx.Constraints
	if inner.MaxWidth >= 0 {
		inner.MaxWidth = max(inner.MaxWidth-style.GetHorizontalFrameSize(), 0)
	}
	inner.MinWidth = 0

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(ctx.WithConstraints(inner))
	}
	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = &border
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Card is a rounded, bordered container with an optional title line.
type Card struct {
	*Container
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...)
	container.SetAppliers(CardBaseStyle()...)
	return &Card{Container: container}
}

// WithTitle puts a subtitle-styled header above the card's children.
func (c *Card) WithTitle(title string) *Card {
	header := NewHeader(title).WithAppliers(Typography(TypographyVariantSubtitle))
	children := append([]ui.Renderable{header}, c.Children()...)
	c.layout = VStack(children...).WithGap(c.layout.gap)
	return c
}
