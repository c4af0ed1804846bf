package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
	"github.com/alexisbeaulieu97/fluent/pkg/ui"
)

// BaseComponent carries the raw style and the theme-aware strategy shared by
// every component. Embed it to get WithStyle/WithAppliers behaviour.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the component style resolved against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after the current strategy. A custom strategy
// is wrapped so its logic still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

func (s Spacing) apply(style lipgloss.Style, margin bool) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if margin {
		return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bound a component during rendering. -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight >= 0 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// Row converts the constraints for an overflow row layout pass.
func (c Constraints) Row() overflowrow.Constraints {
	return overflowrow.Constraints{MinWidth: c.MinWidth, MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// RenderContext carries the theme and layout bounds down the component tree.
// Nothing is read from globals, so two themes can render side by side.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the light theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// AvailableWidth resolves the width a component may fill, or fallback when
// nothing bounds it.
func (r RenderContext) AvailableWidth(fallback int) int {
	switch {
	case r.Constraints.MaxWidth >= 0:
		return r.Constraints.MaxWidth
	case r.Constraints.MinWidth > 0:
		return r.Constraints.MinWidth
	case r.ParentWidth > 0:
		return r.ParentWidth
	default:
		return fallback
	}
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports context, falling back to View.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
