package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction separated by a gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
	maxWidth   int
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
		maxWidth:      -1,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. Vertical stacks hand their width to every
// child; horizontal stacks split it evenly after gaps.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	constraints := ctx.Constraints
	if s.maxWidth >= 0 && (constraints.MaxWidth < 0 || s.maxWidth < constraints.MaxWidth) {
		constraints.MaxWidth = s.maxWidth
	}

	childCtx := ctx.WithConstraints(s.childConstraints(constraints))
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if constraints.MaxWidth > 0 {
		style = style.MaxWidth(constraints.MaxWidth)
	}
	if len(views) == 0 {
		return style.Render("")
	}
	return style.Render(s.join(views))
}

func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	child.MinWidth = 0
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) join(views []string) string {
	pos := s.crossAlign.position()
	if s.gap > 0 {
		var sep string
		if s.direction == DirectionHorizontal {
			sep = strings.Repeat(" ", s.gap)
		} else {
			sep = strings.Repeat("\n", s.gap-1)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, sep)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(pos, views...)
	}
	return lipgloss.JoinVertical(pos, views...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells or lines.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithMaxWidth caps the stack width; -1 removes the cap.
func (s *Stack) WithMaxWidth(width int) *Stack {
	s.maxWidth = width
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
