package components

import (
	"strings"
)

// Spacer renders empty space of a fixed size.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one-line spacer width cells wide.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates an empty block height lines tall.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as blank cells.
func (s *Spacer) View() string {
	w := max(s.width, 0)
	h := max(s.height, 0)
	if w == 0 && h == 0 {
		return ""
	}
	if h <= 1 {
		return strings.Repeat(" ", w)
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	return strings.Join(lines, "\n")
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
