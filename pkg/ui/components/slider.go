package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/slider"
)

// Slider draws a slider.State as "label ━━━━●──── value", with a tick row
// under the track when the state has steps.
type Slider struct {
	BaseComponent
	state      *slider.State
	label      string
	labelWidth int
	trackWidth int
	format     string
	focused    bool
	showTicks  bool
}

// NewSlider wraps state. The state stays owned by the caller; the component
// only reads it.
func NewSlider(state *slider.State) *Slider {
	return &Slider{
		BaseComponent: NewBaseComponent(),
		state:         state,
		format:        "%.2f",
		showTicks:     true,
	}
}

// View renders the slider.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, track and value on one line.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := s.TrackWidth(ctx)

	labelStyle := TypographyStyle(theme, TypographyVariantBody)
	if s.focused {
		labelStyle = TypographyStyle(theme, TypographyVariantBodyStrong).Foreground(theme.Palette.Accent.Base)
	}
	label := labelStyle.Width(s.labelCells()).Render(s.label)
	value := TypographyStyle(theme, TypographyVariantCaption).Render(s.valueText())

	track := s.Track(theme, width)
	line := track
	if s.labelCells() > 0 {
		line = label + " " + track
	}
	line += " " + value

	out := line
	if s.showTicks && s.state.Steps() > 0 {
		indent := strings.Repeat(" ", s.TrackOffset())
		out = lipgloss.JoinVertical(lipgloss.Left, line, indent+s.ticks(theme, width))
	}
	return s.ComputeStyle(theme).Render(out)
}

// Track draws the track alone, width cells wide.
func (s *Slider) Track(theme Theme, width int) string {
	if width <= 0 {
		return ""
	}
	thumb := ThumbCell(s.state, width)

	filled := lipgloss.NewStyle().Foreground(theme.Palette.Accent.Base)
	rest := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.Palette.Accent.Base).Bold(true)

	glyph := theme.Slider.Thumb
	if s.state.IsDragging() {
		glyph = theme.Slider.ThumbDragging
	}

	var b strings.Builder
	b.WriteString(filled.Render(strings.Repeat(theme.Slider.Filled, thumb)))
	b.WriteString(thumbStyle.Render(glyph))
	b.WriteString(rest.Render(strings.Repeat(theme.Slider.Rest, width-thumb-1)))
	return b.String()
}

func (s *Slider) ticks(theme Theme, width int) string {
	cells := []rune(strings.Repeat(" ", width))
	tick := []rune(theme.Slider.Tick)[0]
	for _, f := range s.state.StepFractions() {
		cells[cellForFraction(s.state, f, width)] = tick
	}
	return lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base).Render(string(cells))
}

// ThumbCell maps the state's thumb position onto one of width cells.
func ThumbCell(state *slider.State, width int) int {
	return cellForFraction(state, state.RawFraction(), width)
}

func cellForFraction(state *slider.State, fraction float64, width int) int {
	r := state.ThumbRadius()
	usable := math.Max(float64(width)-2*r, 0)
	cell := int(math.Floor(r + fraction*usable))
	return min(max(cell, 0), width-1)
}

// PointerOffset converts a cell index on the track into the pointer offset
// the state machine expects, the centre of that cell.
func PointerOffset(cell int) float64 {
	return float64(cell) + 0.5
}

// TrackWidth resolves the number of track cells for ctx.
func (s *Slider) TrackWidth(ctx RenderContext) int {
	if s.trackWidth > 0 {
		return s.trackWidth
	}
	avail := ctx.AvailableWidth(40) - s.TrackOffset() - 1 - lipgloss.Width(s.valueText())
	return max(avail, 3)
}

// TrackOffset is the column where the track starts.
func (s *Slider) TrackOffset() int {
	if n := s.labelCells(); n > 0 {
		return n + 1
	}
	return 0
}

func (s *Slider) labelCells() int {
	if s.labelWidth > 0 {
		return s.labelWidth
	}
	return lipgloss.Width(s.label)
}

func (s *Slider) valueText() string {
	return fmt.Sprintf(s.format, s.state.Value())
}

// WithLabel sets the label drawn before the track.
func (s *Slider) WithLabel(label string) *Slider {
	s.label = label
	return s
}

// WithLabelWidth pads the label so several sliders line up.
func (s *Slider) WithLabelWidth(width int) *Slider {
	s.labelWidth = width
	return s
}

// WithTrackWidth fixes the track width instead of filling the context.
func (s *Slider) WithTrackWidth(width int) *Slider {
	s.trackWidth = width
	return s
}

// WithFormat sets the fmt verb used for the value.
func (s *Slider) WithFormat(format string) *Slider {
	if format != "" {
		s.format = format
	}
	return s
}

// WithFocused highlights the label.
func (s *Slider) WithFocused(focused bool) *Slider {
	s.focused = focused
	return s
}

// WithTicks toggles the tick row.
func (s *Slider) WithTicks(show bool) *Slider {
	s.showTicks = show
	return s
}

// State returns the wrapped state.
func (s *Slider) State() *slider.State {
	return s.state
}
