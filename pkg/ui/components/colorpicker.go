package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
)

// Channel is one editable component of an HSV colour.
type Channel int

const (
	ChannelHue Channel = iota
	ChannelSaturation
	ChannelValue
	ChannelAlpha
)

// Channels lists the channels in display order.
var Channels = []Channel{ChannelHue, ChannelSaturation, ChannelValue, ChannelAlpha}

func (c Channel) String() string {
	switch c {
	case ChannelSaturation:
		return "saturation"
	case ChannelValue:
		return "value"
	case ChannelAlpha:
		return "alpha"
	default:
		return "hue"
	}
}

// Max returns the channel's upper bound: 360 for hue, 1 otherwise.
func (c Channel) Max() float64 {
	if c == ChannelHue {
		return 360
	}
	return 1
}

// Get reads the channel from hsv.
func (c Channel) Get(hsv color.HsvColor) float64 {
	switch c {
	case ChannelSaturation:
		return hsv.S
	case ChannelValue:
		return hsv.V
	case ChannelAlpha:
		return hsv.A
	default:
		return hsv.H
	}
}

// Set writes v into the channel of hsv.
func (c Channel) Set(hsv color.HsvColor, v float64) color.HsvColor {
	switch c {
	case ChannelSaturation:
		return hsv.WithSaturation(v)
	case ChannelValue:
		return hsv.WithValue(v)
	case ChannelAlpha:
		return hsv.WithAlpha(v)
	default:
		return hsv.WithHue(v)
	}
}

// Strip samples width colours sweeping channel across its range while the
// other channels of hsv stay fixed. Alpha strips are drawn fully opaque.
func Strip(hsv color.HsvColor, channel Channel, width int) []color.Color {
	if width <= 0 {
		return nil
	}
	out := make([]color.Color, width)
	for i := range out {
		f := 0.0
		if width > 1 {
			f = float64(i) / float64(width-1)
		}
		if channel == ChannelHue {
			// Stop just short of 360 so the last cell is not red again.
			f *= float64(width-1) / float64(width)
		}
		sample := channel.Set(hsv, f*channel.Max())
		if channel == ChannelAlpha {
			sample = sample.WithValue(hsv.V * f).WithAlpha(1)
		}
		out[i] = sample.RGB()
	}
	return out
}

// ColorPicker draws an HSV colour as one gradient strip per channel with a
// marker under the current value, followed by a swatch and its hex code.
type ColorPicker struct {
	BaseComponent
	value     color.HsvColor
	width     int
	focused   Channel
	showAlpha bool
}

// NewColorPicker creates a picker showing c.
func NewColorPicker(c color.Color) *ColorPicker {
	return &ColorPicker{
		BaseComponent: NewBaseComponent(),
		value:         c.HSV(),
	}
}

// View renders the picker.
func (p *ColorPicker) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every strip and the swatch line.
func (p *ColorPicker) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := p.width
	if width <= 0 {
		width = max(ctx.AvailableWidth(36)-12, 8)
	}

	rows := make([]string, 0, 2*len(Channels)+1)
	for _, ch := range p.channels() {
		labelStyle := TypographyStyle(theme, TypographyVariantCaption)
		if ch == p.focused {
			labelStyle = TypographyStyle(theme, TypographyVariantBodyStrong).Foreground(theme.Palette.Accent.Base)
		}
		label := labelStyle.Width(11).Render(fmt.Sprintf("%-10s", ch.String()))
		rows = append(rows, label+" "+paintStrip(Strip(p.value, ch, width)))
		rows = append(rows, strings.Repeat(" ", 12)+marker(theme, p.MarkerCell(ch, width), width))
	}

	rgb := p.value.RGB()
	swatch := lipgloss.NewStyle().Foreground(rgb.Lipgloss()).Render(strings.Repeat(HueGlyph, 4))
	details := TypographyStyle(theme, TypographyVariantBody).Render(fmt.Sprintf(
		"%s  H %3.0f°  S %3.0f%%  V %3.0f%%  A %3.0f%%",
		rgb.HexWithAlpha(), p.value.H, p.value.S*100, p.value.V*100, p.value.A*100,
	))
	rows = append(rows, swatch+"  "+details)

	return p.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *ColorPicker) channels() []Channel {
	if p.showAlpha {
		return Channels
	}
	return Channels[:3]
}

// MarkerCell is the strip cell under the current channel value.
func (p *ColorPicker) MarkerCell(ch Channel, width int) int {
	if width <= 1 {
		return 0
	}
	f := ch.Get(p.value) / ch.Max()
	return min(max(int(math.Round(f*float64(width-1))), 0), width-1)
}

func paintStrip(colors []color.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(HueGlyph))
	}
	return b.String()
}

func marker(theme Theme, cell, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", cell) +
		lipgloss.NewStyle().Foreground(theme.Palette.Accent.Base).Render("▲") +
		strings.Repeat(" ", width-cell-1)
}

// Value returns the colour being edited.
func (p *ColorPicker) Value() color.HsvColor {
	return p.value
}

// Color returns the colour being edited as RGBA.
func (p *ColorPicker) Color() color.Color {
	return p.value.RGB()
}

// SetValue replaces the colour, normalising every channel.
func (p *ColorPicker) SetValue(hsv color.HsvColor) *ColorPicker {
	p.value = hsv.WithHue(hsv.H).WithSaturation(hsv.S).WithValue(hsv.V).WithAlpha(hsv.A)
	return p
}

// SetColor replaces the colour from RGBA.
func (p *ColorPicker) SetColor(c color.Color) *ColorPicker {
	p.value = c.HSV()
	return p
}

// SetChannel writes one channel, wrapping hue and clamping the rest.
func (p *ColorPicker) SetChannel(ch Channel, v float64) *ColorPicker {
	p.value = ch.Set(p.value, v)
	return p
}

// WithWidth fixes the strip width.
func (p *ColorPicker) WithWidth(width int) *ColorPicker {
	p.width = width
	return p
}

// WithFocus highlights a channel label.
func (p *ColorPicker) WithFocus(ch Channel) *ColorPicker {
	p.focused = ch
	return p
}

// WithAlpha toggles the alpha strip.
func (p *ColorPicker) WithAlpha(show bool) *ColorPicker {
	p.showAlpha = show
	return p
}
