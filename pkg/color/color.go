// Package color converts between the RGBA and HSVA colour models used by the
// colour picker and themes.
//
// Every conversion is total: out-of-range channels are clamped to [0,1] and
// hues are wrapped modulo 360 instead of being rejected.
package color

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Color is an RGBA colour with float channels in [0,1].
type Color struct {
	R, G, B, A float64
}

// HsvColor is a colour in the HSV model. H is in degrees [0,360); S, V and A
// are in [0,1].
type HsvColor struct {
	H, S, V, A float64
}

// RGBA builds a Color from raw channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB builds an opaque Color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// HSVA builds an HsvColor from raw components.
func HSVA(h, s, v, a float64) HsvColor {
	return HsvColor{H: h, S: s, V: v, A: a}
}

// Clamp01 clamps v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WrapHue maps any finite angle into [0,360). Non-finite input maps to 0.
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative value can land exactly on 360 after the fixup.
	if h >= 360 {
		h = 0
	}
	return h
}

// RGBAToHSVA converts RGBA channels to HSVA.
func RGBAToHSVA(r, g, b, a float64) (h, s, v, alpha float64) {
	r, g, b = Clamp01(r), Clamp01(g), Clamp01(b)

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}

	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}

	return WrapHue(h), s, v, Clamp01(a)
}

// HSVAToRGBA converts HSVA components to RGBA.
func HSVAToRGBA(h, s, v, a float64) (r, g, b, alpha float64) {
	h = WrapHue(h)
	s, v = Clamp01(s), Clamp01(v)
	alpha = Clamp01(a)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	switch sector := int(h / 60); sector {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m, alpha
}

// HSV converts the colour to the HSV model.
func (c Color) HSV() HsvColor {
	h, s, v, a := RGBAToHSVA(c.R, c.G, c.B, c.A)
	return HsvColor{H: h, S: s, V: v, A: a}
}

// Clamp returns the colour with every channel clamped to [0,1].
func (c Color) Clamp() Color {
	return Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B), A: Clamp01(c.A)}
}

// WithAlpha returns a copy of the colour with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	cl := c.Clamp()
	a = uint32(math.Round(cl.A * 0xffff))
	r = uint32(math.Round(cl.R * cl.A * 0xffff))
	g = uint32(math.Round(cl.G * cl.A * 0xffff))
	b = uint32(math.Round(cl.B * cl.A * 0xffff))
	return r, g, b, a
}

// Lipgloss returns the colour as a lipgloss hex colour. Alpha is dropped since
// terminals have no notion of translucency.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// RGB converts the colour back to the RGB model.
func (h HsvColor) RGB() Color {
	r, g, b, a := HSVAToRGBA(h.H, h.S, h.V, h.A)
	return Color{R: r, G: g, B: b, A: a}
}

// WithHue returns a copy with the hue replaced (wrapped into [0,360)).
func (h HsvColor) WithHue(hue float64) HsvColor {
	h.H = WrapHue(hue)
	return h
}

// WithSaturation returns a copy with the saturation replaced (clamped).
func (h HsvColor) WithSaturation(s float64) HsvColor {
	h.S = Clamp01(s)
	return h
}

// WithValue returns a copy with the value replaced (clamped).
func (h HsvColor) WithValue(v float64) HsvColor {
	h.V = Clamp01(v)
	return h
}

// WithAlpha returns a copy with the alpha replaced (clamped).
func (h HsvColor) WithAlpha(a float64) HsvColor {
	h.A = Clamp01(a)
	return h
}
