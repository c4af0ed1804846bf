package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional). Malformed input returns a *errors.ValidationError.
func ParseHex(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := 1.0
	switch len(raw) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(raw[6:], 16, 8)
		if err != nil {
			return Color{}, hexError(s, err)
		}
		alpha = float64(a) / 255
		raw = raw[:6]
	default:
		return Color{}, hexError(s, fmt.Errorf("expected 3, 6 or 8 hex digits, got %d", len(raw)))
	}

	// colorful.Hex scans with %x which tolerates a sign prefix; reject it up front.
	for _, r := range raw {
		if !isHexDigit(r) {
			return Color{}, hexError(s, fmt.Errorf("invalid hex digit %q", r))
		}
	}

	parsed, err := colorful.Hex("#" + raw)
	if err != nil {
		return Color{}, hexError(s, err)
	}

	return Color{R: parsed.R, G: parsed.G, B: parsed.B, A: alpha}, nil
}

// MustParseHex is ParseHex for compile-time constants; it panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	cl := c.Clamp()
	return colorful.Color{R: cl.R, G: cl.G, B: cl.B}.Hex()
}

// HexWithAlpha formats the colour as "#rrggbbaa".
func (c Color) HexWithAlpha() string {
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(Clamp01(c.A)*255)))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.HexWithAlpha()
}

// String implements fmt.Stringer.
func (h HsvColor) String() string {
	return fmt.Sprintf("hsv(%.1f, %.3f, %.3f, %.3f)", h.H, h.S, h.V, h.A)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexError(input string, err error) error {
	return fluenterrors.NewValidationError("hex", fmt.Sprintf("malformed hex colour %q", input), err)
}
