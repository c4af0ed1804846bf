package color

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

const tolerance = 1e-5

func TestRGBAToHSVA(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		in         Color
		h, s, v, a float64
	}{
		{name: "pure red", in: RGB(1, 0, 0), h: 0, s: 1, v: 1, a: 1},
		{name: "pure green", in: RGB(0, 1, 0), h: 120, s: 1, v: 1, a: 1},
		{name: "pure blue", in: RGB(0, 0, 1), h: 240, s: 1, v: 1, a: 1},
		{name: "magenta wraps below 360", in: RGB(1, 0, 0.5), h: 330, s: 1, v: 1, a: 1},
		{name: "grey has zero hue and saturation", in: RGBA(0.5, 0.5, 0.5, 0.25), h: 0, s: 0, v: 0.5, a: 0.25},
		{name: "black", in: RGB(0, 0, 0), h: 0, s: 0, v: 0, a: 1},
		{name: "out of range channels are clamped", in: RGBA(2, -1, -1, 3), h: 0, s: 1, v: 1, a: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hsv := tc.in.HSV()
			assert.InDelta(t, tc.h, hsv.H, tolerance)
			assert.InDelta(t, tc.s, hsv.S, tolerance)
			assert.InDelta(t, tc.v, hsv.V, tolerance)
			assert.InDelta(t, tc.a, hsv.A, tolerance)
		})
	}
}

func TestHSVAToRGBAWrapsAndClamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   HsvColor
		want Color
	}{
		{name: "hue 360 wraps to red", in: HSVA(360, 1, 1, 1), want: RGB(1, 0, 0)},
		{name: "negative hue wraps upward", in: HSVA(-120, 1, 1, 1), want: RGB(0, 0, 1)},
		{name: "large hue wraps", in: HSVA(720+120, 1, 1, 1), want: RGB(0, 1, 0)},
		{name: "saturation and value clamp", in: HSVA(60, 5, -2, 1), want: RGB(0, 0, 0)},
		{name: "alpha clamps", in: HSVA(0, 0, 1, 9), want: RGB(1, 1, 1)},
		{name: "yellow", in: HSVA(60, 1, 1, 0.5), want: RGBA(1, 1, 0, 0.5)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.in.RGB()
			assert.InDelta(t, tc.want.R, got.R, tolerance)
			assert.InDelta(t, tc.want.G, got.G, tolerance)
			assert.InDelta(t, tc.want.B, got.B, tolerance)
			assert.InDelta(t, tc.want.A, got.A, tolerance)
		})
	}
}

func TestPureRedRoundTrip(t *testing.T) {
	t.Parallel()

	hsv := RGBA(1, 0, 0, 1).HSV()
	assert.Equal(t, HSVA(0, 1, 1, 1), hsv)
	assert.Equal(t, RGBA(1, 0, 0, 1), hsv.RGB())
}

func TestRoundTripWithinTolerance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		in := RGBA(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
		maxC := math.Max(in.R, math.Max(in.G, in.B))
		minC := math.Min(in.R, math.Min(in.G, in.B))
		if maxC == minC || maxC == 0 {
			continue
		}

		out := in.HSV().RGB()
		require.InDelta(t, in.R, out.R, tolerance, "red channel for %v", in)
		require.InDelta(t, in.G, out.G, tolerance, "green channel for %v", in)
		require.InDelta(t, in.B, out.B, tolerance, "blue channel for %v", in)
		require.InDelta(t, in.A, out.A, tolerance, "alpha channel for %v", in)
	}
}

func TestHueAlwaysInRange(t *testing.T) {
	t.Parallel()

	for _, h := range []float64{-1e-12, -360, 359.9999999, 1e9, math.NaN(), math.Inf(1)} {
		got := WrapHue(h)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Color
	}{
		{input: "#ff0000", want: RGB(1, 0, 0)},
		{input: "00FF00", want: RGB(0, 1, 0)},
		{input: "#00f", want: RGB(0, 0, 1)},
		{input: "  #ffffff80 ", want: RGBA(1, 1, 1, 128.0/255)},
	}

	for _, tc := range cases {
		got, err := ParseHex(tc.input)
		require.NoError(t, err, tc.input)
		assert.InDelta(t, tc.want.R, got.R, tolerance, tc.input)
		assert.InDelta(t, tc.want.G, got.G, tolerance, tc.input)
		assert.InDelta(t, tc.want.B, got.B, tolerance, tc.input)
		assert.InDelta(t, tc.want.A, got.A, tolerance, tc.input)
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#12345", "#gg0000", "#+1+2+3", "#ff0000zz"} {
		_, err := ParseHex(input)
		require.Error(t, err, input)

		var validationErr *fluenterrors.ValidationError
		require.ErrorAs(t, err, &validationErr, input)
		assert.Equal(t, "hex", validationErr.Field)
	}
}

func TestHexFormatting(t *testing.T) {
	t.Parallel()

	c := MustParseHex("#0078d4")
	assert.Equal(t, "#0078d4", c.Hex())
	assert.Equal(t, "#0078d4ff", c.HexWithAlpha())
	assert.Equal(t, "#0078d4", string(c.Lipgloss()))
	assert.Equal(t, "#0078d480", c.WithAlpha(128.0/255).String())
}

func TestImageColorInterface(t *testing.T) {
	t.Parallel()

	r, g, b, a := RGBA(1, 0.5, 0, 0.5).RGBA()
	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0x4000), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8000), a)
}

func TestHsvHelpers(t *testing.T) {
	t.Parallel()

	base := HSVA(10, 0.5, 0.5, 1)
	assert.InDelta(t, 350.0, base.WithHue(-10).H, tolerance)
	assert.Equal(t, 1.0, base.WithSaturation(3).S)
	assert.Equal(t, 0.0, base.WithValue(-3).V)
	assert.Equal(t, 0.5, base.WithAlpha(0.5).A)
}
