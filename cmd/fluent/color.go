package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

type colorOptions struct {
	hsv string
}

func newColorCmd(app *appContext) *cobra.Command {
	opts := colorOptions{}

	cmd := &cobra.Command{
		Use:   "color [hex]",
		Short: "Convert a colour between hex, RGBA and HSVA",
		Example: `  fluent color '#0078d4'
  fluent color ff000080
  fluent color --hsv 210,1,0.83
  fluent color --hsv 0,1,1,0.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveColor(args, opts)
			if err != nil {
				return err
			}
			app.log.WithFields(map[string]any{"color": c.HexWithAlpha()}).Debug("colour converted")
			return printColor(cmd, c)
		},
	}

	cmd.Flags().StringVar(&opts.hsv, "hsv", "", "HSV input as h,s,v[,a] with h in degrees and s, v, a in [0,1]")

	return cmd
}

func resolveColor(args []string, opts colorOptions) (color.Color, error) {
	switch {
	case len(args) == 1 && opts.hsv != "":
		return color.Color{}, fmt.Errorf("give either a hex colour or --hsv, not both")
	case len(args) == 1:
		return color.ParseHex(args[0])
	case opts.hsv != "":
		hsv, err := parseHSV(opts.hsv)
		if err != nil {
			return color.Color{}, err
		}
		return hsv.RGB(), nil
	default:
		return color.Color{}, fmt.Errorf("a hex colour or --hsv is required")
	}
}

// parseHSV reads "h,s,v" or "h,s,v,a". Alpha defaults to 1.
func parseHSV(s string) (color.HsvColor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.HsvColor{}, fluenterrors.NewValidationError("hsv", "expected h,s,v or h,s,v,a", nil)
	}

	values := []float64{0, 0, 0, 1}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return color.HsvColor{}, fluenterrors.NewValidationError("hsv", fmt.Sprintf("component %d is not a number", i+1), err)
		}
		values[i] = v
	}
	return color.HSVA(values[0], values[1], values[2], values[3]), nil
}

func printColor(cmd *cobra.Command, c color.Color) error {
	hsv := c.HSV()
	swatch := lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(strings.Repeat(components.HueGlyph, 4))

	t := newTable().Rows(
		[]string{"swatch", swatch},
		[]string{"hex", c.Hex()},
		[]string{"hexa", c.HexWithAlpha()},
		[]string{"rgba", fmt.Sprintf("%.3f %.3f %.3f %.3f", c.R, c.G, c.B, c.A)},
		[]string{"rgb8", fmt.Sprintf("%d %d %d", to8(c.R), to8(c.G), to8(c.B))},
		[]string{"hsva", fmt.Sprintf("%.1f° %.3f %.3f %.3f", hsv.H, hsv.S, hsv.V, hsv.A)},
	)
	return printTable(cmd.OutOrStdout(), t)
}

func to8(v float64) int {
	return int(color.Clamp01(v)*255 + 0.5)
}
