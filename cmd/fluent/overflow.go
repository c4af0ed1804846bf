package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
)

type overflowOptions struct {
	width       int
	spacing     int
	indicator   int
	policy      string
	arrangement string
	always      bool
}

func newOverflowCmd(app *appContext) *cobra.Command {
	opts := overflowOptions{}

	cmd := &cobra.Command{
		Use:   "overflow [flags] width[xheight]...",
		Short: "Lay out a row of fixed-size items and report what overflows",
		Example: `  fluent overflow --width 300 --spacing 8 --indicator 32 60 60 60 60 60
  fluent overflow --width 40 --policy center 10 10x2 10 10 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverflow(cmd, app, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", -1, "available width in cells; negative means unbounded")
	f.IntVar(&opts.spacing, "spacing", 0, "gap between neighbouring items")
	f.IntVar(&opts.indicator, "indicator", 3, "width of the overflow indicator; 0 disables it")
	f.StringVar(&opts.policy, "policy", "end", "which items overflow first: end, start or center")
	f.StringVar(&opts.arrangement, "arrangement", "start", "horizontal arrangement of kept items")
	f.BoolVar(&opts.always, "always", false, "show the overflow indicator even when nothing is hidden")

	return cmd
}

func runOverflow(cmd *cobra.Command, app *appContext, opts overflowOptions, args []string) error {
	policy, ok := overflowrow.ParsePolicy(opts.policy)
	if !ok {
		return fluenterrors.NewValidationError("policy", fmt.Sprintf("unknown overflow policy %q", opts.policy), nil)
	}
	arrangement, ok := overflowrow.ParseArrangement(opts.arrangement)
	if !ok {
		return fluenterrors.NewValidationError("arrangement", fmt.Sprintf("unknown arrangement %q", opts.arrangement), nil)
	}

	items := make([]overflowrow.Measurable, len(args))
	for i, arg := range args {
		w, h, err := parseItemSize(arg)
		if err != nil {
			return err
		}
		items[i] = overflowrow.FixedItem(strconv.Itoa(i), w, h)
	}

	var indicator overflowrow.Measurable
	if opts.indicator > 0 {
		indicator = overflowrow.FixedItem("overflow", opts.indicator, 1)
	}

	constraints := overflowrow.Unbounded()
	if opts.width >= 0 {
		constraints = overflowrow.WithMaxWidth(opts.width)
	}

	res := overflowrow.Layout(items, indicator, overflowrow.Options{
		Policy:                   policy,
		Spacing:                  opts.spacing,
		AlwaysShowOverflowAction: opts.always,
		Arrangement:              arrangement,
		VerticalAlign:            overflowrow.AlignCenter,
	}, constraints)

	app.log.WithFields(map[string]any{
		"items":    len(items),
		"hidden":   res.OverflowRange.Len(),
		"policy":   policy.String(),
		"maxWidth": opts.width,
	}).Debug("row laid out")

	return printLayout(cmd, res)
}

// parseItemSize reads "W" or "WxH"; the height defaults to 1.
func parseItemSize(s string) (int, int, error) {
	wPart, hPart, hasHeight := strings.Cut(strings.ToLower(s), "x")
	w, err := strconv.Atoi(wPart)
	if err != nil || w < 0 {
		return 0, 0, fluenterrors.NewValidationError("item", fmt.Sprintf("invalid item size %q", s), err)
	}
	h := 1
	if hasHeight {
		h, err = strconv.Atoi(hPart)
		if err != nil || h < 0 {
			return 0, 0, fluenterrors.NewValidationError("item", fmt.Sprintf("invalid item size %q", s), err)
		}
	}
	return w, h, nil
}

func printLayout(cmd *cobra.Command, res overflowrow.Result) error {
	summary := newTable().Rows(
		[]string{"kept", joinInts(res.Kept())},
		[]string{"overflow", fmt.Sprintf("[%d,%d)", res.OverflowRange.Start, res.OverflowRange.End)},
		[]string{"indicator", strconv.FormatBool(res.ShowsIndicator())},
		[]string{"size", fmt.Sprintf("%dx%d", res.Width, res.Height)},
	)
	if err := printTable(cmd.OutOrStdout(), summary); err != nil {
		return err
	}
	if len(res.Placements) == 0 {
		return nil
	}

	placements := newTable().Headers("item", "x", "y", "width", "height")
	for _, p := range res.Placements {
		name := strconv.Itoa(p.Index)
		if p.IsIndicator() {
			name = "overflow"
		}
		placements.Row(name, strconv.Itoa(p.X), strconv.Itoa(p.Y), strconv.Itoa(p.Size.Width), strconv.Itoa(p.Size.Height))
	}
	return printTable(cmd.OutOrStdout(), placements)
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
