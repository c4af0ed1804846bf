package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fluent/internal/gallery"
)

const fallbackWidth = 80

type renderOptions struct {
	width int
}

func newRenderCmd(app *appContext) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a static snapshot of the gallery",
		Long: `Print every gallery page one after another. The width defaults to the
terminal width, or 80 columns when output is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "render width in columns (default is the terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, app *appContext, opts renderOptions) error {
	if opts.width < 0 {
		return fmt.Errorf("width must not be negative, got %d", opts.width)
	}
	width := opts.width
	if width == 0 {
		width = outputWidth(cmd.OutOrStdout())
	}

	m, err := app.newModel(app.log)
	if err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"width": width}).Debug("rendering gallery")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), gallery.Render(m, width))
	return err
}

// outputWidth is the width of w when it is a terminal.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
