package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluent/internal/gallery"
)

func newGalleryCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive gallery",
		Long: `Launch the interactive gallery. Drag slider thumbs with the mouse or step them
with the arrow keys, edit a colour by channel or hex code, and resize the
command bar to watch commands move into the overflow menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app)
		},
	}

	return cmd
}

func runGallery(cmd *cobra.Command, app *appContext) error {
	m, err := app.newModel(app.galleryLogger())
	if err != nil {
		app.log.Error(err, "gallery setup failed")
		return err
	}
	return gallery.Run(cmd.Context(), m)
}
