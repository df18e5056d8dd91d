package main

import (
	"github.com/spf13/cobra"
	"github.com/taigrr/facet/pkg/window"
)

func newWindowCmd() *cobra.Command {
	opts := window.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the viewer in a desktop window",
		Long: `Open the viewer in a resizable desktop window.

The framebuffer follows the window size divided by --scale. Controls are the
same as in the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, mesh, err := loadScene()
			if err != nil {
				return err
			}
			opts.Title = "facet - " + mesh.Name
			opts.TPS = fps()
			return window.Run(s, mesh.Triangles, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Framebuffer width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "Framebuffer height in pixels")
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "Screen pixels per framebuffer pixel")
	return cmd
}
