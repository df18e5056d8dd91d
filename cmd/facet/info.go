package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

// infoViewport is the viewport used for the visibility stats.
const infoViewport = 100

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [mesh]",
		Short: "Display mesh information",
		Long: `Display the triangle count and bounding box of a mesh, and how many of its
triangles the default view culls, clips and draws. Without an argument the
--mesh flag, or the built-in cube, is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := meshPath
			if len(args) == 1 {
				path = args[0]
			}

			mesh, err := loadMesh(path)
			if err != nil {
				return err
			}
			s := scene.New()
			if configPath != "" {
				cfg, err := scene.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.Apply(s)
			}

			name := mesh.Name
			if path != "" {
				name = filepath.Base(path)
			}
			size := mesh.Size()
			center := mesh.Center()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Mesh:       %s\n", name)
			fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", mesh.BoundsMin.X, mesh.BoundsMin.Y, mesh.BoundsMin.Z)
			fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", mesh.BoundsMax.X, mesh.BoundsMax.Y, mesh.BoundsMax.Z)
			fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
			fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)

			fitted := mesh
			if path != "" {
				fitted = mesh.Clone()
				fitted.Fit(1)
			}
			p := render.NewPipeline()
			p.Project(s.Frame(), fitted.Triangles, infoViewport, infoViewport)
			st := p.Stats()

			fmt.Fprintln(w)
			fmt.Fprintf(w, "Default view (%dx%d):\n", infoViewport, infoViewport)
			fmt.Fprintf(w, "  Culled:       %d\n", st.Culled)
			fmt.Fprintf(w, "  Near clipped: %d\n", st.NearClipped)
			fmt.Fprintf(w, "  Drawn:        %d\n", st.Emitted)
			return nil
		},
	}
}
