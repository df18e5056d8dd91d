// facet - software 3D renderer
// Renders a flat-shaded mesh in the terminal, in a desktop window or to an
// image file.
//
// Controls:
//
//	W/Up, S/Down - Move camera forward/back along the view
//	A/D          - Turn camera left/right
//	F            - Toggle filled faces
//	X            - Toggle wireframe
//	R            - Toggle auto rotation
//	C            - Reset camera
//	?            - Toggle HUD overlay (FPS, triangle stats)
//	Esc          - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/scene"
)

var (
	configPath string
	meshPath   string
	targetFPS  int
	logLevel   string
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facet",
		Short: "Software 3D renderer for the terminal",
		Long: `facet - software 3D renderer

Spins a flat-shaded mesh (the unit cube unless --mesh is given) in front of
a free-flying camera and draws it with half-block characters.

Controls:
  W/Up, S/Down  - Move forward/back
  A/D           - Turn left/right
  F             - Toggle filled faces
  X             - Toggle wireframe
  R             - Toggle auto rotation
  C             - Reset camera
  ?             - Toggle HUD overlay
  Esc           - Quit`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.SetLogLevelStr(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, mesh, err := loadScene()
			if err != nil {
				return err
			}
			return runTerminal(cmd.Context(), s, mesh)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Scene file (TOML)")
	pf.StringVar(&meshPath, "mesh", "", "Mesh to render (.obj, .glb, .gltf); default is the unit cube")
	pf.IntVar(&targetFPS, "fps", 60, "Target FPS")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, verbose, info, warning, error)")

	cmd.AddCommand(newWindowCmd(), newSnapshotCmd(), newInfoCmd())
	return cmd
}

// loadScene builds the scene from defaults and the optional config file,
// and loads the mesh fitted into the unit cube's place.
func loadScene() (*scene.Scene, *models.Mesh, error) {
	s := scene.New()
	if configPath != "" {
		cfg, err := scene.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.Apply(s)
		log.Infof("Loaded scene config %s", configPath)
	}

	mesh, err := loadMesh(meshPath)
	if err != nil {
		return nil, nil, err
	}
	if meshPath != "" {
		mesh.Fit(1)
	}
	return s, mesh, nil
}

func loadMesh(path string) (*models.Mesh, error) {
	mesh, err := models.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	log.Infof("Loaded %s (%d triangles)", mesh.Name, mesh.TriangleCount())
	return mesh, nil
}

// fps returns the validated --fps value.
func fps() int {
	if targetFPS <= 0 {
		log.Warnf("Invalid --fps %d, using 60", targetFPS)
		targetFPS = 60
	}
	return targetFPS
}
