// Package window shows the viewer in a desktop window using ebiten.
package window

import (
	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // Initial framebuffer width in pixels
	Height int // Initial framebuffer height in pixels
	Scale  int // Screen pixels per framebuffer pixel
	TPS    int // Updates per second
}

// DefaultOptions returns a 320x240 framebuffer shown at 3x.
func DefaultOptions() Options {
	return Options{
		Title:  "facet",
		Width:  320,
		Height: 240,
		Scale:  3,
		TPS:    60,
	}
}

// Game adapts a scene and mesh to ebiten's game loop.
type Game struct {
	scene    *scene.Scene
	mesh     []models.Triangle
	pipeline *render.Pipeline
	fb       *render.Framebuffer
	clock    *scene.Clock
	scale    int

	img    *ebiten.Image
	pixels []byte
	stats  render.Stats
}

// NewGame creates a game that renders mesh from s.
func NewGame(s *scene.Scene, mesh []models.Triangle, opts Options) *Game {
	return &Game{
		scene:    s,
		mesh:     mesh,
		pipeline: render.NewPipeline(),
		fb:       render.NewFramebuffer(opts.Width, opts.Height),
		clock:    scene.NewClock(),
		scale:    max(opts.Scale, 1),
	}
}

// Stats returns the pipeline counters for the last drawn frame.
func (g *Game) Stats() render.Stats {
	return g.stats
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleToggles(inpututil.IsKeyJustPressed)
	g.scene.Update(g.clock.Tick(), keyboard{pressed: ebiten.IsKeyPressed})
	return nil
}

func (g *Game) handleToggles(justPressed func(ebiten.Key) bool) {
	s := g.scene
	if justPressed(ebiten.KeyF) {
		s.Filled = !s.Filled
	}
	if justPressed(ebiten.KeyX) {
		s.Wireframe = !s.Wireframe
	}
	if justPressed(ebiten.KeyR) {
		s.AutoRotate = !s.AutoRotate
	}
	if justPressed(ebiten.KeyC) {
		s.ResetCamera()
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.Clear(render.ColorBlack)
	g.stats = g.pipeline.Render(g.scene.Frame(), g.mesh, g.fb)

	w, h := g.fb.Width(), g.fb.Height()
	if w == 0 || h == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.pixels = make([]byte, w*h*4)
	}

	for i, c := range g.fb.Pixels {
		j := i * 4
		g.pixels[j+0] = c.R
		g.pixels[j+1] = c.G
		g.pixels[j+2] = c.B
		g.pixels[j+3] = c.A
	}
	g.img.WritePixels(g.pixels)
	screen.DrawImage(g.img, nil)
}

// Layout implements ebiten.Game. The framebuffer follows the window size
// divided by the scale factor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale, 1)
	h := max(outsideHeight/g.scale, 1)
	if w != g.fb.Width() || h != g.fb.Height() {
		log.Debugf("window framebuffer resized to %dx%d", w, h)
		g.fb.Resize(w, h)
	}
	return w, h
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(s *scene.Scene, mesh []models.Triangle, opts Options) error {
	g := NewGame(s, mesh, opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width*g.scale, opts.Height*g.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	log.Infof("Opening %dx%d window (scale %d)", opts.Width*g.scale, opts.Height*g.scale, g.scale)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	st := g.Stats()
	log.Infof("Window closed; last frame emitted %d of %d triangles", st.Emitted, st.Submitted)
	return nil
}

// keyboard maps physical keys onto scene control keys.
type keyboard struct {
	pressed func(ebiten.Key) bool
}

func (k keyboard) IsKeyDown(key scene.Key) bool {
	switch key {
	case scene.Forward:
		return k.pressed(ebiten.KeyW) || k.pressed(ebiten.KeyArrowUp)
	case scene.Back:
		return k.pressed(ebiten.KeyS) || k.pressed(ebiten.KeyArrowDown)
	case scene.TurnLeft:
		return k.pressed(ebiten.KeyA)
	case scene.TurnRight:
		return k.pressed(ebiten.KeyD)
	}
	return false
}
