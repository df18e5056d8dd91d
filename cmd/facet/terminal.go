package main

import (
	"context"
	"fmt"
	"image/color"
	"time"
	"unicode/utf8"

	"fortio.org/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

func runTerminal(ctx context.Context, s *scene.Scene, mesh *models.Mesh) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			log.Warnf("Terminal shutdown: %v", err)
		}
	}

	// Events arrive on the terminal's goroutine; the loop below owns all
	// scene state, so they are handed over on a channel.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v := newViewer(s, mesh, width, height)
	ticker := time.NewTicker(time.Second / time.Duration(fps()))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil

		case ev := <-events:
			if size, ok := ev.(uv.WindowSizeEvent); ok {
				term.Erase()
				if err := term.Resize(size.Width, size.Height); err != nil {
					cleanup()
					return fmt.Errorf("resize terminal: %w", err)
				}
			}
			if v.handleEvent(ev) {
				cancel()
			}

		case <-ticker.C:
			v.step()
			v.draw(term)
			if err := term.Display(); err != nil {
				cleanup()
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

// viewer is the terminal front-end state: the scene, its render targets,
// held keys and the HUD.
type viewer struct {
	scene    *scene.Scene
	mesh     *models.Mesh
	pipeline *render.Pipeline
	fb       *render.Framebuffer
	keys     *scene.HeldKeys
	clock    *scene.Clock
	hud      *hud

	cols, rows int
}

func newViewer(s *scene.Scene, mesh *models.Mesh, cols, rows int) *viewer {
	fbw, fbh := render.TerminalFramebufferSize(cols, rows)
	return &viewer{
		scene:    s,
		mesh:     mesh,
		pipeline: render.NewPipeline(),
		fb:       render.NewFramebuffer(fbw, fbh),
		keys:     scene.NewHeldKeys(scene.DefaultHoldTimeout),
		clock:    scene.NewClock(),
		hud:      newHUD(mesh.Name, mesh.TriangleCount()),
		cols:     cols,
		rows:     rows,
	}
}

// handleEvent applies one terminal event and reports whether the viewer
// should quit.
func (v *viewer) handleEvent(ev uv.Event) (quit bool) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.cols, v.rows = ev.Width, ev.Height
		v.fb.Resize(render.TerminalFramebufferSize(ev.Width, ev.Height))
		log.Debugf("Terminal resized to %dx%d", ev.Width, ev.Height)

	case uv.KeyPressEvent:
		if k, ok := controlKey(ev.MatchString); ok {
			v.keys.Press(k)
			return false
		}
		s := v.scene
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return true
		case ev.MatchString("f"):
			s.Filled = !s.Filled
		case ev.MatchString("x"):
			s.Wireframe = !s.Wireframe
		case ev.MatchString("r"):
			s.AutoRotate = !s.AutoRotate
		case ev.MatchString("c"):
			s.ResetCamera()
			v.keys.Clear()
		case ev.MatchString("?", "shift+/"):
			v.hud.visible = !v.hud.visible
		}

	case uv.KeyReleaseEvent:
		if k, ok := controlKey(ev.MatchString); ok {
			v.keys.Release(k)
		}
	}
	return false
}

// controlKey maps a key event onto a movement key.
func controlKey(match func(...string) bool) (scene.Key, bool) {
	switch {
	case match("w", "up"):
		return scene.Forward, true
	case match("s", "down"):
		return scene.Back, true
	case match("a"):
		return scene.TurnLeft, true
	case match("d"):
		return scene.TurnRight, true
	}
	return 0, false
}

// step advances the scene by the time since the last step.
func (v *viewer) step() {
	v.scene.Update(v.clock.Tick(), v.keys)
}

// draw renders the scene and paints it, plus the HUD, onto scr.
func (v *viewer) draw(scr uv.Screen) {
	v.fb.Clear(render.ColorBlack)
	stats := v.pipeline.Render(v.scene.Frame(), v.mesh.Triangles, v.fb)
	v.fb.Draw(scr, uv.Rect(0, 0, v.cols, v.rows))

	v.hud.tick()
	v.hud.draw(scr, v.cols, v.rows, v.scene, stats)
}

// hud is the text overlay on the first and last rows.
type hud struct {
	visible   bool
	name      string
	triangles int

	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func newHUD(name string, triangles int) *hud {
	return &hud{
		visible:   true,
		name:      name,
		triangles: triangles,
		fpsTime:   time.Now(),
	}
}

// tick counts a frame and refreshes the FPS figure once a second.
func (h *hud) tick() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

var (
	hudBg     = color.RGBA{0, 0, 0, 255}
	hudGreen  = color.RGBA{80, 250, 120, 255}
	hudWhite  = color.RGBA{240, 240, 240, 255}
	hudCyan   = color.RGBA{90, 220, 250, 255}
	hudYellow = color.RGBA{250, 220, 90, 255}
)

func (h *hud) draw(scr uv.Screen, cols, rows int, s *scene.Scene, st render.Stats) {
	if !h.visible || rows < 2 {
		return
	}

	// Top: FPS, mesh name, triangle count
	drawText(scr, 0, 0, fmt.Sprintf(" %.0f FPS ", h.fps), hudGreen, uv.AttrBold)
	title := " " + h.name + " "
	drawText(scr, max((cols-utf8.RuneCountInString(title))/2, 0), 0, title, hudWhite, uv.AttrBold)
	polys := fmt.Sprintf(" %d tris ", h.triangles)
	drawText(scr, max(cols-utf8.RuneCountInString(polys), 0), 0, polys, hudCyan, uv.AttrBold)

	// Bottom: toggles and pipeline counters
	modes := fmt.Sprintf(" %s fill (f)  %s wire (x)  %s rotate (r) ",
		check(s.Filled), check(s.Wireframe), check(s.AutoRotate))
	drawText(scr, 0, rows-1, modes, hudWhite, 0)
	counts := fmt.Sprintf(" drawn %d  culled %d  clipped %d ", st.Emitted, st.Culled, st.NearClipped)
	drawText(scr, max(cols-utf8.RuneCountInString(counts), 0), rows-1, counts, hudYellow, uv.AttrFaint)
}

func check(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}

// drawText writes single-width text starting at (x, y).
func drawText(scr uv.Screen, x, y int, text string, fg color.Color, attrs uint8) {
	for _, r := range text {
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg, Bg: hudBg, Attrs: attrs},
		})
		x++
	}
}
