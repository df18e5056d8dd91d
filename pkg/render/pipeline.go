package render

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

const (
	// nearClipZ is the view-space depth of the near clip plane. Anything
	// closer is cut away before projection so every projected W is positive.
	nearClipZ = 0.1

	// minIntensity keeps faces turned away from the light dimly visible.
	minIntensity = 0.1
)

// FrameInput is the immutable scene snapshot the pipeline reads for one frame.
type FrameInput struct {
	Camera     math3d.Vec3H // Camera position in world space
	Pitch, Yaw float64      // Camera look angles (radians)

	RotX, RotZ float64 // Object rotation (radians)
	Distance   float64 // Object offset along +z

	Light     math3d.Vec3H // Direction to the light; normalized per frame
	FillColor Color        // Base face colour before lighting
	WireColor Color        // Wireframe colour, independent of face colour

	FOV       float64 // Field of view in degrees
	Near, Far float64 // Projection depth range

	Filled    bool
	Wireframe bool
}

// DefaultFrameInput returns the startup scene: camera at the origin looking
// down +z, the object five units ahead, light shining from the camera.
func DefaultFrameInput() FrameInput {
	return FrameInput{
		Camera:    math3d.Zero(),
		Distance:  5,
		Light:     math3d.Point(0, 0, -1),
		FillColor: ColorBlue,
		WireColor: ColorWhite,
		FOV:       90,
		Near:      0.1,
		Far:       1000,
		Filled:    true,
		Wireframe: true,
	}
}

// Stats counts what happened to the mesh in the last frame.
type Stats struct {
	Submitted   int // Mesh triangles fed in
	Culled      int // Dropped as back-facing
	NearClipped int // Front-facing but entirely in front of the near plane
	Emitted     int // Screen-space triangles handed to the rasterizer
}

// Pipeline turns a mesh into screen-space triangles and draws them.
//
// A Pipeline reuses its buffers between frames and is not safe for
// concurrent use.
type Pipeline struct {
	front, back []models.Triangle // screen-edge clip worklists, swapped per edge
	out         []models.Triangle
	stats       Stats
}

// NewPipeline creates a pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		front: make([]models.Triangle, 0, 16),
		back:  make([]models.Triangle, 0, 16),
	}
}

// Stats returns the counters from the last Project or Render call.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Project runs the mesh through world transform, backface culling,
// lighting, view transform, near clipping, projection and screen-edge
// clipping for a width × height viewport.
//
// Triangles come out in mesh order; there is no depth sort. The returned
// slice is reused by the next call.
func (p *Pipeline) Project(in FrameInput, mesh []models.Triangle, width, height int) []models.Triangle {
	p.out = p.out[:0]
	p.stats = Stats{Submitted: len(mesh)}
	if width <= 0 || height <= 0 {
		return p.out
	}

	world := math3d.RotateZ(in.RotZ).
		Mul(math3d.RotateX(in.RotX)).
		Mul(math3d.Translate(0, 0, in.Distance))
	view := ViewMatrix(in.Camera, in.Pitch, in.Yaw)
	proj := math3d.Projection(in.FOV, float64(height)/float64(width), in.Near, in.Far)
	light := in.Light.Normalize()

	nearPlane := NewPlane(math3d.Point(0, 0, nearClipZ), math3d.Point(0, 0, 1))
	edges := screenEdges(width, height)

	for _, tri := range mesh {
		wt := tri.Transform(world)

		normal := wt.Normal()
		if normal.Dot(wt.P[0].Sub(in.Camera)) >= 0 {
			p.stats.Culled++
			continue
		}

		vt := wt.Transform(view)
		vt.Color = MultiplyColor(in.FillColor, math.Max(minIntensity, light.Dot(normal)))

		clipped, n := ClipTriangle(nearPlane, vt)
		if n == 0 {
			p.stats.NearClipped++
			continue
		}

		for _, ct := range clipped[:n] {
			for i := range ct.P {
				ct.P[i] = ProjectPoint(proj, ct.P[i], width, height)
			}
			p.clipToScreen(ct, edges)
		}
	}

	p.stats.Emitted = len(p.out)
	return p.out
}

// Render projects the mesh onto s and rasterizes the result: filled faces
// first when enabled, then the wireframe overlay when enabled.
func (p *Pipeline) Render(in FrameInput, mesh []models.Triangle, s Surface) Stats {
	for _, t := range p.Project(in, mesh, s.Width(), s.Height()) {
		x1, y1 := int(t.P[0].X), int(t.P[0].Y)
		x2, y2 := int(t.P[1].X), int(t.P[1].Y)
		x3, y3 := int(t.P[2].X), int(t.P[2].Y)

		if in.Filled {
			FillTriangle(s, x1, y1, x2, y2, x3, y3, t.Color)
		}
		if in.Wireframe {
			DrawTriangle(s, x1, y1, x2, y2, x3, y3, in.WireColor)
		}
	}
	return p.stats
}

// screenEdges returns the top, bottom, left and right viewport planes,
// in the order they are clipped against.
func screenEdges(width, height int) [4]Plane {
	w, h := float64(width-1), float64(height-1)
	return [4]Plane{
		NewPlane(math3d.Point(0, 0, 0), math3d.Point(0, 1, 0)),
		NewPlane(math3d.Point(0, h, 0), math3d.Point(0, -1, 0)),
		NewPlane(math3d.Point(0, 0, 0), math3d.Point(1, 0, 0)),
		NewPlane(math3d.Point(w, 0, 0), math3d.Point(-1, 0, 0)),
	}
}

// clipToScreen clips one projected triangle against each screen edge in
// turn and appends the survivors to p.out. Every edge pass consumes the
// whole front list and fills the back list before the two are swapped.
func (p *Pipeline) clipToScreen(tri models.Triangle, edges [4]Plane) {
	p.front = append(p.front[:0], tri)

	for _, edge := range edges {
		p.back = p.back[:0]
		for _, t := range p.front {
			clipped, n := ClipTriangle(edge, t)
			p.back = append(p.back, clipped[:n]...)
		}
		p.front, p.back = p.back, p.front
		if len(p.front) == 0 {
			return
		}
	}

	p.out = append(p.out, p.front...)
}
