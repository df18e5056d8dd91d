package render

// Surface is the 2D pixel target the pipeline draws onto.
//
// Width and Height may change between frames (window resize); the pipeline
// reads them once per frame. Implementations must ignore coordinates
// outside the surface.
type Surface interface {
	Width() int
	Height() int
	DrawPoint(x, y int, c Color)
	DrawLine(x1, y1, x2, y2 int, c Color)
}
