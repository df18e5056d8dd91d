package render

// DrawTriangle draws the outline of a screen-space triangle as three lines.
func DrawTriangle(s Surface, x1, y1, x2, y2, x3, y3 int, c Color) {
	s.DrawLine(x1, y1, x2, y2, c)
	s.DrawLine(x2, y2, x3, y3, c)
	s.DrawLine(x3, y3, x1, y1, c)
}

// FillTriangle fills a screen-space triangle with horizontal spans.
//
// Vertices are sorted by y. The long edge (top to bottom vertex) is walked
// against the top-to-middle edge, then against the middle-to-bottom edge.
// A leg with no height is skipped, so a triangle whose vertices share one
// row draws nothing.
func FillTriangle(s Surface, x1, y1, x2, y2, x3, y3 int, c Color) {
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y3 < y1 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	var longStep float64
	if dy := y3 - y1; dy != 0 {
		longStep = float64(x3-x1) / float64(dy)
	}

	// Upper leg
	if dy := y2 - y1; dy != 0 {
		step := float64(x2-x1) / float64(dy)
		for y := y1; y <= y2; y++ {
			ax := x1 + int(float64(y-y1)*step)
			bx := x1 + int(float64(y-y1)*longStep)
			span(s, y, ax, bx, c)
		}
	}

	// Lower leg
	if dy := y3 - y2; dy != 0 {
		step := float64(x3-x2) / float64(dy)
		for y := y2; y <= y3; y++ {
			ax := x2 + int(float64(y-y2)*step)
			bx := x1 + int(float64(y-y1)*longStep)
			span(s, y, ax, bx, c)
		}
	}
}

func span(s Surface, y, ax, bx int, c Color) {
	if ax > bx {
		ax, bx = bx, ax
	}
	s.DrawLine(ax, y, bx, y, c)
}
