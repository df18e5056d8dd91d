package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalFramebufferSize returns the framebuffer size that fills a
// terminal area of cols × rows cells with half-block output.
func TerminalFramebufferSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// Draw paints the framebuffer onto a terminal screen area.
//
// Each cell shows two framebuffer rows with the upper half block (▀):
// the foreground is the top pixel and the background the bottom pixel.
// Framebuffer pixel (0, 0) lands on area.Min.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.h {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.w {
				break
			}

			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, topY)),
					Bg: cellColor(fb.GetPixel(x, topY+1)),
				},
			})
		}
	}
}

// cellColor maps transparent pixels to the terminal default colour.
func cellColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
