package imagepkg

import (
	"image/color"
	"math"
)

// DrawRoundedRect paints a rounded rectangle from straight fills and corner
// pie slices, then optionally strokes the matching arcs and edges. The two
// fills leave the four corner squares to the slices so no edge is painted twice.
func DrawRoundedRect(c Canvas, b Rect, radius float64, fill, outline color.Color, outlineWidth float64) {
	r := math.Min(radius, math.Min(b.Width(), b.Height())/2)
	stroke := outline != nil && outlineWidth > 0

	if r <= 0 {
		if fill != nil {
			c.FillRect(b, fill)
		}
		if stroke {
			strokeEdges(c, b, 0, outline, outlineWidth)
		}
		return
	}

	d := 2 * r
	corners := [4]struct {
		box        Rect
		start, end float64
	}{
		{Rect{X0: b.X0, Y0: b.Y0, X1: b.X0 + d, Y1: b.Y0 + d}, 180, 270},
		{Rect{X0: b.X1 - d, Y0: b.Y0, X1: b.X1, Y1: b.Y0 + d}, 270, 360},
		{Rect{X0: b.X1 - d, Y0: b.Y1 - d, X1: b.X1, Y1: b.Y1}, 0, 90},
		{Rect{X0: b.X0, Y0: b.Y1 - d, X1: b.X0 + d, Y1: b.Y1}, 90, 180},
	}

	if fill != nil {
		c.FillRect(Rect{X0: b.X0 + r, Y0: b.Y0, X1: b.X1 - r, Y1: b.Y1}, fill)
		c.FillRect(Rect{X0: b.X0, Y0: b.Y0 + r, X1: b.X1, Y1: b.Y1 - r}, fill)
		for _, k := range corners {
			c.FillPieSlice(k.box, k.start, k.end, fill)
		}
	}

	if !stroke {
		return
	}
	for _, k := range corners {
		c.StrokeArc(k.box, k.start, k.end, outline, outlineWidth)
	}
	strokeEdges(c, b, r, outline, outlineWidth)
}

// strokeEdges draws the four straight sides, shortened by r at each end.
func strokeEdges(c Canvas, b Rect, r float64, col color.Color, width float64) {
	c.StrokeLine(Point{X: b.X0 + r, Y: b.Y0}, Point{X: b.X1 - r, Y: b.Y0}, col, width)
	c.StrokeLine(Point{X: b.X0 + r, Y: b.Y1}, Point{X: b.X1 - r, Y: b.Y1}, col, width)
	c.StrokeLine(Point{X: b.X0, Y: b.Y0 + r}, Point{X: b.X0, Y: b.Y1 - r}, col, width)
	c.StrokeLine(Point{X: b.X1, Y: b.Y0 + r}, Point{X: b.X1, Y: b.Y1 - r}, col, width)
}
