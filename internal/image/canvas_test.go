package imagepkg

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// drawCall is one primitive submitted to a recordCanvas.
type drawCall struct {
	op         string
	rect       Rect
	start, end float64
	from, to   Point
	points     int
	text       string
	color      color.Color
	width      float64
}

// recordCanvas captures draw calls instead of rasterizing them.
type recordCanvas struct {
	calls []drawCall
}

func (c *recordCanvas) FillRect(r Rect, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "fillRect", rect: r, color: col})
}

func (c *recordCanvas) FillVerticalGradient(r Rect, top, _ color.Color) {
	c.calls = append(c.calls, drawCall{op: "gradient", rect: r, color: top})
}

func (c *recordCanvas) FillPolygon(pts []Point, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "polygon", points: len(pts), color: col})
}

func (c *recordCanvas) FillEllipse(r Rect, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "fillEllipse", rect: r, color: col})
}

func (c *recordCanvas) StrokeEllipse(r Rect, col color.Color, w float64) {
	c.calls = append(c.calls, drawCall{op: "strokeEllipse", rect: r, color: col, width: w})
}

func (c *recordCanvas) FillPieSlice(r Rect, s, e float64, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "pie", rect: r, start: s, end: e, color: col})
}

func (c *recordCanvas) StrokeArc(r Rect, s, e float64, col color.Color, w float64) {
	c.calls = append(c.calls, drawCall{op: "arc", rect: r, start: s, end: e, color: col, width: w})
}

func (c *recordCanvas) StrokeLine(a, b Point, col color.Color, w float64) {
	c.calls = append(c.calls, drawCall{op: "line", from: a, to: b, color: col, width: w})
}

func (c *recordCanvas) DrawText(s string, x, y float64, _ font.Face, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "text", text: s, from: Point{X: x, Y: y}, color: col})
}

func (c *recordCanvas) Image() image.Image { return nil }

func (c *recordCanvas) ops() []string {
	out := make([]string, len(c.calls))
	for i, call := range c.calls {
		out[i] = call.op
	}
	return out
}

func (c *recordCanvas) count(op string) int {
	n := 0
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}
