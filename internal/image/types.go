package imagepkg

import "strings"

// Default canvas size used when no reference image can be read.
const (
	DefaultWidth  = 400
	DefaultHeight = 297
)

// Point is a canvas coordinate in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box, (X0,Y0) top-left and (X1,Y1) bottom-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Within reports whether r lies inside a w x h canvas.
func (r Rect) Within(w, h int) bool {
	return r.X0 >= 0 && r.Y0 >= 0 && r.X1 <= float64(w) && r.Y1 <= float64(h)
}

// RenderSpec is the resolved input of one render call.
type RenderSpec struct {
	Caption string
	Color   string
	Size    string
	Width   int
	Height  int
}

// NewRenderSpec builds a RenderSpec, defaulting empty categories to grey/M
// and non-positive dimensions to the default canvas.
func NewRenderSpec(caption, color, size string, width, height int) RenderSpec {
	color = strings.TrimSpace(color)
	if color == "" {
		color = "grey"
	}
	size = strings.TrimSpace(size)
	if size == "" {
		size = "M"
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return RenderSpec{
		Caption: caption,
		Color:   color,
		Size:    size,
		Width:   width,
		Height:  height,
	}
}
