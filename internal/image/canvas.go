package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is the set of raster primitives the composer draws with.
// Angles are degrees, clockwise from 3 o'clock, with y growing downward.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	FillVerticalGradient(r Rect, top, bottom color.Color)
	FillPolygon(pts []Point, c color.Color)
	FillEllipse(r Rect, c color.Color)
	StrokeEllipse(r Rect, c color.Color, width float64)
	FillPieSlice(r Rect, startDeg, endDeg float64, c color.Color)
	StrokeArc(r Rect, startDeg, endDeg float64, c color.Color, width float64)
	StrokeLine(a, b Point, c color.Color, width float64)
	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y float64, face font.Face, c color.Color)
	Image() image.Image
}

// ggCanvas implements Canvas on top of a gg drawing context.
type ggCanvas struct {
	dc *gg.Context
}

// newCanvas allocates a w x h canvas filled with bg.
func newCanvas(w, h int, bg color.Color) *ggCanvas {
	return &ggCanvas{dc: gg.NewContextForImage(imaging.New(w, h, bg))}
}

func (c *ggCanvas) FillRect(r Rect, col color.Color) {
	c.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *ggCanvas) FillVerticalGradient(r Rect, top, bottom color.Color) {
	grad := gg.NewLinearGradient(0, r.Y0, 0, r.Y1)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	c.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

func (c *ggCanvas) FillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *ggCanvas) FillEllipse(r Rect, col color.Color) {
	ctr := r.Center()
	c.dc.DrawEllipse(ctr.X, ctr.Y, r.Width()/2, r.Height()/2)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *ggCanvas) StrokeEllipse(r Rect, col color.Color, width float64) {
	ctr := r.Center()
	c.dc.DrawEllipse(ctr.X, ctr.Y, r.Width()/2, r.Height()/2)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *ggCanvas) FillPieSlice(r Rect, startDeg, endDeg float64, col color.Color) {
	ctr := r.Center()
	c.dc.NewSubPath()
	c.dc.MoveTo(ctr.X, ctr.Y)
	c.dc.DrawEllipticalArc(ctr.X, ctr.Y, r.Width()/2, r.Height()/2, gg.Radians(startDeg), gg.Radians(endDeg))
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *ggCanvas) StrokeArc(r Rect, startDeg, endDeg float64, col color.Color, width float64) {
	ctr := r.Center()
	c.dc.NewSubPath()
	c.dc.DrawEllipticalArc(ctr.X, ctr.Y, r.Width()/2, r.Height()/2, gg.Radians(startDeg), gg.Radians(endDeg))
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *ggCanvas) StrokeLine(a, b Point, col color.Color, width float64) {
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *ggCanvas) DrawText(s string, x, y float64, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

func (c *ggCanvas) Image() image.Image {
	return c.dc.Image()
}
