package imagepkg

import (
	"image/color"
	"math"
)

// Proportions of the suitcase drawing, as fractions of the canvas or body.
const (
	bodyHeightFrac   = 0.42
	bodyTopFrac      = 0.12
	cornerRadiusFrac = 0.08
	handleGap        = 4.0
	wheelRadiusFrac  = 0.09
	minWheelRadius   = 4.0
	shadowOffset     = 6.0
	stickerFrac      = 0.10
	textGap          = 8
)

// HandleShape is the resolved handle geometry. For arcs Bounds is the box of
// the full ellipse whose upper half gets stroked.
type HandleShape struct {
	Style     HandleStyle
	Bounds    Rect
	Radius    float64
	Thickness float64
}

// Extent is the part of the canvas the handle actually paints.
func (h HandleShape) Extent() Rect {
	if h.Style == HandleArc {
		half := h.Thickness / 2
		return Rect{
			X0: h.Bounds.X0 - half,
			Y0: h.Bounds.Y0 - half,
			X1: h.Bounds.X1 + half,
			Y1: h.Bounds.Center().Y + half,
		}
	}
	return h.Bounds
}

type WheelShape struct {
	Style   WheelStyle
	Centers [2]Point
	Radius  float64
}

type StickerShape struct {
	Kind   StickerKind
	Center Point
	Radius float64
	Color  color.RGBA
}

// GeometryLayout holds every coordinate and color of one suitcase drawing.
type GeometryLayout struct {
	Width, Height int

	Background    color.RGBA
	BackgroundEnd color.RGBA
	Gradient      bool

	Body       Rect
	BodyRadius float64
	BodyColor  color.RGBA

	Shadow      Rect
	ShadowColor color.RGBA

	Stripe      Rect
	StripeColor color.RGBA

	Handle  HandleShape
	Wheels  WheelShape
	Sticker *StickerShape
}

// TextAnchor is the lowest y the caption may start at: just below the wheels.
func (g GeometryLayout) TextAnchor() int {
	bottom := g.Wheels.Centers[0].Y + g.Wheels.Radius
	return int(math.Ceil(bottom)) + textGap
}

// Compose lays out the suitcase for spec using the choices fixed in v.
func Compose(spec RenderSpec, v StyleVariant, pal Palette) GeometryLayout {
	w, h := float64(spec.Width), float64(spec.Height)

	bodyW := w * pal.SizeFraction(spec.Size)
	bodyH := h * bodyHeightFrac
	x0 := (w - bodyW) / 2
	y0 := h * bodyTopFrac
	body := Rect{X0: x0, Y0: y0, X1: x0 + bodyW, Y1: y0 + bodyH}
	short := math.Min(bodyW, bodyH)

	bg := pal.Background(v.BackgroundIndex)
	bodyColor := pal.BodyColor(spec.Color)

	g := GeometryLayout{
		Width:         spec.Width,
		Height:        spec.Height,
		Background:    bg,
		BackgroundEnd: bg,
		Gradient:      v.Gradient,
		Body:          body,
		BodyRadius:    cornerRadiusFrac * short,
		BodyColor:     bodyColor,
		ShadowColor:   darken(bg, 0.18),
		StripeColor:   contrastShade(bodyColor),
	}
	if v.Gradient {
		g.BackgroundEnd = darken(bg, 0.08)
	}

	wheelR := math.Max(minWheelRadius, wheelRadiusFrac*short)
	wheelY := body.Y1 + wheelR/2
	inset := v.WheelSpacing * bodyW
	g.Wheels = WheelShape{
		Style: v.Wheel,
		Centers: [2]Point{
			{X: body.X0 + inset, Y: wheelY},
			{X: body.X1 - inset, Y: wheelY},
		},
		Radius: wheelR,
	}

	shadowH := 0.12 * bodyH
	shadowY := math.Min(wheelY+shadowOffset, h-shadowH/2)
	g.Shadow = Rect{
		X0: body.X0 + 0.05*bodyW,
		Y0: shadowY - shadowH/2,
		X1: body.X1 - 0.05*bodyW,
		Y1: shadowY + shadowH/2,
	}

	g.Stripe = stripeRect(body, g.BodyRadius, v.Stripe)
	g.Handle = handleShape(body, v.Handle)

	if v.Sticker != nil {
		anchor := stickerAnchors[modIndex(v.Sticker.Position, len(stickerAnchors))]
		g.Sticker = &StickerShape{
			Kind: v.Sticker.Kind,
			Center: Point{
				X: body.X0 + anchor[0]*bodyW,
				Y: body.Y0 + anchor[1]*bodyH,
			},
			Radius: stickerFrac * short,
			Color:  pal.StickerColor(v.Sticker.ColorIndex),
		}
	}
	return g
}

func stripeRect(body Rect, radius float64, o StripeOrientation) Rect {
	c := body.Center()
	if o == StripeVertical {
		half := 0.10 * body.Width() / 2
		return Rect{X0: c.X - half, Y0: body.Y0 + radius, X1: c.X + half, Y1: body.Y1 - radius}
	}
	half := 0.12 * body.Height() / 2
	return Rect{X0: body.X0 + radius, Y0: c.Y - half, X1: body.X1 - radius, Y1: c.Y + half}
}

func handleShape(body Rect, style HandleStyle) HandleShape {
	cx := body.Center().X
	base := math.Max(body.Y0-handleGap, 0)

	if style == HandleArc {
		hw := 0.30 * body.Width()
		thick := math.Max(3, 0.12*hw)
		base = math.Max(base, thick/2)
		hh := math.Min(0.22*body.Height(), base-thick/2)
		hh = math.Max(hh, 0)
		return HandleShape{
			Style:     HandleArc,
			Bounds:    Rect{X0: cx - hw/2, Y0: base - hh, X1: cx + hw/2, Y1: base + hh},
			Thickness: thick,
		}
	}

	hw := 0.27 * body.Width()
	hh := math.Min(math.Max(10, 0.12*body.Height()), base)
	hh = math.Max(hh, 0)
	return HandleShape{
		Style:     HandleRounded,
		Bounds:    Rect{X0: cx - hw/2, Y0: base - hh, X1: cx + hw/2, Y1: base},
		Radius:    0.3 * math.Min(hw, hh),
		Thickness: 2,
	}
}

// starPoints returns the ten vertices of a five-point star, first tip up.
func starPoints(c Point, outer float64) []Point {
	inner := outer * 0.45
	pts := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return pts
}
