package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
)

var (
	outlineColor  = color.RGBA{R: 68, G: 68, B: 68, A: 255}
	handleColor   = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	wheelColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	darkLineColor = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	captionColor  = color.RGBA{R: 34, G: 34, B: 34, A: 255}
)

type Options struct {
	// Palette defaults to DefaultPalette().
	Palette *Palette
	// Fonts defaults to the embedded fallback face.
	Fonts *FontSet
	// QRBadge stamps the caption's id as a QR code in the top-right corner.
	QRBadge bool
	Logger  *zap.Logger
}

// Renderer turns RenderSpecs into suitcase placeholder images. It holds only
// read-only state, so one Renderer may serve concurrent callers.
type Renderer struct {
	palette Palette
	fonts   *FontSet
	qrBadge bool
	logger  *zap.Logger
}

// Result is one rendered image together with every intermediate decision.
type Result struct {
	Image      image.Image
	Seed       int64
	Variant    StyleVariant
	Layout     GeometryLayout
	Text       TextBlock
	FontStatus FontStatus
}

func NewRenderer(opts Options) *Renderer {
	pal := DefaultPalette()
	if opts.Palette != nil {
		pal = *opts.Palette
	}
	fonts := opts.Fonts
	if fonts == nil {
		fonts, _ = ProbeFont("")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if fonts.Status() == FontFallback {
		logger.Warn("caption font unavailable, using embedded fallback", zap.String("font", fonts.Source()))
	}
	return &Renderer{
		palette: pal,
		fonts:   fonts,
		qrBadge: opts.QRBadge,
		logger:  logger,
	}
}

// Palette returns the palette this renderer draws with.
func (r *Renderer) Palette() Palette { return r.palette }

// Render draws the suitcase and caption for spec.
func (r *Renderer) Render(spec RenderSpec) (*Result, error) {
	seed, variant := SelectStyle(spec.Caption, spec.Color, spec.Size, r.palette)
	layout := Compose(spec, variant, r.palette)

	canvas := newCanvas(spec.Width, spec.Height, layout.Background)
	drawSuitcase(canvas, layout)

	m := r.fonts.NewMeasurer()
	defer m.Close()

	block := LayoutText(m, spec.Caption, spec.Width, spec.Height, layout.TextAnchor())
	face, err := m.Face(float64(block.FontSize))
	if err != nil {
		return nil, err
	}
	for _, l := range block.Lines {
		canvas.DrawText(l.Text, float64(l.Origin()), float64(l.Baseline()), face, captionColor)
	}

	if block.Overflow {
		r.logger.Warn("caption wider than canvas",
			zap.String("caption", spec.Caption),
			zap.Int("width", block.MaxWidth),
			zap.Int("limit", spec.Width-SideMargin))
	}

	img := canvas.Image()
	if r.qrBadge {
		if img, err = pasteQRBadge(img, spec.Caption); err != nil {
			return nil, fmt.Errorf("qr badge: %w", err)
		}
	}

	r.logger.Debug("rendered placeholder",
		zap.String("caption", spec.Caption),
		zap.Int64("seed", seed),
		zap.Int("font_size", block.FontSize),
		zap.Bool("wrapped", block.Wrapped))

	return &Result{
		Image:      img,
		Seed:       seed,
		Variant:    variant,
		Layout:     layout,
		Text:       block,
		FontStatus: r.fonts.Status(),
	}, nil
}

// drawSuitcase submits the illustration to c, back to front.
func drawSuitcase(c Canvas, g GeometryLayout) {
	full := Rect{X1: float64(g.Width), Y1: float64(g.Height)}
	if g.Gradient {
		c.FillVerticalGradient(full, g.Background, g.BackgroundEnd)
	} else {
		c.FillRect(full, g.Background)
	}

	c.FillEllipse(g.Shadow, g.ShadowColor)

	switch g.Handle.Style {
	case HandleArc:
		c.StrokeArc(g.Handle.Bounds, 180, 360, handleColor, g.Handle.Thickness)
	default:
		DrawRoundedRect(c, g.Handle.Bounds, g.Handle.Radius, handleColor, darkLineColor, g.Handle.Thickness)
	}

	DrawRoundedRect(c, g.Body, g.BodyRadius, g.BodyColor, outlineColor, 2)
	c.FillRect(g.Stripe, g.StripeColor)

	if s := g.Sticker; s != nil {
		switch s.Kind {
		case StickerStar:
			c.FillPolygon(starPoints(s.Center, s.Radius), s.Color)
		default:
			box := Rect{X0: s.Center.X - s.Radius, Y0: s.Center.Y - s.Radius, X1: s.Center.X + s.Radius, Y1: s.Center.Y + s.Radius}
			c.FillEllipse(box, s.Color)
			c.StrokeEllipse(box, outlineColor, 1)
		}
	}

	for _, ctr := range g.Wheels.Centers {
		r := g.Wheels.Radius
		box := Rect{X0: ctr.X - r, Y0: ctr.Y - r, X1: ctr.X + r, Y1: ctr.Y + r}
		if g.Wheels.Style == WheelSquare {
			DrawRoundedRect(c, box, 0, wheelColor, darkLineColor, 2)
			continue
		}
		c.FillEllipse(box, wheelColor)
		c.StrokeEllipse(box, darkLineColor, 2)
	}
}
