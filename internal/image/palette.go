package imagepkg

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds every lookup table the renderer needs.
type Palette struct {
	BodyColors    map[string]color.RGBA
	DefaultColor  string
	Backgrounds   []color.RGBA
	StickerColors []color.RGBA
	SizeFractions map[string]float64
	DefaultSize   string
}

// DefaultPalette returns the stock suitcase palette.
func DefaultPalette() Palette {
	return Palette{
		BodyColors: map[string]color.RGBA{
			"black":  {R: 40, G: 40, B: 40, A: 255},
			"grey":   {R: 160, G: 160, B: 160, A: 255},
			"gray":   {R: 160, G: 160, B: 160, A: 255},
			"blue":   {R: 70, G: 130, B: 180, A: 255},
			"red":    {R: 220, G: 70, B: 70, A: 255},
			"green":  {R: 60, G: 180, B: 90, A: 255},
			"yellow": {R: 240, G: 220, B: 70, A: 255},
			"pink":   {R: 230, G: 120, B: 180, A: 255},
		},
		DefaultColor: "grey",
		Backgrounds: []color.RGBA{
			{R: 255, G: 255, B: 255, A: 255},
			{R: 245, G: 245, B: 240, A: 255},
			{R: 235, G: 242, B: 250, A: 255},
			{R: 250, G: 240, B: 235, A: 255},
			{R: 240, G: 248, B: 240, A: 255},
			{R: 248, G: 244, B: 252, A: 255},
		},
		StickerColors: []color.RGBA{
			{R: 255, G: 200, B: 0, A: 255},
			{R: 255, G: 90, B: 90, A: 255},
			{R: 90, G: 200, B: 255, A: 255},
			{R: 120, G: 220, B: 120, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
		},
		SizeFractions: map[string]float64{
			"S":  0.45,
			"M":  0.50,
			"L":  0.55,
			"XL": 0.60,
		},
		DefaultSize: "M",
	}
}

// BodyColor resolves a color category, falling back to the default entry.
func (p Palette) BodyColor(name string) color.RGBA {
	if c, ok := p.BodyColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return p.BodyColors[p.DefaultColor]
}

// SizeFraction resolves a size category, falling back to the default entry.
func (p Palette) SizeFraction(size string) float64 {
	if f, ok := p.SizeFractions[strings.ToUpper(strings.TrimSpace(size))]; ok {
		return f
	}
	return p.SizeFractions[p.DefaultSize]
}

// Background returns the tone at idx, wrapping out-of-range indexes.
func (p Palette) Background(idx int) color.RGBA {
	if len(p.Backgrounds) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p.Backgrounds[modIndex(idx, len(p.Backgrounds))]
}

// StickerColor returns the sticker fill at idx, wrapping out-of-range indexes.
func (p Palette) StickerColor(idx int) color.RGBA {
	if len(p.StickerColors) == 0 {
		return color.RGBA{R: 255, G: 200, B: 0, A: 255}
	}
	return p.StickerColors[modIndex(idx, len(p.StickerColors))]
}

func modIndex(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

// isDark reports whether the channel sum falls below the midpoint of 0..765.
func isDark(c color.RGBA) bool {
	return int(c.R)+int(c.G)+int(c.B) < 382
}

// lighten blends c toward white by t in [0,1].
func lighten(c color.RGBA, t float64) color.RGBA {
	return blend(c, colorful.Color{R: 1, G: 1, B: 1}, t)
}

// darken blends c toward black by t in [0,1].
func darken(c color.RGBA, t float64) color.RGBA {
	return blend(c, colorful.Color{}, t)
}

func blend(c color.RGBA, target colorful.Color, t float64) color.RGBA {
	src, _ := colorful.MakeColor(c)
	r, g, b := src.BlendRgb(target, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// contrastShade picks the stripe tone: brighter on dark bodies, darker on light ones.
func contrastShade(body color.RGBA) color.RGBA {
	if isDark(body) {
		return lighten(body, 0.35)
	}
	return darken(body, 0.20)
}
