package imagepkg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStatus reports the outcome of ProbeFont.
type FontStatus int

const (
	FontAvailable FontStatus = iota
	FontFallback
)

func (s FontStatus) String() string {
	if s == FontAvailable {
		return "available"
	}
	return "fallback"
}

// FontSet is a parsed font shared read-only between renders.
type FontSet struct {
	font   *opentype.Font
	status FontStatus
	source string
}

// ProbeFont loads the font at path. Any failure selects the embedded Go
// Regular face instead; the returned status tells the caller which one won.
func ProbeFont(path string) (*FontSet, FontStatus) {
	if path != "" {
		if f, err := loadFontFile(path); err == nil {
			return &FontSet{font: f, status: FontAvailable, source: path}, FontAvailable
		}
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// goregular is compiled in; a parse failure means a broken build.
		panic(fmt.Sprintf("imagepkg: parse embedded font: %v", err))
	}
	return &FontSet{font: f, status: FontFallback, source: "goregular"}, FontFallback
}

func loadFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

func (fs *FontSet) Status() FontStatus { return fs.status }
func (fs *FontSet) Source() string     { return fs.source }

// NewMeasurer returns a face cache owned by a single render.
func (fs *FontSet) NewMeasurer() *FaceMeasurer {
	return &FaceMeasurer{font: fs.font, faces: make(map[float64]font.Face)}
}

// FaceMeasurer measures strings with pixel-exact ink bounds. Not safe for
// concurrent use.
type FaceMeasurer struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// Face returns the face at size, creating it on first use.
func (m *FaceMeasurer) Face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %.0fpx: %w", size, err)
	}
	m.faces[size] = f
	return f, nil
}

// Measure returns the ink box of text at size. A face error measures as zero.
func (m *FaceMeasurer) Measure(text string, size float64) TextExtent {
	face, err := m.Face(size)
	if err != nil {
		return TextExtent{}
	}
	b, _ := font.BoundString(face, text)
	return TextExtent{
		Width:   (b.Max.X - b.Min.X).Ceil(),
		Height:  (b.Max.Y - b.Min.Y).Ceil(),
		Ascent:  -b.Min.Y.Floor(),
		Bearing: b.Min.X.Floor(),
	}
}

// Close releases every cached face.
func (m *FaceMeasurer) Close() error {
	for size, f := range m.faces {
		f.Close()
		delete(m.faces, size)
	}
	return nil
}
