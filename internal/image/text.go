package imagepkg

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Caption layout constants.
const (
	CaptionSeparator = "|"
	InitialFontSize  = 24
	FontSizeStep     = 2
	MinFontSize      = 14
	SideMargin       = 16
	LineSpacing      = 4
	BottomMargin     = 8
	WrapColumns      = 18
)

// TextExtent is the ink box of a string. Ascent is the distance from the
// baseline up to the top of the ink; Bearing is the ink's offset from the pen
// origin on the x axis.
type TextExtent struct {
	Width   int
	Height  int
	Ascent  int
	Bearing int
}

// Measurer measures a string at a pixel size.
type Measurer interface {
	Measure(text string, size float64) TextExtent
}

// TextLine is one positioned caption line. X and Y locate the top-left of
// its ink box.
type TextLine struct {
	Text string
	TextExtent
	X, Y int
}

// Baseline is the y to hand to a baseline-anchored text draw call.
func (l TextLine) Baseline() int { return l.Y + l.Ascent }

// Origin is the pen x that puts the ink's left edge at X.
func (l TextLine) Origin() int { return l.X - l.Bearing }

// TextBlock is the fitted, positioned caption.
type TextBlock struct {
	Lines       []TextLine
	FontSize    int
	Spacing     int
	Top         int
	TotalHeight int
	MaxWidth    int
	// Wrapped is set when the first line was re-split to fit.
	Wrapped bool
	// Overflow is set when the widest line is still wider than the canvas
	// minus SideMargin. The caption is drawn anyway.
	Overflow bool
	// PastMargin is set when the block had to start below the point that
	// keeps BottomMargin free; it may run off the canvas.
	PastMargin bool
}

// CaptionLines splits "name|id" into the name and id lines, or builds a
// single line for plain text.
func CaptionLines(raw string) []string {
	if name, id, ok := strings.Cut(raw, CaptionSeparator); ok {
		return []string{
			"Picture for " + strings.TrimSpace(name),
			"(" + strings.TrimSpace(id) + ")",
		}
	}
	return []string{"Picture for " + raw}
}

// LayoutText fits the caption of raw into a canvasW x canvasH canvas, never
// starting above anchorY.
func LayoutText(m Measurer, raw string, canvasW, canvasH, anchorY int) TextBlock {
	texts := CaptionLines(raw)
	limit := canvasW - SideMargin

	// The loop ends on MinFontSize, so lines hold the floor measurement when
	// nothing fits.
	var lines []TextLine
	size, fits := MinFontSize, false
	for s := InitialFontSize; s >= MinFontSize; s -= FontSizeStep {
		lines = measureLines(m, texts, s)
		if widest(lines) <= limit {
			size, fits = s, true
			break
		}
	}

	block := TextBlock{FontSize: size, Spacing: LineSpacing}

	if !fits && len(texts) == 2 && lines[0].Width > limit {
		if wrapped := wrapColumns(texts[0], WrapColumns); len(wrapped) > 1 {
			texts = append(wrapped, texts[1])
			lines = measureLines(m, texts, MinFontSize)
			block.Wrapped = true
		}
	}

	block.MaxWidth = widest(lines)
	block.Overflow = block.MaxWidth > limit

	for i, l := range lines {
		block.TotalHeight += l.Height
		if i > 0 {
			block.TotalHeight += LineSpacing
		}
	}

	top := max(anchorY, 0)
	if upper := canvasH - block.TotalHeight - BottomMargin; top > upper {
		block.PastMargin = true
	}
	block.Top = top

	y := top
	for i := range lines {
		lines[i].X = canvasW/2 - lines[i].Width/2
		lines[i].Y = y
		y += lines[i].Height + LineSpacing
	}
	block.Lines = lines
	return block
}

func measureLines(m Measurer, texts []string, size int) []TextLine {
	lines := make([]TextLine, len(texts))
	for i, t := range texts {
		lines[i] = TextLine{Text: t, TextExtent: m.Measure(t, float64(size))}
	}
	return lines
}

func widest(lines []TextLine) int {
	w := 0
	for _, l := range lines {
		w = max(w, l.Width)
	}
	return w
}

// wrapColumns breaks s at whitespace into lines of at most width display
// columns. Words longer than width are split.
func wrapColumns(s string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
	}

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww <= width {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
			continue
		}
		flush()
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww > 0 {
			cur.WriteString(word)
			curW = ww
		}
	}
	flush()
	return lines
}
