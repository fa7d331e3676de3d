package imagepkg

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMeasurer gives every rune an advance of k*size pixels and every line a
// height equal to the size.
type fakeMeasurer struct {
	k float64
}

func (m fakeMeasurer) Measure(text string, size float64) TextExtent {
	n := utf8.RuneCountInString(text)
	return TextExtent{
		Width:  int(float64(n) * size * m.k),
		Height: int(size),
		Ascent: int(size * 0.8),
	}
}

func TestCaptionLines(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Acme Tote|42", []string{"Picture for Acme Tote", "(42)"}},
		{" Acme Tote | 42 ", []string{"Picture for Acme Tote", "(42)"}},
		{"Acme Tote", []string{"Picture for Acme Tote"}},
		{"a|b|c", []string{"Picture for a", "(b|c)"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaptionLines(tt.raw), tt.raw)
	}
}

func TestLayoutText_LargestSizeThatFits(t *testing.T) {
	m := fakeMeasurer{k: 0.5}

	block := LayoutText(m, "Acme Tote|42", 400, 297, 185)
	assert.Equal(t, InitialFontSize, block.FontSize)
	assert.False(t, block.Overflow)

	// 21 runes * 0.5 = 10.5px per size unit; limit 200 admits 18 (189px) but not 20 (210px).
	block = LayoutText(m, "Acme Tote|42", 216, 297, 185)
	assert.Equal(t, 18, block.FontSize)
	assert.LessOrEqual(t, block.MaxWidth, 216-SideMargin)
	assert.False(t, block.Wrapped)
}

func TestLayoutText_FitGuaranteeSweep(t *testing.T) {
	m := fakeMeasurer{k: 0.55}
	captions := []string{
		"Acme Tote|42",
		"Weekender Duffel Large|1003",
		"Tiny|1",
		"Hard Shell Spinner With Extra Long Marketing Name|77",
		"Plain caption without id",
	}
	for _, c := range captions {
		for w := 120; w <= 800; w += 40 {
			block := LayoutText(m, c, w, 300, 180)

			assert.GreaterOrEqual(t, block.FontSize, MinFontSize)
			assert.LessOrEqual(t, block.FontSize, InitialFontSize)
			assert.Zero(t, block.FontSize%2, "sizes step by two from 24")
			if !block.Overflow {
				assert.LessOrEqual(t, block.MaxWidth, w-SideMargin, "%q at %dpx", c, w)
			}
		}
	}
}

func TestLayoutText_FloorOverflowSingleLine(t *testing.T) {
	m := fakeMeasurer{k: 0.5}
	block := LayoutText(m, "A caption far too long for this canvas", 100, 297, 185)

	assert.Equal(t, MinFontSize, block.FontSize)
	assert.True(t, block.Overflow)
	assert.False(t, block.Wrapped, "single-line captions are never wrapped")
	assert.Len(t, block.Lines, 1)
}

func TestLayoutText_WrapFallback(t *testing.T) {
	m := fakeMeasurer{k: 0.5}
	raw := "Name Long Enough To Overflow|7"

	block := LayoutText(m, raw, 200, 297, 150)

	require.True(t, block.Wrapped)
	assert.Equal(t, MinFontSize, block.FontSize)
	assert.Greater(t, len(block.Lines), 2, "wrapping adds lines")
	assert.Equal(t, "(7)", block.Lines[len(block.Lines)-1].Text, "id line stays last")

	var rejoined []string
	for _, l := range block.Lines[:len(block.Lines)-1] {
		assert.LessOrEqual(t, utf8.RuneCountInString(l.Text), WrapColumns)
		rejoined = append(rejoined, l.Text)
	}
	assert.Equal(t, "Picture for Name Long Enough To Overflow", strings.Join(rejoined, " "))
	assert.False(t, block.Overflow)
}

func TestLayoutText_WrapSkippedWhenItCannotSplit(t *testing.T) {
	// Huge glyphs: even the 16-rune first line overflows, but it already fits
	// in one wrap column, so the line count cannot grow.
	m := fakeMeasurer{k: 5}
	block := LayoutText(m, "Tote|1", 400, 297, 185)

	assert.False(t, block.Wrapped)
	assert.True(t, block.Overflow)
	assert.Len(t, block.Lines, 2)
}

func TestLayoutText_Placement(t *testing.T) {
	m := fakeMeasurer{k: 0.5}
	block := LayoutText(m, "Acme Tote|42", 400, 297, 185)

	require.Len(t, block.Lines, 2)
	assert.Equal(t, 185, block.Top)
	assert.False(t, block.PastMargin)
	assert.Equal(t, 24+LineSpacing+24, block.TotalHeight)

	first, second := block.Lines[0], block.Lines[1]
	assert.Equal(t, 185, first.Y)
	assert.Equal(t, first.Y+first.Height+LineSpacing, second.Y)
	for _, l := range block.Lines {
		assert.InDelta(t, 200, l.X+l.Width/2, 1, "%q is centered", l.Text)
		assert.Equal(t, l.Y+l.Ascent, l.Baseline())
	}
}

func TestLayoutText_LowerBoundWins(t *testing.T) {
	m := fakeMeasurer{k: 0.5}
	block := LayoutText(m, "Acme Tote|42", 400, 297, 280)

	assert.Equal(t, 280, block.Top, "text never moves above the anchor")
	assert.True(t, block.PastMargin)
}

func TestLayoutText_NegativeAnchorClampsToZero(t *testing.T) {
	block := LayoutText(fakeMeasurer{k: 0.5}, "x", 400, 297, -20)
	assert.Equal(t, 0, block.Top)
}

func TestWrapColumns(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Picture for Acme Tote Deluxe", []string{"Picture for Acme", "Tote Deluxe"}},
		{"abcdefghijklmnopqrstuvwxyz", []string{"abcdefghijklmnopqr", "stuvwxyz"}},
		{"short", []string{"short"}},
		{"   ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrapColumns(tt.in, 18), tt.in)
	}
}
