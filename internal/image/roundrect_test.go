package imagepkg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFill    = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	testOutline = color.RGBA{R: 68, G: 68, B: 68, A: 255}
)

func TestDrawRoundedRect_FillDecomposition(t *testing.T) {
	c := &recordCanvas{}
	b := Rect{X0: 10, Y0: 20, X1: 110, Y1: 80}

	DrawRoundedRect(c, b, 8, testFill, nil, 0)

	require.Equal(t, []string{"fillRect", "fillRect", "pie", "pie", "pie", "pie"}, c.ops())
	assert.Equal(t, Rect{X0: 18, Y0: 20, X1: 102, Y1: 80}, c.calls[0].rect)
	assert.Equal(t, Rect{X0: 10, Y0: 28, X1: 110, Y1: 72}, c.calls[1].rect)

	wantCorners := []struct {
		box        Rect
		start, end float64
	}{
		{Rect{X0: 10, Y0: 20, X1: 26, Y1: 36}, 180, 270},
		{Rect{X0: 94, Y0: 20, X1: 110, Y1: 36}, 270, 360},
		{Rect{X0: 94, Y0: 64, X1: 110, Y1: 80}, 0, 90},
		{Rect{X0: 10, Y0: 64, X1: 26, Y1: 80}, 90, 180},
	}
	for i, want := range wantCorners {
		got := c.calls[2+i]
		assert.Equal(t, want.box, got.rect, "corner %d box", i)
		assert.Equal(t, want.start, got.start, "corner %d start", i)
		assert.Equal(t, want.end, got.end, "corner %d end", i)
		assert.Equal(t, 90.0, got.end-got.start, "corner %d must span a quarter turn", i)
	}
}

func TestDrawRoundedRect_Outline(t *testing.T) {
	c := &recordCanvas{}
	b := Rect{X0: 0, Y0: 0, X1: 50, Y1: 40}

	DrawRoundedRect(c, b, 5, testFill, testOutline, 2)

	assert.Equal(t, 2, c.count("fillRect"))
	assert.Equal(t, 4, c.count("pie"))
	assert.Equal(t, 4, c.count("arc"))
	assert.Equal(t, 4, c.count("line"))

	// Edge strokes stop where the corner arcs begin.
	for _, call := range c.calls {
		if call.op != "line" {
			continue
		}
		assert.Equal(t, 2.0, call.width)
		if call.from.Y == call.to.Y {
			assert.Equal(t, 5.0, call.from.X)
			assert.Equal(t, 45.0, call.to.X)
		} else {
			assert.Equal(t, 5.0, call.from.Y)
			assert.Equal(t, 35.0, call.to.Y)
		}
	}
}

func TestDrawRoundedRect_ClampsRadius(t *testing.T) {
	c := &recordCanvas{}
	b := Rect{X0: 0, Y0: 0, X1: 40, Y1: 10}

	DrawRoundedRect(c, b, 100, testFill, nil, 0)

	// radius is clamped to half the short side: 5.
	assert.Equal(t, Rect{X0: 5, Y0: 0, X1: 35, Y1: 10}, c.calls[0].rect)
	assert.Equal(t, Rect{X0: 0, Y0: 5, X1: 40, Y1: 5}, c.calls[1].rect)
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, c.calls[2].rect)
}

func TestDrawRoundedRect_ZeroRadius(t *testing.T) {
	c := &recordCanvas{}
	b := Rect{X0: 1, Y0: 1, X1: 9, Y1: 9}

	DrawRoundedRect(c, b, 0, testFill, testOutline, 1)

	assert.Equal(t, []string{"fillRect", "line", "line", "line", "line"}, c.ops())
	assert.Equal(t, b, c.calls[0].rect)
}

func TestDrawRoundedRect_OutlineOnly(t *testing.T) {
	c := &recordCanvas{}

	DrawRoundedRect(c, Rect{X1: 30, Y1: 30}, 4, nil, testOutline, 1)

	assert.Zero(t, c.count("fillRect"))
	assert.Zero(t, c.count("pie"))
	assert.Equal(t, 4, c.count("arc"))
	assert.Equal(t, 4, c.count("line"))
}
