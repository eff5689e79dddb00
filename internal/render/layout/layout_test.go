package layout

import (
	"testing"

	"github.com/quickframe/quickframe/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	got := Inset(render.Rect{X: 0, Y: 0, W: 100, H: 50}, 10)
	assert.Equal(t, render.Rect{X: 10, Y: 10, W: 80, H: 30}, got)

	// Over-inset collapses through zero instead of going negative.
	got = Inset(render.Rect{W: 10, H: 10}, 8)
	assert.GreaterOrEqual(t, got.W, 0)
	assert.GreaterOrEqual(t, got.H, 0)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, render.Rect{X: 5, Y: 2, W: 5, H: 3}, Normalize(render.Rect{X: 10, Y: 5, W: -5, H: -3}))
}

func TestGrid2x2CoversRect(t *testing.T) {
	g := Grid2x2(render.Rect{X: 0, Y: 0, W: 101, H: 51})
	assert.Equal(t, render.Rect{X: 0, Y: 0, W: 50, H: 25}, g.TopLeft)
	assert.Equal(t, render.Rect{X: 50, Y: 0, W: 51, H: 25}, g.TopRight)
	assert.Equal(t, render.Rect{X: 0, Y: 25, W: 50, H: 26}, g.BottomLeft)
	assert.Equal(t, render.Rect{X: 50, Y: 25, W: 51, H: 26}, g.BottomRight)
}

func TestFitSquareAndCenter(t *testing.T) {
	sq := FitSquare(render.Rect{X: 0, Y: 0, W: 200, H: 100})
	assert.Equal(t, render.Rect{X: 50, Y: 0, W: 100, H: 100}, sq)
	assert.Equal(t, render.Pt(100, 50), Center(sq))
}

func TestRegularPolygon(t *testing.T) {
	pts := RegularPolygon(render.Pt(0, 0), 10, 4)
	assert.Len(t, pts, 4)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -10, pts[0].Y, 1e-9)

	assert.Len(t, RegularPolygon(render.Pt(0, 0), 1, 1), 3)
}
