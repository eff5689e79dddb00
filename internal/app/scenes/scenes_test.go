package scenes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickframe/quickframe/internal/render"
)

type recorder struct {
	polygons [][]render.Point
	widths   []int
	circles  []render.Point
	radii    []float64
	rects    []render.Rect
}

func (r *recorder) EnqueuePolygon(points []render.Point, c render.Color, width int) {
	r.polygons = append(r.polygons, points)
	r.widths = append(r.widths, width)
}

func (r *recorder) EnqueueCircle(center render.Point, c render.Color, radius float64) {
	r.circles = append(r.circles, center)
	r.radii = append(r.radii, radius)
}

func (r *recorder) EnqueueRect(rect render.Rect, c render.Color) {
	r.rects = append(r.rects, rect)
}

type exitRecorder struct{ calls int }

func (e *exitRecorder) Exit(err error) { e.calls++ }

func TestByName(t *testing.T) {
	s, err := ByName("", nil)
	require.NoError(t, err)
	assert.IsType(t, &ShapesScene{}, s)

	s, err = ByName("bounce", nil)
	require.NoError(t, err)
	assert.IsType(t, &BounceScene{}, s)

	_, err = ByName("tetris", nil)
	assert.Error(t, err)
}

func TestShapesSceneQueuesEveryPrimitive(t *testing.T) {
	rec := &recorder{}
	s := &ShapesScene{}
	require.NoError(t, s.Start(context.Background()))
	s.Draw(rec, FrameInfo{Width: 800, Height: 600})

	require.Len(t, rec.polygons, 2)
	assert.Len(t, rec.polygons[0], 6)
	assert.Len(t, rec.polygons[1], 5)
	assert.Equal(t, []int{0, 4}, rec.widths)
	require.Len(t, rec.circles, 1)
	assert.Greater(t, rec.radii[0], 0.0)
	require.Len(t, rec.rects, 1)
	assert.Equal(t, render.Rect{X: 28, Y: 312, W: 360, H: 260}, rec.rects[0])
}

func TestBounceSceneMovesBallAndPaddle(t *testing.T) {
	s := NewBounceScene(nil)
	require.NoError(t, s.Start(context.Background()))

	rec := &recorder{}
	s.Draw(rec, FrameInfo{Width: 400, Height: 300, Keys: render.KeyState{}})
	first := s.Ball()
	startPaddle := rec.rects[0]

	rec = &recorder{}
	s.Draw(rec, FrameInfo{Width: 400, Height: 300, Keys: render.KeyState{render.KeyRight: true}})
	assert.NotEqual(t, first, s.Ball())
	assert.Equal(t, startPaddle.X+paddleStep, rec.rects[0].X)
	require.Len(t, rec.polygons, 1)
	assert.Equal(t, []int{2}, rec.widths)
}

func TestBounceSceneKeepsBallInside(t *testing.T) {
	s := NewBounceScene(nil)
	rec := &recorder{}
	for i := 0; i < 500; i++ {
		s.Draw(rec, FrameInfo{Width: 200, Height: 150})
		b := s.Ball()
		require.GreaterOrEqual(t, b.X, float64(ballRadius))
		require.LessOrEqual(t, b.X, float64(200-ballRadius))
		require.GreaterOrEqual(t, b.Y, float64(ballRadius))
		require.LessOrEqual(t, b.Y, float64(150-ballRadius))
	}
}

func TestBounceSceneQuitKeyRequestsExit(t *testing.T) {
	exiter := &exitRecorder{}
	s := NewBounceScene(exiter)
	s.Draw(&recorder{}, FrameInfo{Width: 200, Height: 150, Keys: render.KeyState{render.KeyQ: true}})
	assert.Equal(t, 1, exiter.calls)
}
