package layout

import (
	"math"

	"github.com/quickframe/quickframe/internal/render"
)

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect render.Rect, paddingPx int) render.Rect {
	if paddingPx <= 0 {
		return rect
	}
	return Normalize(render.Rect{
		X: rect.X + paddingPx,
		Y: rect.Y + paddingPx,
		W: rect.W - 2*paddingPx,
		H: rect.H - 2*paddingPx,
	})
}

// Normalize flips negative sizes so that W and H are >= 0 and the box
// covers the same area.
func Normalize(rect render.Rect) render.Rect {
	if rect.W < 0 {
		rect.X += rect.W
		rect.W = -rect.W
	}
	if rect.H < 0 {
		rect.Y += rect.H
		rect.H = -rect.H
	}
	return rect
}

// Full is the whole canvas of the given size.
func Full(width, height int) render.Rect {
	return Normalize(render.Rect{W: width, H: height})
}

type Grid2x2Rects struct {
	TopLeft     render.Rect
	TopRight    render.Rect
	BottomLeft  render.Rect
	BottomRight render.Rect
}

// Grid2x2 splits rect into four quadrants; odd sizes give the extra pixel to the right/bottom.
func Grid2x2(rect render.Rect) Grid2x2Rects {
	rect = Normalize(rect)
	leftW := rect.W / 2
	topH := rect.H / 2
	return Grid2x2Rects{
		TopLeft:     render.Rect{X: rect.X, Y: rect.Y, W: leftW, H: topH},
		TopRight:    render.Rect{X: rect.X + leftW, Y: rect.Y, W: rect.W - leftW, H: topH},
		BottomLeft:  render.Rect{X: rect.X, Y: rect.Y + topH, W: leftW, H: rect.H - topH},
		BottomRight: render.Rect{X: rect.X + leftW, Y: rect.Y + topH, W: rect.W - leftW, H: rect.H - topH},
	}
}

// Center returns the midpoint of rect.
func Center(rect render.Rect) render.Point {
	return render.Pt(float64(rect.X)+float64(rect.W)/2, float64(rect.Y)+float64(rect.H)/2)
}

// FitSquare returns the largest square centered in rect.
func FitSquare(rect render.Rect) render.Rect {
	rect = Normalize(rect)
	size := rect.W
	if rect.H < size {
		size = rect.H
	}
	return render.Rect{
		X: rect.X + (rect.W-size)/2,
		Y: rect.Y + (rect.H-size)/2,
		W: size,
		H: size,
	}
}

// RegularPolygon returns the n corners of a regular polygon inscribed in a
// circle of the given radius, starting at the top.
func RegularPolygon(center render.Point, radius float64, n int) []render.Point {
	if n < 3 {
		n = 3
	}
	pts := make([]render.Point, n)
	for i := range pts {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = render.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	return pts
}
