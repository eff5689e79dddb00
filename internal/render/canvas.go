package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	ErrInvalidColor  = errors.New("invalid color argument")
	ErrTooFewPoints  = errors.New("points argument must contain more than 2 points")
	ErrInvalidWidth  = errors.New("invalid stroke width")
	ErrInvalidRadius = errors.New("invalid radius")
	ErrInvalidRect   = errors.New("invalid rect")

	// ErrInvalidGeometry rejects coordinates the rasterizers cannot represent.
	ErrInvalidGeometry = errors.New("geometry out of range")
)

const (
	// MaxCoord bounds every coordinate and radius, in pixels. Past it the
	// fixed-point stroker wraps and the float32 filler overflows.
	MaxCoord = 1 << 20
	// MaxStrokeWidth bounds polygon outline thickness, in pixels.
	MaxStrokeWidth = 1 << 16
)

// kappa places cubic control points so that four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is the offscreen frame all displays draw into before presenting.
type Canvas struct {
	img    *image.RGBA
	filler *vector.Rasterizer
	stroke *raster.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		filler: vector.NewRasterizer(width, height),
		stroke: raster.NewRasterizer(width, height),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (width int, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

func (c *Canvas) Clear(col Color) error {
	rgba, err := col.rgba()
	if err != nil {
		return err
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: rgba}, image.Point{}, draw.Src)
	return nil
}

// Polygon fills the polygon when width is 0 and otherwise strokes its closed
// outline with the given thickness in pixels.
func (c *Canvas) Polygon(points []Point, col Color, width int) error {
	rgba, err := col.rgba()
	if err != nil {
		return err
	}
	if len(points) < 3 {
		return fmt.Errorf("%w (got %d)", ErrTooFewPoints, len(points))
	}
	if width < 0 || width > MaxStrokeWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	for _, p := range points {
		if !inRange(p.X) || !inRange(p.Y) {
			return fmt.Errorf("%w: point (%v, %v)", ErrInvalidGeometry, p.X, p.Y)
		}
	}

	if width == 0 {
		w, h := c.Size()
		c.filler.Reset(w, h)
		c.filler.DrawOp = draw.Over
		c.filler.MoveTo(float32(points[0].X), float32(points[0].Y))
		for _, p := range points[1:] {
			c.filler.LineTo(float32(p.X), float32(p.Y))
		}
		c.filler.ClosePath()
		c.filler.Draw(c.img, c.img.Bounds(), image.NewUniform(rgba), image.Point{})
		return nil
	}

	var path raster.Path
	path.Start(fix(points[0]))
	for _, p := range points[1:] {
		path.Add1(fix(p))
	}
	path.Add1(fix(points[0]))

	c.stroke.Clear()
	raster.Stroke(c.stroke, path, fixed.Int26_6(width<<6), raster.RoundCapper, raster.RoundJoiner)
	painter := raster.NewRGBAPainter(c.img)
	painter.SetColor(rgba)
	c.stroke.Rasterize(painter)
	return nil
}

// Circle fills a disc. A zero radius draws nothing.
func (c *Canvas) Circle(center Point, col Color, radius float64) error {
	rgba, err := col.rgba()
	if err != nil {
		return err
	}
	if radius < 0 || !finite(radius) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if radius > MaxCoord {
		return fmt.Errorf("%w: radius %v", ErrInvalidGeometry, radius)
	}
	if !inRange(center.X) || !inRange(center.Y) {
		return fmt.Errorf("%w: center (%v, %v)", ErrInvalidGeometry, center.X, center.Y)
	}
	if radius == 0 {
		return nil
	}

	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	k := float32(kappa) * r
	w, h := c.Size()
	z := c.filler
	z.Reset(w, h)
	z.DrawOp = draw.Over
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(rgba), image.Point{})
	return nil
}

func (c *Canvas) Rect(r Rect, col Color) error {
	rgba, err := col.rgba()
	if err != nil {
		return err
	}
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidRect, r.W, r.H)
	}
	if r.X > math.MaxInt-r.W || r.Y > math.MaxInt-r.H {
		return fmt.Errorf("%w: (%d, %d) %dx%d overflows", ErrInvalidRect, r.X, r.Y, r.W, r.H)
	}
	draw.Draw(c.img, r.Image(), &image.Uniform{C: rgba}, image.Point{}, draw.Src)
	return nil
}

func fix(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func inRange(v float64) bool { return finite(v) && math.Abs(v) <= MaxCoord }
