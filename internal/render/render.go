package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/quickframe/quickframe/internal/config"
)

// Driver initializes the graphics collaborator and creates the display surface.
type Driver interface {
	Open(cfg config.Window) (Display, error)
}

// Display is the window plus its canvas. Every draw primitive is a single
// fallible call; the facade decides what a failure means for the frame.
type Display interface {
	PollEvents() []Event

	Clear(c Color) error
	Polygon(points []Point, c Color, width int) error
	Circle(center Point, c Color, radius float64) error
	Rect(r Rect, c Color) error

	// Present shows the canvas in the window.
	Present() error
	KeyState() KeyState
	Close() error
}

// Logger is the subset of the app logger that displays report to.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Color is an RGB triple. Channels are plain ints and are only checked
// against 0..255 when the color reaches a draw primitive.
type Color struct {
	R, G, B int
}

func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b} }

func ColorFromConfig(c config.RGB) Color { return Color{R: c[0], G: c[1], B: c[2]} }

func (c Color) Valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B)
}

func (c Color) String() string { return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B) }

func (c Color) rgba() (color.RGBA, error) {
	if !c.Valid() {
		return color.RGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xFF}, nil
}

func inByte(v int) bool { return v >= 0 && v <= 255 }

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Image() image.Rectangle { return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H) }

type EventType int

const (
	EventUnknown EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

type Event struct {
	Type EventType
	Key  Key
}

// Stub implementations
type NoopDriver struct{}

func (NoopDriver) Open(cfg config.Window) (Display, error) { return &NoopDisplay{}, nil }

type NoopDisplay struct{}

func (*NoopDisplay) PollEvents() []Event                { return nil }
func (*NoopDisplay) Clear(Color) error                  { return nil }
func (*NoopDisplay) Polygon([]Point, Color, int) error  { return nil }
func (*NoopDisplay) Circle(Point, Color, float64) error { return nil }
func (*NoopDisplay) Rect(Rect, Color) error             { return nil }
func (*NoopDisplay) Present() error                     { return nil }
func (*NoopDisplay) KeyState() KeyState                 { return nil }
func (*NoopDisplay) Close() error                       { return nil }

func logInfo(l Logger, component, format string, args ...interface{}) {
	if l != nil {
		l.Infof(component, format, args...)
	}
}

func logErr(l Logger, component, format string, args ...interface{}) {
	if l != nil {
		l.Errorf(component, format, args...)
	}
}
