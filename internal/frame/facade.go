// Package frame is a deferred drawing facade: callers queue polygons,
// circles and rects, and AdvanceFrame draws them all on a cleared canvas,
// presents it, and forgets them.
//
// A Facade is not safe for concurrent use and only one may be open per
// process.
package frame

import (
	"fmt"
	"sync/atomic"

	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/render"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(component, format string, args ...interface{})  {}
func (nopLogger) Errorf(component, format string, args ...interface{}) {}

// ErrorPolicy decides how long DrawErrors stay in the log.
type ErrorPolicy int

const (
	// ClearEachFrame empties the log at the start of every AdvanceFrame, so
	// Errors only ever shows failures of the latest frame.
	ClearEachFrame ErrorPolicy = iota
	// Accumulate keeps every failure until DrainErrors is called.
	Accumulate
)

type Options struct {
	Logger      Logger
	ErrorPolicy ErrorPolicy
}

// live guards the process-wide display initialization.
var live atomic.Bool

type Facade struct {
	cfg        config.Window
	background render.Color
	display    render.Display
	logger     Logger
	policy     ErrorPolicy

	polygons []Polygon
	circles  []Circle
	rects    []Rect

	errs    []*DrawError
	keys    render.KeyState
	stats   Stats
	running bool
	closed  bool
	frame   uint64
}

// Stats counts the commands actually drawn in one frame, per category.
type Stats struct {
	Polygons int
	Circles  int
	Rects    int
}

// Open initializes the display through driver and presents one blank frame.
// A driver failure is returned wrapped in ErrDisplayInit.
func Open(driver render.Driver, cfg config.Window, opts Options) (*Facade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !live.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}

	display, err := driver.Open(cfg)
	if err != nil {
		live.Store(false)
		return nil, fmt.Errorf("%w: %w", ErrDisplayInit, err)
	}

	f := &Facade{
		cfg:        cfg,
		background: render.ColorFromConfig(cfg.Background),
		display:    display,
		logger:     opts.Logger,
		policy:     opts.ErrorPolicy,
		keys:       render.KeyState{},
		running:    true,
	}
	if f.logger == nil {
		f.logger = nopLogger{}
	}

	if err := f.flush(); err != nil {
		_ = display.Close()
		live.Store(false)
		return nil, fmt.Errorf("%w: first frame: %w", ErrDisplayInit, err)
	}
	f.logger.Infof("frame", "opened %dx%d %q", cfg.Width, cfg.Height, cfg.Title)
	return f, nil
}

// EnqueuePolygon queues a polygon for the next frame. Nothing is validated
// until the frame is drawn.
func (f *Facade) EnqueuePolygon(points []render.Point, c render.Color, width int) {
	pts := make([]render.Point, len(points))
	copy(pts, points)
	f.polygons = append(f.polygons, Polygon{Points: pts, Color: c, Width: width})
}

func (f *Facade) EnqueueCircle(center render.Point, c render.Color, radius float64) {
	f.circles = append(f.circles, Circle{Center: center, Color: c, Radius: radius})
}

func (f *Facade) EnqueueRect(r render.Rect, c render.Color) {
	f.rects = append(f.rects, Rect{Rect: r, Color: c})
}

// AdvanceFrame polls window events, draws every queued command onto a
// cleared canvas, presents it and refreshes the key state.
//
// Draw failures never surface here; they land in Errors. A quit event stops
// the facade: the queues are dropped, nothing is presented, and Running
// reports false. Only collaborator failures outside drawing (clear, present)
// and use after stop are returned.
func (f *Facade) AdvanceFrame() error {
	if f.closed || !f.running {
		f.discard()
		return ErrClosed
	}
	if f.policy == ClearEachFrame {
		f.errs = nil
	}

	for _, ev := range f.display.PollEvents() {
		if ev.Type == render.EventQuit {
			f.running = false
		}
	}
	if !f.running {
		f.discard()
		f.logger.Infof("frame", "quit requested at frame %d", f.frame)
		return nil
	}

	f.frame++
	err := f.flush()
	f.keys = f.display.KeyState()
	return err
}

// flush clears the canvas, drains the three queues in fixed order and
// presents the result.
func (f *Facade) flush() error {
	if err := f.display.Clear(f.background); err != nil {
		f.discard()
		f.stats = Stats{}
		return fmt.Errorf("clear canvas: %w", err)
	}

	var stats Stats
	var err error
	stats.Polygons, err = flushQueue(f.polygons, func(p Polygon) error {
		return f.display.Polygon(p.Points, p.Color, p.Width)
	})
	f.record(CategoryPolygons, err)
	clear(f.polygons)
	f.polygons = f.polygons[:0]

	stats.Circles, err = flushQueue(f.circles, func(c Circle) error {
		return f.display.Circle(c.Center, c.Color, c.Radius)
	})
	f.record(CategoryCircles, err)
	f.circles = f.circles[:0]

	stats.Rects, err = flushQueue(f.rects, func(r Rect) error {
		return f.display.Rect(r.Rect, r.Color)
	})
	f.record(CategoryRects, err)
	f.rects = f.rects[:0]
	f.stats = stats

	if err := f.display.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", f.frame, err)
	}
	return nil
}

func (f *Facade) record(cat Category, err error) {
	if err == nil {
		return
	}
	de := &DrawError{Category: cat, Frame: f.frame, Err: err}
	f.errs = append(f.errs, de)
	f.logger.Errorf("frame", "frame %d: %v", f.frame, de)
}

func (f *Facade) discard() {
	clear(f.polygons)
	f.polygons = f.polygons[:0]
	f.circles = f.circles[:0]
	f.rects = f.rects[:0]
}

// Running is false once a quit event was seen or the facade was closed.
func (f *Facade) Running() bool { return f.running }

// Keys returns the key state captured by the last AdvanceFrame.
func (f *Facade) Keys() render.KeyState { return f.keys.Clone() }

// Errors returns the current error log.
func (f *Facade) Errors() []*DrawError {
	out := make([]*DrawError, len(f.errs))
	copy(out, f.errs)
	return out
}

// DrainErrors returns the error log and empties it.
func (f *Facade) DrainErrors() []*DrawError {
	out := f.errs
	f.errs = nil
	return out
}

func (f *Facade) Config() config.Window { return f.cfg }

// Frame is the number of frames drawn by AdvanceFrame so far.
func (f *Facade) Frame() uint64 { return f.frame }

// LastStats reports what the most recent flush drew.
func (f *Facade) LastStats() Stats { return f.stats }

// Pending reports how many commands are queued per category.
func (f *Facade) Pending() (polygons, circles, rects int) {
	return len(f.polygons), len(f.circles), len(f.rects)
}

// Close drops queued commands, closes the display and lets another facade open.
func (f *Facade) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.running = false
	f.discard()
	err := f.display.Close()
	live.Store(false)
	f.logger.Infof("frame", "closed after %d frames", f.frame)
	return err
}
