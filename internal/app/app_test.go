package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickframe/quickframe/internal/app/scenes"
	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/frame"
	"github.com/quickframe/quickframe/internal/render"
	"github.com/quickframe/quickframe/internal/state"
)

type funcScene struct {
	started, stopped bool
	draw             func(d scenes.Drawer, info scenes.FrameInfo)
}

func (s *funcScene) Start(ctx context.Context) error { s.started = true; return nil }
func (s *funcScene) Stop() error                     { s.stopped = true; return nil }
func (s *funcScene) Draw(d scenes.Drawer, info scenes.FrameInfo) {
	if s.draw != nil {
		s.draw(d, info)
	}
}

func openHeadless(t *testing.T) (*frame.Facade, *render.HeadlessDisplay) {
	t.Helper()
	driver := render.NewHeadlessDriver()
	cfg := config.Default()
	cfg.Width, cfg.Height = 64, 48
	f, err := frame.Open(driver, cfg, frame.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, driver.Display()
}

func newTestApp(f *frame.Facade, scene scenes.Scene) *App {
	a := New(f, scene, state.NewStore())
	a.FPS = 0
	return a
}

func TestRunStopsOnQuitEvent(t *testing.T) {
	f, display := openHeadless(t)
	scene := &funcScene{}
	scene.draw = func(d scenes.Drawer, info scenes.FrameInfo) {
		d.EnqueueRect(render.Rect{W: 4, H: 4}, render.RGB(255, 0, 0))
		if info.Frame == 3 {
			display.Inject(render.Event{Type: render.EventQuit})
		}
	}
	a := newTestApp(f, scene)

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, scene.started)
	assert.True(t, scene.stopped)
	assert.True(t, display.Closed())
	assert.False(t, f.Running())

	status := a.Store.Snapshot()
	assert.Equal(t, state.STOPPED, status.Phase)
	assert.Equal(t, uint64(2), status.Frame)
	assert.Equal(t, 64, status.Width)
}

func TestRunReturnsExitError(t *testing.T) {
	f, _ := openHeadless(t)
	boom := errors.New("boom")
	scene := &funcScene{}
	a := newTestApp(f, scene)
	scene.draw = func(d scenes.Drawer, info scenes.FrameInfo) {
		if info.Frame == 2 {
			a.Exit(boom)
			a.Exit(errors.New("ignored"))
		}
	}

	assert.ErrorIs(t, a.Run(context.Background()), boom)
	assert.Equal(t, uint64(2), f.Frame())
}

func TestRunPublishesDrawErrors(t *testing.T) {
	f, _ := openHeadless(t)
	scene := &funcScene{}
	a := newTestApp(f, scene)
	scene.draw = func(d scenes.Drawer, info scenes.FrameInfo) {
		d.EnqueueCircle(render.Pt(10, 10), render.RGB(0, 255, 0), -1)
		d.EnqueueRect(render.Rect{W: 8, H: 8}, render.RGB(0, 0, 255))
		if info.Frame == 3 {
			a.Exit(nil)
		}
	}

	require.NoError(t, a.Run(context.Background()))
	status := a.Store.Snapshot()
	require.Len(t, status.Errors, 1)
	assert.Contains(t, status.Errors[0], "Failed to draw circles")
	assert.Equal(t, 1, status.Rects)
	assert.Equal(t, 0, status.Circles)
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, display := openHeadless(t)
	scene := &funcScene{}
	scene.draw = func(d scenes.Drawer, info scenes.FrameInfo) {
		if info.Frame == 2 {
			display.Inject(render.Event{Type: render.EventKeyDown, Key: render.KeyEscape})
		}
	}
	a := newTestApp(f, scene)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, uint64(2), f.Frame())
	assert.Equal(t, []string{"escape"}, a.Store.Snapshot().Pressed)
}

func TestRunHonorsContext(t *testing.T) {
	f, _ := openHeadless(t)
	a := newTestApp(f, &funcScene{})
	a.FPS = 200

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := a.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, f.Frame(), uint64(0))
	assert.Equal(t, state.STOPPED, a.Store.Snapshot().Phase)
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	NewFileLogger(&buf).Errorf("frame", "frame %d failed", 7)
	assert.Contains(t, buf.String(), "[ERROR] frame: frame 7 failed\n")
}

func TestConsoleLoggerPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf).Infof("app", "hello %s", "there")
	assert.Contains(t, buf.String(), "[INFO] app: hello there\n")
}

func TestRunOverNoopDriver(t *testing.T) {
	f, err := frame.Open(render.NoopDriver{}, config.Default(), frame.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	scene := &funcScene{}
	a := newTestApp(f, scene)
	scene.draw = func(d scenes.Drawer, info scenes.FrameInfo) {
		d.EnqueuePolygon([]render.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}, render.RGB(1, 2, 3), 0)
		if info.Frame == 2 {
			a.Exit(nil)
		}
	}

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, uint64(2), f.Frame())
	status := a.Store.Snapshot()
	assert.Equal(t, 1, status.Polygons)
	assert.Empty(t, status.Pressed)
}
