package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/quickframe/quickframe/internal/app/scenes"
	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/frame"
	"github.com/quickframe/quickframe/internal/render"
	"github.com/quickframe/quickframe/internal/state"
)

const DefaultFPS = 30

// Facade is the part of frame.Facade the loop drives.
type Facade interface {
	scenes.Drawer
	AdvanceFrame() error
	Running() bool
	Keys() render.KeyState
	Errors() []*frame.DrawError
	Frame() uint64
	LastStats() frame.Stats
	Config() config.Window
	Close() error
}

type App struct {
	Facade Facade
	Scene  scenes.Scene
	Store  *state.Store
	Logger Logger

	// FPS caps the loop rate. Zero or less runs frames back to back.
	FPS int
	// QuitKey ends the loop like a window close. KeyUnknown disables it.
	QuitKey render.Key

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(facade Facade, scene scenes.Scene, store *state.Store) *App {
	return &App{
		Facade:  facade,
		Scene:   scene,
		Store:   store,
		Logger:  NoopLogger{},
		FPS:     DefaultFPS,
		QuitKey: render.KeyEscape,
		exitCh:  make(chan error, 1),
	}
}

// Exit requests the app to stop running.
// Any scene can call this to end the loop via the generic codepath.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Run drives one AdvanceFrame per tick until the facade stops running, a
// scene calls Exit, or ctx is done. The facade is closed on return.
func (app *App) Run(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.exitOnce.Store(false)
	defer func() {
		if err := app.Facade.Close(); err != nil {
			app.Logger.Errorf("app", "close display: %v", err)
		}
	}()

	if err := app.Scene.Start(ctx); err != nil {
		app.Store.Fail(err)
		app.Logger.Errorf("app", "scene start error: %v", err)
		return err
	}
	defer func() { _ = app.Scene.Stop() }()

	app.publish(state.RUNNING)

	var tick <-chan time.Time
	if app.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(app.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	cfg := app.Facade.Config()
	keys := app.Facade.Keys()
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return app.stop(ctx.Err())
			case err := <-app.exitCh:
				return app.stop(err)
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return app.stop(ctx.Err())
			case err := <-app.exitCh:
				return app.stop(err)
			default:
			}
		}

		app.Scene.Draw(app.Facade, scenes.FrameInfo{
			Frame:  app.Facade.Frame() + 1,
			Width:  cfg.Width,
			Height: cfg.Height,
			Keys:   keys,
		})
		if err := app.Facade.AdvanceFrame(); err != nil {
			if errors.Is(err, frame.ErrClosed) {
				return app.stop(nil)
			}
			app.Store.Fail(err)
			app.Logger.Errorf("app", "frame %d: %v", app.Facade.Frame(), err)
			return err
		}
		if !app.Facade.Running() {
			app.Logger.Infof("app", "window closed after %d frames", app.Facade.Frame())
			return app.stop(nil)
		}

		keys = app.Facade.Keys()
		app.publish(state.RUNNING)
		if app.QuitKey != render.KeyUnknown && keys.Pressed(app.QuitKey) {
			app.Logger.Infof("app", "quit key %s pressed", app.QuitKey)
			return app.stop(nil)
		}
	}
}

func (app *App) stop(err error) error {
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	app.publish(state.STOPPED)
	return err
}

func (app *App) publish(phase state.Phase) {
	cfg := app.Facade.Config()
	stats := app.Facade.LastStats()
	drawErrs := app.Facade.Errors()
	msgs := make([]string, len(drawErrs))
	for i, de := range drawErrs {
		msgs[i] = de.Error()
	}
	app.Store.Publish(state.Status{
		Phase:    phase,
		Title:    cfg.Title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Frame:    app.Facade.Frame(),
		Errors:   msgs,
		Pressed:  app.Facade.Keys().Names(),
		Polygons: stats.Polygons,
		Circles:  stats.Circles,
		Rects:    stats.Rects,
	})
}
