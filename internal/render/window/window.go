package window

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/frame"
	"github.com/quickframe/quickframe/internal/render"
)

var ebitenKeys = map[render.Key]ebiten.Key{
	render.KeyA: ebiten.KeyA, render.KeyB: ebiten.KeyB, render.KeyC: ebiten.KeyC, render.KeyD: ebiten.KeyD, render.KeyE: ebiten.KeyE,
	render.KeyF: ebiten.KeyF, render.KeyG: ebiten.KeyG, render.KeyH: ebiten.KeyH, render.KeyI: ebiten.KeyI, render.KeyJ: ebiten.KeyJ,
	render.KeyK: ebiten.KeyK, render.KeyL: ebiten.KeyL, render.KeyM: ebiten.KeyM, render.KeyN: ebiten.KeyN, render.KeyO: ebiten.KeyO,
	render.KeyP: ebiten.KeyP, render.KeyQ: ebiten.KeyQ, render.KeyR: ebiten.KeyR, render.KeyS: ebiten.KeyS, render.KeyT: ebiten.KeyT,
	render.KeyU: ebiten.KeyU, render.KeyV: ebiten.KeyV, render.KeyW: ebiten.KeyW, render.KeyX: ebiten.KeyX, render.KeyY: ebiten.KeyY,
	render.KeyZ: ebiten.KeyZ,
	render.Key0: ebiten.KeyDigit0, render.Key1: ebiten.KeyDigit1, render.Key2: ebiten.KeyDigit2, render.Key3: ebiten.KeyDigit3,
	render.Key4: ebiten.KeyDigit4, render.Key5: ebiten.KeyDigit5, render.Key6: ebiten.KeyDigit6, render.Key7: ebiten.KeyDigit7,
	render.Key8: ebiten.KeyDigit8, render.Key9: ebiten.KeyDigit9,
	render.KeySpace: ebiten.KeySpace, render.KeyEnter: ebiten.KeyEnter, render.KeyEscape: ebiten.KeyEscape,
	render.KeyTab: ebiten.KeyTab, render.KeyBackspace: ebiten.KeyBackspace,
	render.KeyUp: ebiten.KeyArrowUp, render.KeyDown: ebiten.KeyArrowDown, render.KeyLeft: ebiten.KeyArrowLeft, render.KeyRight: ebiten.KeyArrowRight,
	render.KeyShift: ebiten.KeyShift, render.KeyControl: ebiten.KeyControl, render.KeyAlt: ebiten.KeyAlt,
	render.KeyF1: ebiten.KeyF1, render.KeyF2: ebiten.KeyF2, render.KeyF3: ebiten.KeyF3, render.KeyF4: ebiten.KeyF4,
	render.KeyF5: ebiten.KeyF5, render.KeyF6: ebiten.KeyF6, render.KeyF7: ebiten.KeyF7, render.KeyF8: ebiten.KeyF8,
	render.KeyF9: ebiten.KeyF9, render.KeyF10: ebiten.KeyF10, render.KeyF11: ebiten.KeyF11, render.KeyF12: ebiten.KeyF12,
}

// Run runs loop next to an ebiten window. Ebiten keeps the calling
// goroutine, which must be the main one; loop runs on its own goroutine and
// opens the window through the driver it is handed. The window goes away
// when loop returns or its display is closed.
func Run(logger render.Logger, loop func(driver render.Driver) error) error {
	game := &windowGame{keys: render.KeyState{}, logger: logger}
	driver := &Driver{game: game}

	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	loopErr := make(chan error, 1)
	go func() {
		err := loop(driver)
		game.finish()
		loopErr <- err
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		game.finish()
		<-loopErr
		return runError(err, game.hasStarted())
	}
	return <-loopErr
}

// runError classifies a RunGame failure. Before the first Update the window
// never came up, which is a display init failure like any other driver's.
func runError(err error, started bool) error {
	if !started {
		return fmt.Errorf("%w: window: %w", frame.ErrDisplayInit, err)
	}
	return fmt.Errorf("window: %w", err)
}

// Driver opens the ebiten window owned by Run.
type Driver struct {
	game *windowGame
}

func (d *Driver) Open(cfg config.Window) (render.Display, error) {
	if d.game == nil {
		return nil, errors.New("window driver used outside Run")
	}
	if !d.game.open(cfg.Width, cfg.Height) {
		return nil, errors.New("window already open")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	d.game.infof("window", "window open, size=%dx%d title=%q", cfg.Width, cfg.Height, cfg.Title)
	return &Display{Canvas: render.NewCanvas(cfg.Width, cfg.Height), game: d.game}, nil
}

type Display struct {
	*render.Canvas

	game *windowGame
}

func (d *Display) PollEvents() []render.Event { return d.game.drain() }

// Present hands a copy of the canvas to the window; it shows up on the
// window's next draw tick.
func (d *Display) Present() error {
	return d.game.present(d.Snapshot())
}

func (d *Display) KeyState() render.KeyState { return d.game.keyState() }

func (d *Display) Close() error {
	d.game.finish()
	return nil
}

// windowGame is the ebiten.Game side. Update and Draw run on the ebiten
// goroutine; everything shared with the display is guarded by mu.
type windowGame struct {
	logger render.Logger

	mu         sync.Mutex
	width      int
	height     int
	opened     bool
	frame      *image.RGBA
	keys       render.KeyState
	events     []render.Event
	quitPosted bool
	started    bool
	done       bool
}

func (g *windowGame) open(width, height int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.opened || g.done {
		return false
	}
	g.opened = true
	g.width, g.height = width, height
	return true
}

func (g *windowGame) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.started = true
	if g.done {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() && !g.quitPosted {
		g.quitPosted = true
		g.events = append(g.events, render.Event{Type: render.EventQuit})
	}
	for key, ek := range ebitenKeys {
		down := ebiten.IsKeyPressed(ek)
		if down == g.keys[key] {
			continue
		}
		if down {
			g.keys[key] = true
			g.events = append(g.events, render.Event{Type: render.EventKeyDown, Key: key})
		} else {
			delete(g.keys, key)
			g.events = append(g.events, render.Event{Type: render.EventKeyUp, Key: key})
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	frame := g.frame
	g.mu.Unlock()
	if frame == nil || !frame.Bounds().Eq(screen.Bounds()) {
		return
	}
	screen.WritePixels(frame.Pix)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.width > 0 && g.height > 0 {
		return g.width, g.height
	}
	return outsideWidth, outsideHeight
}

func (g *windowGame) present(frame *image.RGBA) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done {
		return errors.New("window closed")
	}
	g.frame = frame
	return nil
}

func (g *windowGame) drain() []render.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	events := g.events
	g.events = nil
	return events
}

func (g *windowGame) keyState() render.KeyState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.keys.Clone()
}

func (g *windowGame) hasStarted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

func (g *windowGame) finish() {
	g.mu.Lock()
	g.done = true
	g.mu.Unlock()
}

func (g *windowGame) infof(component, format string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Infof(component, format, args...)
	}
}
