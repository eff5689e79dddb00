//go:build linux

package render

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	fb "github.com/gonutz/framebuffer"
	"github.com/quickframe/quickframe/internal/config"
	xdraw "golang.org/x/image/draw"
)

const DefaultFBDevice = "/dev/fb0"

// FBDriver renders to the Linux framebuffer through an offscreen canvas of
// the configured window size, scaled to the device on every present.
type FBDriver struct {
	Device string
	Logger Logger
	// KeepConsole leaves the VT in text mode, useful when debugging over a serial console.
	KeepConsole bool
}

func NewFBDriver(logger Logger) *FBDriver {
	return &FBDriver{Device: DefaultFBDevice, Logger: logger}
}

func (d *FBDriver) Open(cfg config.Window) (Display, error) {
	path := d.Device
	if path == "" {
		path = DefaultFBDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	bounds := dev.Bounds()
	logInfo(d.Logger, "fb", "framebuffer open, bounds=%dx%d canvas=%dx%d title=%q",
		bounds.Dx(), bounds.Dy(), cfg.Width, cfg.Height, cfg.Title)

	if !d.KeepConsole {
		enterGraphicsConsole(d.Logger)
	}

	display := &FBDisplay{
		Canvas:      NewCanvas(cfg.Width, cfg.Height),
		dev:         dev,
		logger:      d.Logger,
		keepConsole: d.KeepConsole,
		signals:     make(chan os.Signal, 1),
		keyboard:    startEvdevKeyboard(d.Logger),
	}
	signal.Notify(display.signals, os.Interrupt, syscall.SIGTERM)
	return display, nil
}

type FBDisplay struct {
	*Canvas

	dev         *fb.Device
	logger      Logger
	keepConsole bool
	signals     chan os.Signal
	keyboard    *evdevKeyboard
	closed      bool
}

// PollEvents reports key transitions since the last poll. SIGINT, SIGTERM and
// F4 are delivered as quit events since a framebuffer has no close button.
func (d *FBDisplay) PollEvents() []Event {
	events := d.keyboard.drain()
	for {
		select {
		case sig := <-d.signals:
			logInfo(d.logger, "fb", "received %v, requesting quit", sig)
			events = append(events, Event{Type: EventQuit})
		default:
			return events
		}
	}
}

// Present blits the canvas to the device using nearest-neighbor scaling.
func (d *FBDisplay) Present() error {
	if d.closed {
		return fmt.Errorf("framebuffer closed")
	}
	xdraw.NearestNeighbor.Scale(d.dev, d.dev.Bounds(), d.img, d.img.Bounds(), xdraw.Src, nil)
	return nil
}

func (d *FBDisplay) KeyState() KeyState { return d.keyboard.state() }

func (d *FBDisplay) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	signal.Stop(d.signals)
	d.keyboard.stop()
	if !d.keepConsole {
		leaveGraphicsConsole(d.logger)
	}
	d.dev.Close()
	logInfo(d.logger, "fb", "framebuffer closed")
	return nil
}
