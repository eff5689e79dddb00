//go:build !linux

package render

import (
	"errors"

	"github.com/quickframe/quickframe/internal/config"
)

const DefaultFBDevice = "/dev/fb0"

var errNoFramebuffer = errors.New("framebuffer display is only available on linux")

// FBDriver stub for platforms without /dev/fb*.
type FBDriver struct {
	Device      string
	Logger      Logger
	KeepConsole bool
}

func NewFBDriver(logger Logger) *FBDriver {
	return &FBDriver{Device: DefaultFBDevice, Logger: logger}
}

func (d *FBDriver) Open(cfg config.Window) (Display, error) { return nil, errNoFramebuffer }
