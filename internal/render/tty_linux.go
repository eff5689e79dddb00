//go:build linux

package render

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

// setConsoleMode switches the active virtual terminal between text and
// graphics mode. Graphics mode stops the kernel from drawing the console
// cursor over the framebuffer.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("KDSETMODE %d failed: unknown error", mode)
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range ttyPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %v", lastErr)
}

func enterGraphicsConsole(l Logger) {
	if err := setConsoleMode(kdGraphics); err != nil {
		logErr(l, "tty", "KD_GRAPHICS failed: %v", err)
	} else {
		logInfo(l, "tty", "KD_GRAPHICS set")
	}
	if err := writeVT("\x1b[?25l"); err != nil {
		logErr(l, "tty", "hide cursor failed: %v", err)
	}
}

func leaveGraphicsConsole(l Logger) {
	if err := writeVT("\x1b[?25h"); err != nil {
		logErr(l, "tty", "show cursor failed: %v", err)
	}
	if err := setConsoleMode(kdText); err != nil {
		logErr(l, "tty", "KD_TEXT failed: %v", err)
	} else {
		logInfo(l, "tty", "KD_TEXT set")
	}
}
