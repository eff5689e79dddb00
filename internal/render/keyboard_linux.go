//go:build linux

package render

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyF4 = 62
)

var evdevKeys = map[uint16]Key{
	1: KeyEscape, 14: KeyBackspace, 15: KeyTab, 28: KeyEnter, 57: KeySpace,
	2: Key1, 3: Key2, 4: Key3, 5: Key4, 6: Key5, 7: Key6, 8: Key7, 9: Key8, 10: Key9, 11: Key0,
	16: KeyQ, 17: KeyW, 18: KeyE, 19: KeyR, 20: KeyT, 21: KeyY, 22: KeyU, 23: KeyI, 24: KeyO, 25: KeyP,
	30: KeyA, 31: KeyS, 32: KeyD, 33: KeyF, 34: KeyG, 35: KeyH, 36: KeyJ, 37: KeyK, 38: KeyL,
	44: KeyZ, 45: KeyX, 46: KeyC, 47: KeyV, 48: KeyB, 49: KeyN, 50: KeyM,
	29: KeyControl, 97: KeyControl, 42: KeyShift, 54: KeyShift, 56: KeyAlt, 100: KeyAlt,
	103: KeyUp, 105: KeyLeft, 106: KeyRight, 108: KeyDown,
	59: KeyF1, 60: KeyF2, 61: KeyF3, keyF4: KeyF4, 63: KeyF5, 64: KeyF6, 65: KeyF7, 66: KeyF8,
	67: KeyF9, 68: KeyF10, 87: KeyF11, 88: KeyF12,
}

// evdevKeyboard tracks held keys from every /dev/input/event* device.
// It is best-effort: without readable devices the key state stays empty.
type evdevKeyboard struct {
	mu     sync.Mutex
	keys   KeyState
	events []Event

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func startEvdevKeyboard(logger Logger) *evdevKeyboard {
	ctx, cancel := context.WithCancel(context.Background())
	kb := &evdevKeyboard{keys: KeyState{}, cancel: cancel}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found, key state disabled")
		}
		return kb
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4
	if eventSize <= 0 {
		eventSize = 24
	}

	for _, path := range paths {
		kb.wg.Add(1)
		go func(p string) {
			defer kb.wg.Done()
			kb.read(ctx, p, tvSize, eventSize)
		}(path)
	}
	return kb
}

func (kb *evdevKeyboard) read(ctx context.Context, path string, tvSize, eventSize int) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if typ != evKey {
				continue
			}
			key, ok := evdevKeys[code]
			if !ok {
				continue
			}
			kb.apply(key, code, value)
		}
	}
}

// apply records a key transition; value 2 is autorepeat and changes nothing.
func (kb *evdevKeyboard) apply(key Key, code uint16, value int32) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	switch value {
	case 1:
		kb.keys[key] = true
		kb.events = append(kb.events, Event{Type: EventKeyDown, Key: key})
		if code == keyF4 {
			kb.events = append(kb.events, Event{Type: EventQuit})
		}
	case 0:
		delete(kb.keys, key)
		kb.events = append(kb.events, Event{Type: EventKeyUp, Key: key})
	}
}

func (kb *evdevKeyboard) drain() []Event {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	events := kb.events
	kb.events = nil
	return events
}

func (kb *evdevKeyboard) state() KeyState {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return kb.keys.Clone()
}

func (kb *evdevKeyboard) stop() {
	kb.cancel()
	kb.wg.Wait()
}
