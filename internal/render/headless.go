package render

import (
	"image"
	"sync"

	"github.com/quickframe/quickframe/internal/config"
)

// HeadlessDriver opens displays that only draw into memory. The last
// presented frame stays available for the preview server.
type HeadlessDriver struct {
	mu      sync.Mutex
	display *HeadlessDisplay
}

func NewHeadlessDriver() *HeadlessDriver { return &HeadlessDriver{} }

func (d *HeadlessDriver) Open(cfg config.Window) (Display, error) {
	display := &HeadlessDisplay{Canvas: NewCanvas(cfg.Width, cfg.Height), keys: KeyState{}}
	d.mu.Lock()
	d.display = display
	d.mu.Unlock()
	return display, nil
}

// Display returns the most recently opened display, or nil.
func (d *HeadlessDriver) Display() *HeadlessDisplay {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.display
}

// LatestFrame implements the preview server's frame source.
func (d *HeadlessDriver) LatestFrame() (*image.RGBA, uint64) {
	display := d.Display()
	if display == nil {
		return nil, 0
	}
	return display.LatestFrame()
}

type HeadlessDisplay struct {
	*Canvas

	mu        sync.Mutex
	pending   []Event
	keys      KeyState
	presented *image.RGBA
	presents  uint64
	closed    bool
}

// Inject queues an event for the next PollEvents. Key events also update
// the key state.
func (d *HeadlessDisplay) Inject(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, ev)
	switch ev.Type {
	case EventKeyDown:
		d.keys[ev.Key] = true
	case EventKeyUp:
		delete(d.keys, ev.Key)
	}
}

func (d *HeadlessDisplay) PollEvents() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	events := d.pending
	d.pending = nil
	return events
}

func (d *HeadlessDisplay) Present() error {
	snap := d.Snapshot()
	d.mu.Lock()
	d.presented = snap
	d.presents++
	d.mu.Unlock()
	return nil
}

func (d *HeadlessDisplay) KeyState() KeyState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys.Clone()
}

// LatestFrame returns the last presented frame and how many presents happened.
// The image must not be modified.
func (d *HeadlessDisplay) LatestFrame() (*image.RGBA, uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presented, d.presents
}

func (d *HeadlessDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *HeadlessDisplay) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}
