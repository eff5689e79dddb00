package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/render"
)

// SimFaults makes the simulated display fail on purpose, so the per-category
// error reporting can be watched in the preview page.
type SimFaults struct {
	PolygonFail bool `json:"polygonFail"`
	CircleFail  bool `json:"circleFail"`
	RectFail    bool `json:"rectFail"`
	PresentFail bool `json:"presentFail"`
}

var (
	errSimulatedDraw    = errors.New("simulated draw failure")
	errSimulatedPresent = errors.New("simulated present failure")
)

// SimControl wraps a headless driver with switchable faults and forwards
// injected events to whichever display is open.
type SimControl struct {
	headless *render.HeadlessDriver

	faults struct {
		mu sync.RWMutex
		v  SimFaults
	}
}

func NewSimControl(headless *render.HeadlessDriver) *SimControl {
	if headless == nil {
		headless = render.NewHeadlessDriver()
	}
	return &SimControl{headless: headless}
}

func (c *SimControl) Faults() SimFaults {
	c.faults.mu.RLock()
	defer c.faults.mu.RUnlock()
	return c.faults.v
}

func (c *SimControl) SetFaults(v SimFaults) {
	c.faults.mu.Lock()
	c.faults.v = v
	c.faults.mu.Unlock()
}

func (c *SimControl) Reset() { c.SetFaults(SimFaults{}) }

// Open implements render.Driver.
func (c *SimControl) Open(cfg config.Window) (render.Display, error) {
	display, err := c.headless.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &simDisplay{Display: display, control: c}, nil
}

// Inject implements web.EventSink. Events sent before the display opens are dropped.
func (c *SimControl) Inject(ev render.Event) {
	if display := c.headless.Display(); display != nil {
		display.Inject(ev)
	}
}

type simDisplay struct {
	render.Display
	control *SimControl
}

func (d *simDisplay) Polygon(points []render.Point, col render.Color, width int) error {
	if d.control.Faults().PolygonFail {
		return errSimulatedDraw
	}
	return d.Display.Polygon(points, col, width)
}

func (d *simDisplay) Circle(center render.Point, col render.Color, radius float64) error {
	if d.control.Faults().CircleFail {
		return errSimulatedDraw
	}
	return d.Display.Circle(center, col, radius)
}

func (d *simDisplay) Rect(r render.Rect, col render.Color) error {
	if d.control.Faults().RectFail {
		return errSimulatedDraw
	}
	return d.Display.Rect(r, col)
}

func (d *simDisplay) Present() error {
	if d.control.Faults().PresentFail {
		return errSimulatedPresent
	}
	return d.Display.Present()
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		control.Reset()
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/sim/faults", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeSimJSON(w, http.StatusOK, control.Faults())
			return
		case http.MethodPost:
			var patch struct {
				PolygonFail *bool `json:"polygonFail"`
				CircleFail  *bool `json:"circleFail"`
				RectFail    *bool `json:"rectFail"`
				PresentFail *bool `json:"presentFail"`
			}
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				writeSimError(w, http.StatusBadRequest, "invalid json")
				return
			}
			current := control.Faults()
			if patch.PolygonFail != nil {
				current.PolygonFail = *patch.PolygonFail
			}
			if patch.CircleFail != nil {
				current.CircleFail = *patch.CircleFail
			}
			if patch.RectFail != nil {
				current.RectFail = *patch.RectFail
			}
			if patch.PresentFail != nil {
				current.PresentFail = *patch.PresentFail
			}
			control.SetFaults(current)
			writeSimJSON(w, http.StatusOK, current)
			return
		default:
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
	})
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
