package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/frame"
	"github.com/quickframe/quickframe/internal/render"
)

func TestSimFaultsSurfaceAsDrawErrors(t *testing.T) {
	control := NewSimControl(nil)
	cfg := config.Default()
	cfg.Width, cfg.Height = 32, 32
	f, err := frame.Open(control, cfg, frame.Options{})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	control.SetFaults(SimFaults{CircleFail: true})
	f.EnqueueCircle(render.Pt(5, 5), render.RGB(1, 2, 3), 3)
	f.EnqueueRect(render.Rect{W: 4, H: 4}, render.RGB(1, 2, 3))
	require.NoError(t, f.AdvanceFrame())

	errs := f.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, frame.CategoryCircles, errs[0].Category)
	assert.ErrorIs(t, errs[0], errSimulatedDraw)
	assert.Equal(t, 1, f.LastStats().Rects)

	control.SetFaults(SimFaults{PresentFail: true})
	assert.ErrorIs(t, f.AdvanceFrame(), errSimulatedPresent)
}

func TestSimInjectReachesOpenDisplay(t *testing.T) {
	control := NewSimControl(nil)
	control.Inject(render.Event{Type: render.EventQuit})

	cfg := config.Default()
	cfg.Width, cfg.Height = 16, 16
	f, err := frame.Open(control, cfg, frame.Options{})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.NoError(t, f.AdvanceFrame())
	assert.True(t, f.Running())

	control.Inject(render.Event{Type: render.EventQuit})
	require.NoError(t, f.AdvanceFrame())
	assert.False(t, f.Running())
}

func TestSimFaultsEndpoint(t *testing.T) {
	control := NewSimControl(nil)
	mux := http.NewServeMux()
	registerSimEndpoints(mux, control)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sim/faults", strings.NewReader(`{"rectFail":true}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SimFaults{RectFail: true}, control.Faults())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sim/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SimFaults{}, control.Faults())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sim/faults", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
