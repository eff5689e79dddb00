package web

import (
	"image"

	"github.com/quickframe/quickframe/internal/render"
	"github.com/quickframe/quickframe/internal/state"
)

// StatusSource is typically *state.Store, published by the frame loop.
type StatusSource interface {
	Snapshot() state.Status
}

// FrameSource hands out the last presented frame and its present count.
// *render.HeadlessDriver implements it.
type FrameSource interface {
	LatestFrame() (*image.RGBA, uint64)
}

// EventSink accepts synthetic window events. Only the simulator wires one,
// with *render.HeadlessDisplay.
type EventSink interface {
	Inject(ev render.Event)
}

type APIV1Deps struct {
	Status StatusSource
	Frames FrameSource
	Events EventSink
	// PublicURL is encoded by GET /qr.png. Empty disables the route.
	PublicURL string
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Status == nil {
		out.Status = state.NewStore()
	}
	if out.Frames == nil {
		out.Frames = NoopFrameSource{}
	}
	if out.Events == nil {
		out.Events = NoopEventSink{}
	}
	return out
}

type NoopFrameSource struct{}

func (NoopFrameSource) LatestFrame() (*image.RGBA, uint64) { return nil, 0 }

type NoopEventSink struct{}

func (NoopEventSink) Inject(render.Event) {}

// eventsEnabled reports whether POST /events can do anything.
func (d APIV1Deps) eventsEnabled() bool {
	_, noop := d.Events.(NoopEventSink)
	return !noop
}
