package scenes

import (
	"context"
	"fmt"

	"github.com/quickframe/quickframe/internal/render"
)

// Drawer is the enqueue side of the frame facade.
type Drawer interface {
	EnqueuePolygon(points []render.Point, c render.Color, width int)
	EnqueueCircle(center render.Point, c render.Color, radius float64)
	EnqueueRect(r render.Rect, c render.Color)
}

// FrameInfo is what a scene may look at while queuing one frame.
type FrameInfo struct {
	Frame  uint64
	Width  int
	Height int
	Keys   render.KeyState
}

type Scene interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(d Drawer, info FrameInfo)
}

// AppExiter is implemented by the host application.
// Scenes can call Exit to end the frame loop.
type AppExiter interface {
	Exit(err error)
}

// ByName builds one of the bundled scenes.
func ByName(name string, exiter AppExiter) (Scene, error) {
	switch name {
	case "", "shapes":
		return &ShapesScene{}, nil
	case "bounce":
		return NewBounceScene(exiter), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
