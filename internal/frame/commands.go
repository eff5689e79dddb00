package frame

import (
	"fmt"

	"github.com/quickframe/quickframe/internal/render"
)

// Polygon is a queued polygon draw. Width 0 fills the shape, a positive
// width strokes its outline.
type Polygon struct {
	Points []render.Point
	Color  render.Color
	Width  int
}

type Circle struct {
	Center render.Point
	Color  render.Color
	Radius float64
}

type Rect struct {
	Rect  render.Rect
	Color render.Color
}

// flushQueue draws queue in order and stops at the first failure. It
// returns how many commands were drawn. A panicking draw counts as a
// failure wrapped in ErrDrawPanic.
func flushQueue[T any](queue []T, draw func(T) error) (drawn int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDrawPanic, r)
		}
	}()
	for i, cmd := range queue {
		drawn = i
		if err := draw(cmd); err != nil {
			return i, err
		}
	}
	return len(queue), nil
}
