package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrDisplayInit wraps a driver failure while opening the facade. It is fatal.
	ErrDisplayInit = errors.New("display init failed")
	ErrAlreadyOpen = errors.New("a facade is already open in this process")
	ErrClosed      = errors.New("facade is closed")
	ErrDrawPanic   = errors.New("draw panicked")
)

// Category names one of the three independently flushed command queues.
type Category string

const (
	CategoryPolygons Category = "polygons"
	CategoryCircles  Category = "circles"
	CategoryRects    Category = "rects"
)

// DrawError records that a category flush stopped at a failing draw call.
// Frame is the frame number the flush belonged to (0 is the blank frame
// drawn by Open).
type DrawError struct {
	Category Category
	Frame    uint64
	Err      error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("Failed to draw %s: %v", e.Category, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }
