package scenes

import (
	"context"

	"github.com/quickframe/quickframe/internal/render"
	"github.com/quickframe/quickframe/internal/render/layout"
)

var (
	Purple = render.RGB(0x90, 0x00, 0xFF)
	Yellow = render.RGB(0xFF, 0xDC, 0x00)
	Teal   = render.RGB(0x1A, 0xBC, 0x9C)
	Coral  = render.RGB(0xFF, 0x6F, 0x59)
)

// ShapesScene draws one of each primitive in a 2x2 grid. It never changes.
type ShapesScene struct{}

func (*ShapesScene) Start(ctx context.Context) error { return nil }
func (*ShapesScene) Stop() error                     { return nil }

func (*ShapesScene) Draw(d Drawer, info FrameInfo) {
	grid := layout.Grid2x2(layout.Inset(layout.Full(info.Width, info.Height), 16))

	tl := layout.FitSquare(layout.Inset(grid.TopLeft, 12))
	d.EnqueuePolygon(layout.RegularPolygon(layout.Center(tl), float64(tl.W)/2, 6), Purple, 0)

	tr := layout.FitSquare(layout.Inset(grid.TopRight, 12))
	d.EnqueueCircle(layout.Center(tr), Yellow, float64(tr.W)/2)

	d.EnqueueRect(layout.Inset(grid.BottomLeft, 12), Teal)

	br := layout.FitSquare(layout.Inset(grid.BottomRight, 12))
	d.EnqueuePolygon(layout.RegularPolygon(layout.Center(br), float64(br.W)/2, 5), Coral, 4)
}
