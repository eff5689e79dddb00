package scenes

import (
	"context"

	"github.com/quickframe/quickframe/internal/render"
)

const (
	ballRadius   = 14
	paddleWidth  = 120
	paddleHeight = 14
	paddleStep   = 8
	ballStep     = 4
)

// BounceScene moves a ball around the window and lets the arrow keys steer a
// paddle along the bottom edge. Pressing Q asks the app to exit.
type BounceScene struct {
	exiter AppExiter

	ballX, ballY float64
	dx, dy       float64
	paddleX      int
	started      bool
}

func NewBounceScene(exiter AppExiter) *BounceScene {
	return &BounceScene{exiter: exiter, dx: ballStep, dy: ballStep}
}

func (s *BounceScene) Start(ctx context.Context) error {
	s.started = false
	return nil
}

func (s *BounceScene) Stop() error { return nil }

func (s *BounceScene) Draw(d Drawer, info FrameInfo) {
	if !s.started {
		s.ballX = float64(info.Width) / 2
		s.ballY = float64(info.Height) / 3
		s.paddleX = (info.Width - paddleWidth) / 2
		s.started = true
	}
	if info.Keys.Pressed(render.KeyQ) && s.exiter != nil {
		s.exiter.Exit(nil)
	}

	if info.Keys.Pressed(render.KeyLeft) {
		s.paddleX -= paddleStep
	}
	if info.Keys.Pressed(render.KeyRight) {
		s.paddleX += paddleStep
	}
	s.paddleX = clampInt(s.paddleX, 0, info.Width-paddleWidth)
	paddle := render.Rect{X: s.paddleX, Y: info.Height - 2*paddleHeight, W: paddleWidth, H: paddleHeight}

	s.step(info.Width, info.Height, paddle)

	d.EnqueueRect(paddle, Teal)
	d.EnqueueCircle(render.Pt(s.ballX, s.ballY), Yellow, ballRadius)
	d.EnqueuePolygon([]render.Point{
		render.Pt(0, 0),
		render.Pt(float64(info.Width-1), 0),
		render.Pt(float64(info.Width-1), float64(info.Height-1)),
		render.Pt(0, float64(info.Height-1)),
	}, Purple, 2)
}

func (s *BounceScene) step(width, height int, paddle render.Rect) {
	s.ballX += s.dx
	s.ballY += s.dy

	if s.ballX < ballRadius {
		s.ballX, s.dx = ballRadius, -s.dx
	}
	if s.ballX > float64(width)-ballRadius {
		s.ballX, s.dx = float64(width)-ballRadius, -s.dx
	}
	if s.ballY < ballRadius {
		s.ballY, s.dy = ballRadius, -s.dy
	}
	if s.ballY > float64(height)-ballRadius {
		s.ballY, s.dy = float64(height)-ballRadius, -s.dy
	}

	// bounce off the top of the paddle only while falling
	if s.dy > 0 &&
		s.ballY+ballRadius >= float64(paddle.Y) &&
		s.ballY < float64(paddle.Y) &&
		s.ballX >= float64(paddle.X) && s.ballX <= float64(paddle.X+paddle.W) {
		s.ballY = float64(paddle.Y) - ballRadius
		s.dy = -s.dy
	}
}

// Ball reports the current ball center.
func (s *BounceScene) Ball() render.Point { return render.Pt(s.ballX, s.ballY) }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
