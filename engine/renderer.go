package engine

import (
	"pong/game"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

const thickness = int32(game.WallThickness)

// DrawRect draws a filled rectangle with the specified color.
func DrawRect(renderer *sdl.Renderer, x, y, w, h int32, r, g, b, a uint8) error {
	renderer.SetDrawColor(r, g, b, a)
	rect := sdl.Rect{X: x, Y: y, W: w, H: h}
	return renderer.FillRect(&rect)
}

// SceneRects lays out walls, paddles and balls, in draw order.
func SceneRects(s *game.State) []sdl.Rect {
	rects := make([]sdl.Rect, 0, 4+len(s.Balls))
	rects = append(rects,
		sdl.Rect{X: 0, Y: 0, W: game.FieldWidth, H: thickness},
		sdl.Rect{X: 0, Y: game.FieldHeight - thickness, W: game.FieldWidth, H: thickness},
		paddleRect(s.Left),
		paddleRect(s.Right),
	)
	for _, b := range s.Balls {
		rects = append(rects, sdl.Rect{
			X: int32(b.Pos.X - float32(thickness/2)),
			Y: int32(b.Pos.Y - float32(thickness/2)),
			W: thickness,
			H: thickness,
		})
	}
	return rects
}

func paddleRect(p game.Paddle) sdl.Rect {
	return sdl.Rect{
		X: int32(p.Pos.X),
		Y: int32(p.Pos.Y - game.PaddleHeight/2),
		W: thickness,
		H: int32(game.PaddleHeight),
	}
}

// fillBox draws a white box, falling back to a plain fill if gfx fails.
func (e *Engine) fillBox(r sdl.Rect) {
	if ok := gfx.BoxRGBA(e.Renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, 255, 255, 255, 255); ok {
		return
	}
	if err := DrawRect(e.Renderer, r.X, r.Y, r.W, r.H, 255, 255, 255, 255); err != nil {
		e.log.Debug("fill rect failed", "rect", r, "err", err)
	}
}

// Render draws one frame of the current state and presents it.
func (e *Engine) Render(s *game.State) {
	e.Clear()
	for _, r := range SceneRects(s) {
		e.fillBox(r)
	}
	if e.hud != nil {
		e.hud.Draw(e.Renderer, s)
	}
	e.Present()
}
