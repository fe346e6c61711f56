package engine

import (
	"fmt"
	"log/slog"

	"pong/game"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// HUD is the optional diagnostics overlay in the top-left corner.
type HUD struct {
	font *ttf.Font
	log  *slog.Logger

	fps       FPSCounter
	lastFrame uint64
}

// newHUD returns nil when the font cannot be loaded; the overlay is
// optional and never stops the game from starting.
func newHUD(path string, size int, log *slog.Logger) *HUD {
	if err := ttf.Init(); err != nil {
		log.Warn("hud disabled", "reason", "ttf init failed", "err", err)
		return nil
	}
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		ttf.Quit()
		log.Warn("hud disabled", "font", path, "err", err)
		return nil
	}
	return &HUD{font: font, log: log}
}

func (h *HUD) Close() {
	h.font.Close()
	ttf.Quit()
}

// Draw renders the FPS and ball count. Frame times come from s.LastTick so
// the overlay agrees with the physics clock.
func (h *HUD) Draw(renderer *sdl.Renderer, s *game.State) {
	if s.LastTick != h.lastFrame {
		h.fps.Add(s.LastTick)
		h.lastFrame = s.LastTick
	}
	text := fmt.Sprintf("FPS: %.0f  Balls: %d", h.fps.Rate(), len(s.Balls))
	if err := renderText(renderer, h.font, text, 10+thickness, 10+thickness); err != nil {
		h.log.Debug("hud text failed", "err", err)
	}
}

func renderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32) error {
	color := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &rect)
}

// FPSCounter averages frame rate over a one second window of tick stamps.
type FPSCounter struct {
	started     bool
	windowStart uint64
	frames      int
	rate        float64
}

func (c *FPSCounter) Add(tick uint64) {
	if !c.started {
		c.started = true
		c.windowStart = tick
		return
	}
	c.frames++
	if elapsed := tick - c.windowStart; elapsed >= 1000 {
		c.rate = float64(c.frames) * 1000 / float64(elapsed)
		c.frames = 0
		c.windowStart = tick
	}
}

func (c *FPSCounter) Rate() float64 { return c.rate }
