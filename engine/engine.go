package engine

import (
	"fmt"
	"log/slog"

	"pong/config"
	"pong/game"

	"github.com/veandco/go-sdl2/sdl"
)

type Engine struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Keys     Keymap

	hud *HUD
	log *slog.Logger
}

// New initializes SDL and opens the playfield window. On error everything
// created so far has already been released.
func New(cfg *config.Config, log *slog.Logger) (*Engine, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	e := &Engine{Keys: DefaultKeymap, log: log}

	var err error
	e.Window, err = sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		game.FieldWidth, game.FieldHeight, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		e.Shutdown()
		return nil, fmt.Errorf("create window: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	e.Renderer, err = sdl.CreateRenderer(e.Window, -1, flags)
	if err != nil {
		e.Shutdown()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if cfg.FontPath != "" {
		e.hud = newHUD(cfg.FontPath, cfg.FontSize, log)
	}

	log.Info("engine ready",
		"width", game.FieldWidth, "height", game.FieldHeight,
		"vsync", cfg.VSync, "hud", e.hud != nil)
	return e, nil
}

// Shutdown releases whatever New managed to create. Safe to call on a
// partially initialized engine.
func (e *Engine) Shutdown() {
	if e.hud != nil {
		e.hud.Close()
		e.hud = nil
	}
	if e.Renderer != nil {
		e.Renderer.Destroy()
		e.Renderer = nil
	}
	if e.Window != nil {
		e.Window.Destroy()
		e.Window = nil
	}
	sdl.Quit()
	e.log.Debug("engine shut down")
}

func (e *Engine) Clear() {
	e.Renderer.SetDrawColor(0, 0, 255, 255) // Blue background
	e.Renderer.Clear()
}

func (e *Engine) Present() {
	e.Renderer.Present()
}
