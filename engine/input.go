package engine

import (
	"pong/game"

	"github.com/veandco/go-sdl2/sdl"
)

// Keymap binds scancodes to the two paddles and the quit action.
type Keymap struct {
	LeftUp, LeftDown   sdl.Scancode
	RightUp, RightDown sdl.Scancode
	Quit               sdl.Scancode
}

var DefaultKeymap = Keymap{
	LeftUp:    sdl.Scancode(sdl.SCANCODE_W),
	LeftDown:  sdl.Scancode(sdl.SCANCODE_S),
	RightUp:   sdl.Scancode(sdl.SCANCODE_I),
	RightDown: sdl.Scancode(sdl.SCANCODE_K),
	Quit:      sdl.Scancode(sdl.SCANCODE_ESCAPE),
}

// Map turns a keyboard state snapshot, indexed by scancode, into an Input.
func (k Keymap) Map(keys []uint8) game.Input {
	return game.Input{
		Left:  game.Axis(pressed(keys, k.LeftUp), pressed(keys, k.LeftDown)),
		Right: game.Axis(pressed(keys, k.RightUp), pressed(keys, k.RightDown)),
		Quit:  pressed(keys, k.Quit),
	}
}

func pressed(keys []uint8, sc sdl.Scancode) bool {
	return int(sc) < len(keys) && keys[sc] != 0
}

// ProcessInput drains pending SDL events and samples the keyboard.
// A window close request counts as quit.
func (e *Engine) ProcessInput() game.Input {
	closed := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			closed = true
		}
	}

	in := e.Keys.Map(sdl.GetKeyboardState())
	in.Quit = in.Quit || closed
	return in
}
