package engine

import (
	"testing"

	"pong/game"

	"github.com/veandco/go-sdl2/sdl"
)

func keyState(down ...sdl.Scancode) []uint8 {
	keys := make([]uint8, sdl.NUM_SCANCODES)
	for _, sc := range down {
		keys[sc] = 1
	}
	return keys
}

func TestKeymapMap(t *testing.T) {
	k := DefaultKeymap
	cases := []struct {
		name string
		down []sdl.Scancode
		want game.Input
	}{
		{"idle", nil, game.Input{}},
		{"left up", []sdl.Scancode{k.LeftUp}, game.Input{Left: -1}},
		{"left down", []sdl.Scancode{k.LeftDown}, game.Input{Left: 1}},
		{"left both", []sdl.Scancode{k.LeftUp, k.LeftDown}, game.Input{}},
		{"right up", []sdl.Scancode{k.RightUp}, game.Input{Right: -1}},
		{"right down and left up", []sdl.Scancode{k.RightDown, k.LeftUp}, game.Input{Left: -1, Right: 1}},
		{"escape", []sdl.Scancode{k.Quit}, game.Input{Quit: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := k.Map(keyState(tc.down...)); got != tc.want {
				t.Fatalf("Map = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestKeymapShortState(t *testing.T) {
	if got := DefaultKeymap.Map(nil); got != (game.Input{}) {
		t.Fatalf("Map(nil) = %+v, want zero input", got)
	}
}
