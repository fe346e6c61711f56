package engine

import "github.com/veandco/go-sdl2/sdl"

// Clock reads SDL's millisecond counter and sleeps with SDL_Delay.
type Clock struct{}

func (Clock) Ticks() uint64 { return sdl.GetTicks64() }

func (Clock) Delay(ms uint32) { sdl.Delay(ms) }
