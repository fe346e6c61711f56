package game

import "testing"

type fakeClock struct {
	now    uint64
	delays []uint32
}

func (c *fakeClock) Ticks() uint64 { return c.now }

func (c *fakeClock) Delay(ms uint32) {
	c.delays = append(c.delays, ms)
	c.now += uint64(ms)
}

func TestTickWaitsForFramePeriod(t *testing.T) {
	c := &fakeClock{now: 1005}
	s := NewState()
	s.LastTick = 1000

	dt := Tick(s, c)
	if len(c.delays) != 1 || c.delays[0] != 11 {
		t.Fatalf("delays = %v, want [11]", c.delays)
	}
	if s.LastTick != 1016 {
		t.Fatalf("last tick = %d, want 1016", s.LastTick)
	}
	if !approx(dt, 0.016) {
		t.Fatalf("dt = %v, want 0.016", dt)
	}
}

func TestTickClampsStall(t *testing.T) {
	c := &fakeClock{now: 3000}
	s := NewState()
	s.LastTick = 1000

	if dt := Tick(s, c); dt != MaxDelta {
		t.Fatalf("dt = %v, want %v", dt, MaxDelta)
	}
	if len(c.delays) != 0 {
		t.Fatalf("slept %v on an overdue frame", c.delays)
	}
}
