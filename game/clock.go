package game

// Clock is a millisecond tick source that can also sleep.
type Clock interface {
	Ticks() uint64
	Delay(ms uint32)
}

// Tick blocks until a full frame period has passed since s.LastTick, then
// records the new tick and returns the clamped elapsed time in seconds.
func Tick(s *State, c Clock) float32 {
	now := c.Ticks()
	for now < s.LastTick+FramePeriodMs {
		c.Delay(uint32(s.LastTick + FramePeriodMs - now))
		now = c.Ticks()
	}
	dt := ClampDelta(s.LastTick, now)
	s.LastTick = now
	return dt
}
