package engine

import "pong/game"

// Run drives sample, update and render until the state stops running.
func (e *Engine) Run(s *game.State, clock game.Clock) {
	s.LastTick = clock.Ticks()
	for s.Running {
		s.Apply(e.ProcessInput())
		if !s.Running {
			break
		}

		dt := game.Tick(s, clock)
		game.Update(s, dt)

		e.Render(s)
	}
	e.log.Info("game over", "outcome", s.Outcome, "frames", s.Frames)
}
