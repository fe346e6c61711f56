package game

// ClampDelta converts a tick difference in milliseconds to seconds, capped
// at MaxDelta so a stalled frame cannot teleport the ball.
func ClampDelta(prev, now uint64) float32 {
	if now <= prev {
		return 0
	}
	dt := float32(now-prev) / 1000
	if dt > MaxDelta {
		dt = MaxDelta
	}
	return dt
}

// Update advances the simulation by dt seconds.
func Update(s *State, dt float32) {
	s.Frames++
	s.Left.Update(dt)
	s.Right.Update(dt)

	for i := range s.Balls {
		s.updateBall(&s.Balls[i], dt)
	}
}

func (s *State) updateBall(b *Ball, dt float32) {
	b.Integrate(dt)

	if s.Left.Reaches(b.Pos.Y) &&
		b.Pos.X <= LeftBandMax && b.Pos.X >= LeftBandMin &&
		b.Vel.X < 0 {
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X <= 0 {
		s.Stop(OutcomeBallOutLeft)
	}

	// The first comparison never matters on the right side; the band is
	// everything at or past the right wall's inner edge.
	if s.Right.Reaches(b.Pos.Y) &&
		b.Pos.X >= LeftBandMax && b.Pos.X >= FieldWidth-WallThickness &&
		b.Vel.X > 0 {
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X >= FieldWidth {
		s.Stop(OutcomeBallOutRight)
	}

	b.bounceWalls()
}
