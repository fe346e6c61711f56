package game

type Ball struct {
	Pos Vector2
	Vel Vector2
}

func NewBall(vx, vy float32) Ball {
	return Ball{
		Pos: Vector2{X: FieldWidth / 2, Y: FieldHeight / 2},
		Vel: Vector2{X: vx, Y: vy},
	}
}

// Integrate advances the ball by one explicit Euler step.
func (b *Ball) Integrate(dt float32) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// bounceWalls reflects vy off the top and bottom walls.
func (b *Ball) bounceWalls() {
	if b.Pos.Y <= WallThickness && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y >= FieldHeight-WallThickness && b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
	}
}
