package game

// Paddle is positioned by its center point. It has no velocity; Dir is the
// player's intent for the current frame.
type Paddle struct {
	Pos Vector2
	Dir int
}

func NewPaddle(x float32) Paddle {
	return Paddle{Pos: Vector2{X: x, Y: FieldHeight / 2}}
}

// Update moves the paddle along y and stops it hard at the playfield bounds.
func (p *Paddle) Update(dt float32) {
	p.Pos.Y += float32(p.Dir) * PaddleSpeed * dt
	if p.Pos.Y < PaddleMinY {
		p.Pos.Y = PaddleMinY
	} else if p.Pos.Y > PaddleMaxY {
		p.Pos.Y = PaddleMaxY
	}
}

// Reaches reports whether y is within half a paddle height of the center.
func (p *Paddle) Reaches(y float32) bool {
	diff := p.Pos.Y - y
	if diff < 0 {
		diff = -diff
	}
	return diff <= PaddleHeight/2
}
