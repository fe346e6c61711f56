package game

// Input is what the sampler hands to the updater each frame.
type Input struct {
	Left  int
	Right int
	Quit  bool
}

// Axis folds an up/down key pair into a direction intent.
func Axis(up, down bool) int {
	dir := 0
	if up {
		dir--
	}
	if down {
		dir++
	}
	return dir
}

// Apply copies the intents onto the paddles and handles quit.
func (s *State) Apply(in Input) {
	if in.Quit {
		s.Stop(OutcomeQuit)
	}
	s.Left.Dir = in.Left
	s.Right.Dir = in.Right
}
