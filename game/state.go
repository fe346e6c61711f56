package game

// Outcome records why the game stopped running.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeBallOutLeft
	OutcomeBallOutRight
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeBallOutLeft:
		return "ball out left"
	case OutcomeBallOutRight:
		return "ball out right"
	default:
		return "none"
	}
}

// State is everything the simulation mutates between frames. It is owned by
// the loop driver and handed to each phase by pointer.
type State struct {
	Running  bool
	Outcome  Outcome
	LastTick uint64 // milliseconds, as reported by the tick source
	Frames   uint64

	Left  Paddle
	Right Paddle
	Balls []Ball
}

// NewState builds the opening layout: paddles centered on their sides and
// two balls leaving the center in opposite directions.
func NewState() *State {
	return &State{
		Running: true,
		Left:    NewPaddle(10),
		Right:   NewPaddle(FieldWidth - WallThickness),
		Balls: []Ball{
			NewBall(200, 235),
			NewBall(-200, -235),
		},
	}
}

// Stop ends the game. Only the first reason is kept.
func (s *State) Stop(o Outcome) {
	if !s.Running {
		return
	}
	s.Running = false
	s.Outcome = o
}
