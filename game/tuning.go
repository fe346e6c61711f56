package game

const (
	FieldWidth    = 1024.0
	FieldHeight   = 768.0
	WallThickness = 15.0
	PaddleHeight  = 100.0
	PaddleSpeed   = 300.0 // pixels per second
	MaxDelta      = 0.05  // seconds; longer stalls are treated as this
	FramePeriodMs = 16

	// The left paddle only returns balls inside this x range.
	LeftBandMin = 20.0
	LeftBandMax = 25.0

	PaddleMinY = PaddleHeight/2 + WallThickness
	PaddleMaxY = FieldHeight - PaddleHeight/2 - WallThickness
)
