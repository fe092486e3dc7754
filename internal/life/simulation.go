package life

// BaseFrames is the number of frames between generations at speed 1.
const BaseFrames = 10

// Simulation steps a Grid once every speed×BaseFrames calls to Advance.
// Larger speeds are slower.
type Simulation struct {
	Grid *Grid

	speed      int
	frames     int
	paused     bool
	generation int
}

// NewSimulation wraps g with the given speed multiplier.
func NewSimulation(g *Grid, speed int) *Simulation {
	s := &Simulation{Grid: g}
	s.SetSpeed(speed)
	return s
}

// Speed returns the speed multiplier.
func (s *Simulation) Speed() int { return s.speed }

// SetSpeed sets the multiplier, clamped to at least 1. The frame counter is
// kept, so a lower speed may trigger a step on the next Advance.
func (s *Simulation) SetSpeed(speed int) {
	s.speed = max(speed, 1)
}

// FramesPerStep returns the number of Advance calls per generation.
func (s *Simulation) FramesPerStep() int {
	return s.speed * BaseFrames
}

// Paused reports whether Advance is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// SetPaused suspends or resumes stepping.
func (s *Simulation) SetPaused(p bool) { s.paused = p }

// Generation returns the number of steps taken.
func (s *Simulation) Generation() int { return s.generation }

// Advance counts one frame and steps the grid when a full period has
// elapsed. It reports whether the grid changed.
func (s *Simulation) Advance() bool {
	if s.paused {
		return false
	}
	s.frames++
	if s.frames < s.FramesPerStep() {
		return false
	}
	s.frames = 0
	s.Step()
	return true
}

// Step advances the grid by one generation immediately, paused or not.
func (s *Simulation) Step() {
	s.Grid.Step()
	s.generation++
}
