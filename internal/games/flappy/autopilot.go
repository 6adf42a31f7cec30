package flappy

// Autopilot is a simple controller used by the headless simulator.
// It flaps whenever the bird's bottom edge would sink below the lower lip of
// the next gap, minus a margin, on the following tick.
type Autopilot struct {
	Margin float64
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() Autopilot {
	return Autopilot{Margin: 10}
}

// ShouldFlap reports whether the bird should flap for the given frame.
func (a Autopilot) ShouldFlap(f Frame) bool {
	b := f.Bird
	if !b.Alive {
		return false
	}
	next := b.Y + b.Height + b.Velocity + b.Gravity
	return next > a.target(f)-a.Margin
}

// target returns the lower lip of the first gap the bird has not passed, or
// a point low in the field when no pipe is ahead.
func (a Autopilot) target(f Frame) float64 {
	for i, p := range f.Pipes {
		if p.Kind != PipeTop || p.X+p.Width <= f.Bird.X {
			continue
		}
		if i+1 < len(f.Pipes) && f.Pipes[i+1].Kind == PipeBottom {
			return f.Pipes[i+1].Y
		}
	}
	return f.Height * 0.6
}
