// Package flappy implements the Flappy Bird simulation: the bird and pipe
// entities, the per-tick update engine, collision detection, the session
// controller that drives them on a scheduler, and a terminal renderer.
package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxTiltVelocity is the velocity at which the bird sprite is drawn rotated
// by a quarter turn.
const maxTiltVelocity = 20.0

// Bird is the player-controlled entity.
// X never changes after spawn; Y is unconstrained until the death check runs.
type Bird struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
	Velocity      float64 // Vertical velocity, positive = down
	Gravity       float64 // Downward acceleration per tick
	JumpImpulse   float64 // Velocity set on flap
}

// NewBird returns a live bird at its spawn position.
func NewBird(cfg config.FlappyBird) Bird {
	return Bird{
		X:           cfg.X,
		Y:           cfg.Y,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Alive:       true,
		Gravity:     cfg.Gravity,
		JumpImpulse: cfg.JumpImpulse,
	}
}

// Flap replaces the current velocity with the jump impulse.
func (b *Bird) Flap() {
	b.Velocity = b.JumpImpulse
}

// Integrate applies one tick of gravity: velocity first, then position.
func (b *Bird) Integrate() {
	b.Velocity += b.Gravity
	b.Y += b.Velocity
}

// Box returns the bird's bounding box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Angle returns the sprite rotation in radians for the current velocity.
func (b Bird) Angle() float64 {
	return BirdAngle(b.Velocity)
}

// BirdAngle maps a vertical velocity to a sprite rotation, clamped to a
// quarter turn either way. Positive angles tilt the nose down.
func BirdAngle(velocity float64) float64 {
	return core.ClampF(math.Pi/2*velocity/maxTiltVelocity, -math.Pi/2, math.Pi/2)
}
