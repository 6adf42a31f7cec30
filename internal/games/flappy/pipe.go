package flappy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidPipe is returned by NewPipe for parameters that cannot move or
// collide sensibly.
var ErrInvalidPipe = errors.New("flappy: invalid pipe parameters")

// PipeKind tells which half of a pair a segment is.
type PipeKind int

const (
	PipeTop PipeKind = iota
	PipeBottom
)

// String returns the kind name.
func (k PipeKind) String() string {
	switch k {
	case PipeTop:
		return "top"
	case PipeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// PipeParams holds the construction parameters of a pipe segment.
type PipeParams struct {
	Kind   PipeKind
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Units moved left per tick
}

// DefaultPipeParams returns the parameters used when a caller only sets
// position and height.
func DefaultPipeParams() PipeParams {
	return PipeParams{
		Width:  50,
		Height: 40,
		Speed:  3,
	}
}

// Pipe is a single obstacle segment. Width and speed are fixed at
// construction; X strictly decreases every tick.
type Pipe struct {
	Kind   PipeKind
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
}

// NewPipe validates p and builds a segment from it.
func NewPipe(p PipeParams) (Pipe, error) {
	switch {
	case p.Width <= 0:
		return Pipe{}, fmt.Errorf("%w: width %v", ErrInvalidPipe, p.Width)
	case p.Height < 0:
		return Pipe{}, fmt.Errorf("%w: height %v", ErrInvalidPipe, p.Height)
	case p.Speed <= 0:
		return Pipe{}, fmt.Errorf("%w: speed %v", ErrInvalidPipe, p.Speed)
	case p.Kind != PipeTop && p.Kind != PipeBottom:
		return Pipe{}, fmt.Errorf("%w: kind %d", ErrInvalidPipe, p.Kind)
	}
	return Pipe{
		Kind:   p.Kind,
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Speed:  p.Speed,
	}, nil
}

// Advance moves the segment left by its speed.
func (p *Pipe) Advance() {
	p.X -= p.Speed
}

// Out reports whether the segment's right edge has passed the left boundary.
func (p Pipe) Out() bool {
	return p.X+p.Width < 0
}

// Box returns the segment's bounding box.
func (p Pipe) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
