package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickResult describes the events of one simulation tick.
type TickResult struct {
	Died    bool // The bird died during this tick
	Cleared int  // Segments retired while the bird was alive
	Spawned bool // A new pipe pair was appended
}

// World is the simulation state advanced by Tick.
// It has no notion of time or scheduling; the Session decides when to tick.
type World struct {
	cfg config.FlappyConfig
	rng *rand.Rand

	Bird        Bird
	Pipes       []Pipe  // Live segments in insertion order
	Score       int     // Ticks survived in the current run
	Ticks       int     // Ticks since the last reset
	Interval    int     // Spawn counter, cycles through [0, SpawnInterval)
	BackgroundX float64 // Cosmetic scroll offset
}

// NewWorld creates a world in its start state.
// The rng is kept across resets, so one seed reproduces a series of runs.
func NewWorld(cfg config.FlappyConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:   cfg,
		rng:   rng,
		Pipes: make([]Pipe, 0, 8),
	}
	w.Reset()
	return w
}

// Reset restores the start state: fresh bird, no pipes, zero score and
// counters. The background offset keeps scrolling across runs.
func (w *World) Reset() {
	w.Bird = NewBird(w.cfg.Bird)
	w.Pipes = w.Pipes[:0]
	w.Score = 0
	w.Ticks = 0
	w.Interval = 0
}

// Width returns the playfield width.
func (w *World) Width() float64 {
	return w.cfg.Playfield.Width
}

// Height returns the playfield height.
func (w *World) Height() float64 {
	return w.cfg.Playfield.Height
}

// Tick advances the simulation by one step.
func (w *World) Tick() TickResult {
	var res TickResult

	w.BackgroundX += w.cfg.Timing.BackgroundSpeed

	if w.Bird.Alive {
		w.Bird.Integrate()
		if IsDead(w.Bird.Box(), w.Height(), w.obstacleBoxes()) {
			w.Bird.Alive = false
			res.Died = true
		}
	}

	// Move pipes and retire the ones that left the field
	live := w.Pipes[:0]
	for _, p := range w.Pipes {
		p.Advance()
		if p.Out() {
			if w.Bird.Alive {
				res.Cleared++
			}
			continue
		}
		live = append(live, p)
	}
	w.Pipes = live

	if w.Interval == 0 {
		w.spawnPair()
		res.Spawned = true
	}

	w.Interval = (w.Interval + 1) % w.cfg.Pipes.SpawnInterval

	if w.Bird.Alive {
		w.Score++
	}
	w.Ticks++

	return res
}

// spawnPair appends a top and a bottom segment sharing one random gap at the
// right edge of the field.
func (w *World) spawnPair() {
	pc := w.cfg.Pipes
	gapY := pc.Margin
	if span := int(w.cfg.GapSpan()); span > 0 {
		gapY += float64(w.rng.Intn(span + 1))
	}
	w.AddPair(gapY)
}

// AddPair appends a pipe pair whose gap starts at gapY, at the right edge of
// the field.
func (w *World) AddPair(gapY float64) {
	pc := w.cfg.Pipes
	top := Pipe{
		Kind:   PipeTop,
		X:      w.Width(),
		Y:      0,
		Width:  pc.Width,
		Height: gapY,
		Speed:  pc.Speed,
	}
	bottomY := gapY + pc.GapHeight
	bottom := Pipe{
		Kind:   PipeBottom,
		X:      w.Width(),
		Y:      bottomY,
		Width:  pc.Width,
		Height: w.Height() - bottomY,
		Speed:  pc.Speed,
	}
	w.Pipes = append(w.Pipes, top, bottom)
}

// Gap returns the gap of the pair starting at index i, which must be a top
// segment followed by its bottom segment.
func (w *World) Gap(i int) (top, bottom float64, ok bool) {
	if i < 0 || i+1 >= len(w.Pipes) || w.Pipes[i].Kind != PipeTop || w.Pipes[i+1].Kind != PipeBottom {
		return 0, 0, false
	}
	return w.Pipes[i].Y + w.Pipes[i].Height, w.Pipes[i+1].Y, true
}

func (w *World) obstacleBoxes() []core.Box {
	boxes := make([]core.Box, len(w.Pipes))
	for i, p := range w.Pipes {
		boxes[i] = p.Box()
	}
	return boxes
}
