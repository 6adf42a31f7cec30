package flappy

// Frame is an immutable snapshot of everything a renderer draws.
type Frame struct {
	Width, Height  float64 // Playfield size
	Bird           Bird
	Pipes          []Pipe
	BackgroundX    float64
	Score          int
	HighScore      int
	Ticks          int
	RestartVisible bool
}

func newFrame(w *World, highScore int, restartVisible bool) Frame {
	pipes := make([]Pipe, len(w.Pipes))
	copy(pipes, w.Pipes)
	return Frame{
		Width:          w.Width(),
		Height:         w.Height(),
		Bird:           w.Bird,
		Pipes:          pipes,
		BackgroundX:    w.BackgroundX,
		Score:          w.Score,
		HighScore:      highScore,
		Ticks:          w.Ticks,
		RestartVisible: restartVisible,
	}
}

// Alive reports whether the bird was alive when the frame was taken.
func (f Frame) Alive() bool {
	return f.Bird.Alive
}
