package flappy

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Sounds,HighScoreStore,Presenter,RunRecorder

// Sound names the session plays.
const (
	SoundFlap            = "flap"
	SoundScore           = "score"
	SoundHit             = "hit"
	SoundBackgroundMusic = "backgroundMusic"
)

// Sounds plays named sound effects.
// Implementations must not block and must ignore unknown names.
type Sounds interface {
	// Play starts a one-shot playback from the beginning.
	Play(name string)
	// Loop starts looped playback from the beginning.
	Loop(name string)
	// Stop halts playback and rewinds.
	Stop(name string)
}

// HighScoreStore persists a single high score across process restarts.
type HighScoreStore interface {
	// HighScore returns the stored value, or 0 if none was ever set.
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Presenter shows or hides the restart affordance.
type Presenter interface {
	SetRestartVisible(visible bool)
}

// RunRecorder records every finished run.
type RunRecorder interface {
	SaveRun(score, ticks int) error
}

type nopSounds struct{}

func (nopSounds) Play(string) {}
func (nopSounds) Loop(string) {}
func (nopSounds) Stop(string) {}

type nopPresenter struct{}

func (nopPresenter) SetRestartVisible(bool) {}

// memoryHighScore keeps the high score for the lifetime of the process.
type memoryHighScore struct {
	score int
}

func (m *memoryHighScore) HighScore() (int, error) { return m.score, nil }

func (m *memoryHighScore) SetHighScore(score int) error {
	m.score = score
	return nil
}
