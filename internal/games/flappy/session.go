package flappy

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// ErrNoScheduler is returned by NewSession when Deps has no Scheduler.
var ErrNoScheduler = errors.New("flappy: scheduler is required")

// Deps are the collaborators of a Session.
// Every field except Scheduler is optional.
type Deps struct {
	Scheduler loop.Scheduler
	Sounds    Sounds
	Store     HighScoreStore
	Presenter Presenter
	Runs      RunRecorder
	Logger    *log.Logger
}

// Session owns the world for one player and drives it with two independent
// callback chains: a fixed-delay update chain and a render chain. Start
// cancels both before rescheduling, so at most one of each is ever pending.
//
// Session is not safe for concurrent use; all calls, including scheduler
// callbacks, must happen on one goroutine.
type Session struct {
	cfg   config.FlappyConfig
	world *World

	sched     loop.Scheduler
	sounds    Sounds
	store     HighScoreStore
	presenter Presenter
	runs      RunRecorder
	log       *log.Logger

	tickRate       int
	highScore      int
	restartVisible bool
	running        bool

	updateTimer loop.Timer
	renderTimer loop.Timer
	onFrame     func(Frame)
}

// NewSession creates an idle session. The stored high score is read once
// here; a read failure is logged and treated as 0.
func NewSession(cfg config.FlappyConfig, seed int64, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	s := &Session{
		cfg:       cfg,
		world:     NewWorld(cfg, rand.New(rand.NewSource(seed))),
		sched:     deps.Scheduler,
		sounds:    deps.Sounds,
		store:     deps.Store,
		presenter: deps.Presenter,
		runs:      deps.Runs,
		log:       deps.Logger,
		tickRate:  cfg.Timing.TickRate,
	}
	if s.sounds == nil {
		s.sounds = nopSounds{}
	}
	if s.store == nil {
		s.store = &memoryHighScore{}
	}
	if s.presenter == nil {
		s.presenter = nopPresenter{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	high, err := s.store.HighScore()
	if err != nil {
		s.log.Warn("cannot read high score", "err", err)
		high = 0
	}
	s.highScore = high

	return s, nil
}

// SetFrameHandler sets the function the render chain calls with each frame.
func (s *Session) SetFrameHandler(fn func(Frame)) {
	s.onFrame = fn
}

// SetTickRate changes the simulation rate in ticks per second. It applies
// from the next scheduled tick and is intended to be called before Start.
func (s *Session) SetTickRate(rate int) error {
	if rate <= 0 || rate > 1000 {
		return fmt.Errorf("flappy: tick rate must be in [1, 1000], got %d", rate)
	}
	s.tickRate = rate
	return nil
}

// TickRate returns the simulation rate in ticks per second.
func (s *Session) TickRate() int {
	return s.tickRate
}

// Start begins a new run. Pending callbacks from a previous run are
// cancelled, the world is reset, and the first update and render are
// scheduled immediately. Calling Start repeatedly is safe.
func (s *Session) Start() {
	s.cancel()
	s.world.Reset()
	s.setRestartVisible(false)

	s.running = true
	s.updateTimer = s.sched.AfterFunc(0, s.update)
	s.renderTimer = s.sched.AfterFunc(0, s.render)

	s.sounds.Loop(SoundBackgroundMusic)
	s.log.Debug("run started", "tick_rate", s.tickRate, "high_score", s.highScore)
}

// Stop cancels both callback chains and silences the background music.
// The world keeps its state; Start resumes with a fresh run.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.cancel()
	s.running = false
	s.sounds.Stop(SoundBackgroundMusic)
}

// Flap applies the jump impulse and plays the flap sound.
func (s *Session) Flap() {
	s.world.Bird.Flap()
	s.sounds.Play(SoundFlap)
}

// Running reports whether the callback chains are active.
func (s *Session) Running() bool {
	return s.running
}

// Alive reports whether the bird of the current run is alive.
func (s *Session) Alive() bool {
	return s.world.Bird.Alive
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.world.Score
}

// HighScore returns the best score seen so far.
func (s *Session) HighScore() int {
	return s.highScore
}

// Ticks returns the number of ticks of the current run.
func (s *Session) Ticks() int {
	return s.world.Ticks
}

// RestartVisible reports whether the restart affordance is shown.
func (s *Session) RestartVisible() bool {
	return s.restartVisible
}

// World exposes the simulation state for inspection. Callers must not
// mutate it while the session is running.
func (s *Session) World() *World {
	return s.world
}

// Frame returns a snapshot of the state a renderer needs.
func (s *Session) Frame() Frame {
	return newFrame(s.world, s.highScore, s.restartVisible)
}

// update runs one tick and reschedules itself.
func (s *Session) update() {
	res := s.world.Tick()
	if res.Died {
		s.sounds.Play(SoundHit)
		s.gameOver()
	}
	for range res.Cleared {
		s.sounds.Play(SoundScore)
	}

	s.updateTimer = s.sched.AfterFunc(s.tickInterval(), s.update)
}

// render hands a frame to the frame handler and reschedules itself,
// including after the bird has died.
func (s *Session) render() {
	if s.onFrame != nil {
		s.onFrame(s.Frame())
	}
	s.renderTimer = s.sched.AfterFunc(loop.Interval(s.cfg.Timing.RefreshRate), s.render)
}

// gameOver persists a new high score, shows the restart affordance, and
// stops the background music. The render chain keeps running.
func (s *Session) gameOver() {
	score := s.world.Score
	if score > s.highScore {
		s.highScore = score
		if err := s.store.SetHighScore(score); err != nil {
			s.log.Error("cannot persist high score", "score", score, "err", err)
		}
	}

	s.setRestartVisible(true)
	s.sounds.Stop(SoundBackgroundMusic)

	if s.runs != nil {
		if err := s.runs.SaveRun(score, s.world.Ticks); err != nil {
			s.log.Warn("cannot record run", "score", score, "err", err)
		}
	}

	s.log.Info("game over", "score", score, "high_score", s.highScore, "ticks", s.world.Ticks)
}

func (s *Session) setRestartVisible(visible bool) {
	s.restartVisible = visible
	s.presenter.SetRestartVisible(visible)
}

func (s *Session) cancel() {
	if s.updateTimer != nil {
		s.updateTimer.Stop()
		s.updateTimer = nil
	}
	if s.renderTimer != nil {
		s.renderTimer.Stop()
		s.renderTimer = nil
	}
}

func (s *Session) tickInterval() time.Duration {
	return loop.Interval(s.tickRate)
}
