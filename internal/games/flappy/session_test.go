package flappy_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy/mocks"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

var tick = time.Second / 60

// floating returns a config in which the bird hovers at its spawn height.
// Pipes first reach the bird after about 127 ticks.
func floating() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 0
	return cfg
}

func newSession(t *testing.T, cfg config.FlappyConfig, deps flappy.Deps) (*flappy.Session, *loop.Manual) {
	t.Helper()
	sched := loop.NewManual()
	deps.Scheduler = sched
	s, err := flappy.NewSession(cfg, 1, deps)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, sched
}

// kill drops the bird below the floor so the next tick ends the run.
func kill(s *flappy.Session) {
	s.World().Bird.Y = 1000
}

func TestNewSessionErrors(t *testing.T) {
	_, err := flappy.NewSession(config.DefaultFlappyConfig(), 1, flappy.Deps{})
	if !errors.Is(err, flappy.ErrNoScheduler) {
		t.Errorf("Expected ErrNoScheduler, got %v", err)
	}

	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.GapHeight = 1000
	_, err = flappy.NewSession(cfg, 1, flappy.Deps{Scheduler: loop.NewManual()})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSessionStartSchedulesBothChains(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSounds(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)

	sounds.EXPECT().Loop(flappy.SoundBackgroundMusic)
	presenter.EXPECT().SetRestartVisible(false)

	s, sched := newSession(t, floating(), flappy.Deps{Sounds: sounds, Presenter: presenter})
	frames := 0
	s.SetFrameHandler(func(flappy.Frame) { frames++ })

	s.Start()

	if sched.Pending() != 2 {
		t.Fatalf("Expected update and render pending, got %d", sched.Pending())
	}
	if s.Score() != 0 || len(s.Frame().Pipes) != 0 {
		t.Errorf("Expected empty run before the first tick, score=%d pipes=%d", s.Score(), len(s.Frame().Pipes))
	}

	// Ticks at 0, 1/60s, ..., 60/60s
	sched.Advance(time.Second)

	if s.Ticks() != 61 {
		t.Errorf("Expected 61 ticks, got %d", s.Ticks())
	}
	if s.Score() != 61 {
		t.Errorf("Expected score 61, got %d", s.Score())
	}
	if frames != 61 {
		t.Errorf("Expected 61 frames, got %d", frames)
	}
	if sched.Pending() != 2 {
		t.Errorf("Expected exactly one pending callback per chain, got %d", sched.Pending())
	}
}

func TestSessionGameOverPersistsHigherScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSounds(ctrl)
	store := mocks.NewMockHighScoreStore(ctrl)
	presenter := mocks.NewMockPresenter(ctrl)
	runs := mocks.NewMockRunRecorder(ctrl)

	store.EXPECT().HighScore().Return(50, nil)
	sounds.EXPECT().Loop(flappy.SoundBackgroundMusic)
	presenter.EXPECT().SetRestartVisible(false)
	gomock.InOrder(
		sounds.EXPECT().Play(flappy.SoundHit),
		store.EXPECT().SetHighScore(80).Return(nil),
		presenter.EXPECT().SetRestartVisible(true),
		sounds.EXPECT().Stop(flappy.SoundBackgroundMusic),
		runs.EXPECT().SaveRun(80, 81).Return(nil),
	)

	s, sched := newSession(t, floating(), flappy.Deps{
		Sounds: sounds, Store: store, Presenter: presenter, Runs: runs,
	})
	if s.HighScore() != 50 {
		t.Fatalf("Expected stored high score 50, got %d", s.HighScore())
	}

	s.Start()
	sched.Advance(79 * tick) // Ticks 0..79
	if s.Score() != 80 {
		t.Fatalf("Expected score 80, got %d", s.Score())
	}

	kill(s)
	sched.Advance(tick)

	if s.Alive() {
		t.Fatal("Expected the bird to be dead")
	}
	if s.HighScore() != 80 {
		t.Errorf("Expected high score 80, got %d", s.HighScore())
	}
	if !s.RestartVisible() {
		t.Error("Expected restart affordance to be visible")
	}

	// Score stays frozen while both chains keep running
	sched.Advance(30 * tick)
	if s.Score() != 80 {
		t.Errorf("Score changed after death: %d", s.Score())
	}
	if sched.Pending() != 2 {
		t.Errorf("Expected both chains to keep running, got %d pending", sched.Pending())
	}
}

func TestSessionGameOverKeepsHigherStoredScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)

	// SetHighScore must not be called
	store.EXPECT().HighScore().Return(50, nil)

	s, sched := newSession(t, floating(), flappy.Deps{Store: store})
	s.Start()
	sched.Advance(29 * tick) // Score 30
	kill(s)
	sched.Advance(tick)

	if s.Alive() {
		t.Fatal("Expected the bird to be dead")
	}
	if s.Score() != 30 {
		t.Errorf("Expected score 30, got %d", s.Score())
	}
	if s.HighScore() != 50 {
		t.Errorf("Expected high score to stay 50, got %d", s.HighScore())
	}
}

func TestSessionStoreFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	runs := mocks.NewMockRunRecorder(ctrl)

	store.EXPECT().HighScore().Return(0, errors.New("disk on fire"))
	store.EXPECT().SetHighScore(10).Return(errors.New("disk on fire"))
	runs.EXPECT().SaveRun(10, 11).Return(errors.New("disk on fire"))

	s, sched := newSession(t, floating(), flappy.Deps{Store: store, Runs: runs})
	if s.HighScore() != 0 {
		t.Errorf("Expected high score 0 after read failure, got %d", s.HighScore())
	}

	s.Start()
	sched.Advance(9 * tick)
	kill(s)
	sched.Advance(tick)

	// The in-memory high score still advances
	if s.HighScore() != 10 {
		t.Errorf("Expected high score 10, got %d", s.HighScore())
	}
}

func TestSessionRestartAfterDeath(t *testing.T) {
	s, sched := newSession(t, floating(), flappy.Deps{})
	s.Start()
	sched.Advance(100 * tick)
	kill(s)
	sched.Advance(tick)
	if s.Alive() {
		t.Fatal("Expected the bird to be dead")
	}

	s.Start()

	if len(s.Frame().Pipes) != 0 {
		t.Errorf("Expected no pipes at tick 0, got %d", len(s.Frame().Pipes))
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("Expected fresh run, score=%d ticks=%d", s.Score(), s.Ticks())
	}
	if !s.Alive() || s.RestartVisible() {
		t.Error("Expected live bird and hidden restart affordance")
	}
	if sched.Pending() != 2 {
		t.Errorf("Expected exactly 2 pending callbacks after restart, got %d", sched.Pending())
	}
}

func TestSessionRepeatedStartKeepsSingleChains(t *testing.T) {
	s, sched := newSession(t, floating(), flappy.Deps{})
	frames := 0
	s.SetFrameHandler(func(flappy.Frame) { frames++ })

	for i := 0; i < 5; i++ {
		s.Start()
	}
	if sched.Pending() != 2 {
		t.Fatalf("Expected 2 pending callbacks, got %d", sched.Pending())
	}

	sched.Advance(9 * tick)

	// Duplicate chains would multiply ticks and frames
	if s.Ticks() != 10 {
		t.Errorf("Expected 10 ticks, got %d", s.Ticks())
	}
	if frames != 10 {
		t.Errorf("Expected 10 frames, got %d", frames)
	}
}

func TestSessionStartMidRun(t *testing.T) {
	s, sched := newSession(t, floating(), flappy.Deps{})
	s.Start()
	sched.Advance(5*tick + tick/2)

	s.Start()
	sched.Advance(0)

	if s.Ticks() != 1 {
		t.Errorf("Expected the restarted run to have ticked once, got %d", s.Ticks())
	}
}

func TestSessionFlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSounds(ctrl)
	sounds.EXPECT().Loop(gomock.Any()).AnyTimes()
	sounds.EXPECT().Play(flappy.SoundFlap).Times(2)

	s, _ := newSession(t, config.DefaultFlappyConfig(), flappy.Deps{Sounds: sounds})
	s.Start()

	s.Flap()
	if v := s.World().Bird.Velocity; v != -6 {
		t.Errorf("Expected velocity -6, got %v", v)
	}

	// Flapping while dead still plays the sound
	s.World().Bird.Alive = false
	s.Flap()
}

func TestSessionScoreSoundPerClearedSegment(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSounds(ctrl)
	sounds.EXPECT().Loop(gomock.Any()).AnyTimes()
	sounds.EXPECT().Play(flappy.SoundScore).Times(2)

	s, sched := newSession(t, floating(), flappy.Deps{Sounds: sounds})
	s.Start()
	sched.Advance(0) // First tick spawns a pair at x=500

	// Move the pair so the next tick retires both segments
	w := s.World()
	for i := range w.Pipes {
		w.Pipes[i].X = -48
	}
	sched.Advance(tick)

	if len(w.Pipes) != 0 {
		t.Errorf("Expected retired segments, %d left", len(w.Pipes))
	}
}

func TestSessionStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSounds(ctrl)
	sounds.EXPECT().Loop(flappy.SoundBackgroundMusic)
	sounds.EXPECT().Stop(flappy.SoundBackgroundMusic)

	s, sched := newSession(t, floating(), flappy.Deps{Sounds: sounds})
	s.Start()
	s.Stop()
	s.Stop() // No second Stop call on sounds

	if sched.Pending() != 0 {
		t.Errorf("Expected no pending callbacks, got %d", sched.Pending())
	}
	if s.Running() {
		t.Error("Expected session to be stopped")
	}
}

func TestSessionSetTickRate(t *testing.T) {
	s, sched := newSession(t, floating(), flappy.Deps{})

	for _, rate := range []int{0, -1, 1001} {
		if err := s.SetTickRate(rate); err == nil {
			t.Errorf("SetTickRate(%d) should fail", rate)
		}
	}
	if err := s.SetTickRate(30); err != nil {
		t.Fatalf("SetTickRate(30) failed: %v", err)
	}

	s.Start()
	sched.Advance(time.Second)

	// Ticks at 0, 1/30s, ..., 30/30s
	if s.Ticks() != 31 {
		t.Errorf("Expected 31 ticks at 30/s, got %d", s.Ticks())
	}
}

func TestSessionFrameSnapshot(t *testing.T) {
	s, sched := newSession(t, floating(), flappy.Deps{})
	s.Start()
	sched.Advance(0)

	f := s.Frame()
	if f.Width != 500 || f.Height != 512 {
		t.Errorf("Unexpected playfield %vx%v", f.Width, f.Height)
	}
	if len(f.Pipes) != 2 || !f.Alive() {
		t.Fatalf("Unexpected frame: %d pipes, alive=%v", len(f.Pipes), f.Alive())
	}

	// Frames are snapshots
	f.Pipes[0].X = -1000
	if s.World().Pipes[0].X == -1000 {
		t.Error("Mutating a frame changed the world")
	}
}

func TestSessionSameSeedSameRun(t *testing.T) {
	run := func() []flappy.Pipe {
		s, sched := newSession(t, floating(), flappy.Deps{})
		s.World().Bird.Alive = false
		s.Start()
		s.World().Bird.Alive = false
		sched.Advance(400 * tick)
		return s.Frame().Pipes
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("Different pipe counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Pipe %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
