package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// Options configure a terminal game.
type Options struct {
	Config   config.FlappyConfig
	Seed     int64
	TickRate int // 0 keeps the configured rate
	Runtime  core.RuntimeConfig
	Bundle   *assets.Bundle
	Sounds   flappy.Sounds
	Store    flappy.HighScoreStore
	Runs     flappy.RunRecorder
	Logger   *log.Logger
}

// screenState is shared between the Model value and the session callbacks.
// It receives frames from the render chain and restart visibility from the
// session, and caches the rendered playfield.
type screenState struct {
	renderer       *flappy.Renderer
	screen         *core.Screen
	last           flappy.Frame
	frames         int
	restartVisible bool
	out            string
}

// SetRestartVisible implements flappy.Presenter.
func (st *screenState) SetRestartVisible(visible bool) {
	st.restartVisible = visible
}

// draw renders f into the screen buffer and caches the styled string.
func (st *screenState) draw(f flappy.Frame) {
	st.last = f
	st.frames++
	st.redraw()
}

func (st *screenState) redraw() {
	st.renderer.Render(st.screen, st.last)
	if st.last.RestartVisible {
		drawOverlay(st.screen)
	}
	st.out = RenderScreen(st.screen)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *flappy.Session
	sched    *teaScheduler
	state    *screenState
	keys     KeyMap
	help     help.Model
	log      *log.Logger
	quitting bool
}

// NewModel creates a Bubble Tea model with an idle session. The session
// starts in Init.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt = core.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sched := newTeaScheduler()
	state := &screenState{
		renderer: flappy.NewRenderer(opts.Bundle),
		screen:   core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-footerHeight, 1)),
	}

	session, err := flappy.NewSession(opts.Config, opts.Seed, flappy.Deps{
		Scheduler: sched,
		Sounds:    opts.Sounds,
		Store:     opts.Store,
		Presenter: state,
		Runs:      opts.Runs,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, err
	}
	if opts.TickRate > 0 {
		if err := session.SetTickRate(opts.TickRate); err != nil {
			return Model{}, err
		}
	}
	session.SetFrameHandler(state.draw)

	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		sched:   sched,
		state:   state,
		keys:    DefaultKeyMap(),
		help:    h,
		log:     logger,
	}, nil
}

// Init starts the session and its callback chains.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return m.sched.drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		m.sched.fire(msg.id)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)
	}

	m.keys.Restart.SetEnabled(m.state.restartVisible)
	return m, m.sched.drain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.keys.Restart.SetEnabled(m.state.restartVisible)
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.session.Flap()
	case core.ActionRestart:
		m.restart()
	}

	m.keys.Restart.SetEnabled(m.state.restartVisible)
	return m, m.sched.drain()
}

// handleMouse maps a left press to a flap, or to a restart when it lands
// on the restart affordance.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.state.restartVisible && overlayRect(m.state.screen).Contains(msg.X, msg.Y) {
		m.restart()
		return
	}
	m.session.Flap()
}

func (m Model) restart() {
	if !m.state.restartVisible {
		return
	}
	m.log.Debug("restart requested")
	m.session.Start()
}

// handleResize resizes the screen buffer and redraws the last frame.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.state.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	if m.state.frames > 0 {
		m.state.redraw()
	}
}

// View returns the cached playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.state.out + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the session driven by the model.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Frames returns how many frames the render chain has delivered.
func (m Model) Frames() int {
	return m.state.frames
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
