// Package desktop runs the game in a window with ebiten.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// maxCatchUp bounds how much simulated time one Update may run. Longer
// stalls (window dragged, laptop asleep) are skipped instead of replayed.
const maxCatchUp = 250 * time.Millisecond

// Restart button size in playfield units.
const (
	buttonW = 160
	buttonH = 48
)

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	birdColor   = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	buttonColor = color.RGBA{R: 230, G: 97, B: 29, A: 255}
)

// Options configure a desktop game.
type Options struct {
	Config   config.FlappyConfig
	Seed     int64
	TickRate int // 0 keeps the configured rate
	Bundle   *assets.Bundle
	Sounds   flappy.Sounds
	Store    flappy.HighScoreStore
	Runs     flappy.RunRecorder
	Logger   *log.Logger
}

// Input is the player input sampled for one Update.
type Input struct {
	Flap    bool
	Restart bool
	Quit    bool
	// Press is a click or touch start at (X, Y) in playfield units.
	Press bool
	X, Y  float64
}

// Game implements ebiten.Game. ebiten calls Update on its own goroutine;
// the session and its virtual clock are only touched from there.
type Game struct {
	session *flappy.Session
	clock   *loop.Manual
	start   time.Time
	lag     time.Duration
	log     *log.Logger

	width, height int
	frame         flappy.Frame
	hasFrame      bool
	restart       bool

	bundle  *assets.Bundle
	images  map[string]*ebiten.Image
	pixel   *ebiten.Image
	touches []ebiten.TouchID
}

// New creates a game and starts its first run.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		clock:  loop.NewManual(),
		log:    logger,
		width:  int(math.Round(opts.Config.Playfield.Width)),
		height: int(math.Round(opts.Config.Playfield.Height)),
		bundle: opts.Bundle,
	}

	session, err := flappy.NewSession(opts.Config, opts.Seed, flappy.Deps{
		Scheduler: g.clock,
		Sounds:    opts.Sounds,
		Store:     opts.Store,
		Presenter: g,
		Runs:      opts.Runs,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if opts.TickRate > 0 {
		if err := session.SetTickRate(opts.TickRate); err != nil {
			return nil, err
		}
	}
	session.SetFrameHandler(func(f flappy.Frame) {
		g.frame = f
		g.hasFrame = true
	})
	g.session = session

	g.start = time.Now()
	session.Start()
	return g, nil
}

// SetRestartVisible implements flappy.Presenter.
func (g *Game) SetRestartVisible(visible bool) {
	g.restart = visible
}

// Session returns the session driven by the game.
func (g *Game) Session() *flappy.Session {
	return g.session
}

// Update polls input and advances the virtual clock to wall time.
func (g *Game) Update() error {
	in := g.readInput()
	if in.Quit {
		g.session.Stop()
		return ebiten.Termination
	}
	g.step(time.Since(g.start), in)
	return nil
}

// step applies input and then runs every callback due by now.
func (g *Game) step(now time.Duration, in Input) {
	switch {
	case in.Press && g.restart && g.buttonRect().contains(in.X, in.Y):
		g.session.Start()
	case in.Restart && g.restart:
		g.session.Start()
	case in.Flap, in.Press:
		g.session.Flap()
	}

	target := now - g.lag
	if behind := target - g.clock.Now(); behind > maxCatchUp {
		g.lag += behind - maxCatchUp
		target = g.clock.Now() + maxCatchUp
		g.log.Debug("skipping stalled time", "skipped", behind-maxCatchUp)
	}
	g.clock.AdvanceTo(target)
}

func (g *Game) readInput() Input {
	var in Input
	in.Flap = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Press, in.X, in.Y = true, float64(x), float64(y)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		in.Press, in.X, in.Y = true, float64(x), float64(y)
	}
	return in
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// buttonRect is the restart button, centered on the playfield.
func (g *Game) buttonRect() rect {
	return rect{
		x: (float64(g.width) - buttonW) / 2,
		y: (float64(g.height) - buttonH) / 2,
		w: buttonW,
		h: buttonH,
	}
}

// Draw paints the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.loadImages()
	screen.Fill(skyColor)
	if !g.hasFrame {
		return
	}
	f := g.frame

	g.drawBackground(screen, f)
	for _, p := range f.Pipes {
		g.drawPipe(screen, p)
	}
	if f.Bird.Alive {
		g.drawBird(screen, f.Bird)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score : %d", f.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High Score : %d", f.HighScore), 10, 26)

	if f.RestartVisible {
		r := g.buttonRect()
		g.fillRect(screen, r, buttonColor)
		ebitenutil.DebugPrintAt(screen, "RESTART", int(r.x+r.w/2)-21, int(r.y+r.h/2)-8)
	}
}

// Layout returns the playfield size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// loadImages uploads the bundle images on first use. ebiten images must be
// created once the graphics driver is running.
func (g *Game) loadImages() {
	if g.pixel != nil {
		return
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)

	g.images = make(map[string]*ebiten.Image)
	if g.bundle == nil {
		return
	}
	for _, name := range g.bundle.ImageNames() {
		if img := g.bundle.Image(name); img != nil {
			g.images[name] = ebiten.NewImageFromImage(img)
		}
	}
}

func (g *Game) fillRect(dst *ebiten.Image, r rect, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.w, r.h)
	op.GeoM.Translate(r.x, r.y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(g.pixel, op)
}

// drawBackground tiles the background horizontally, shifted left by the
// scroll offset.
func (g *Game) drawBackground(dst *ebiten.Image, f flappy.Frame) {
	img := g.images[assets.ImageBackground]
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	sy := f.Height / float64(img.Bounds().Dy())
	offset := math.Round(math.Mod(f.BackgroundX, w))
	tiles := int(math.Ceil(f.Width/w)) + 1
	for i := 0; i < tiles; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, sy)
		op.GeoM.Translate(float64(i)*w-offset, 0)
		dst.DrawImage(img, op)
	}
}

// drawPipe draws a segment at its natural image height. The top sprite
// hangs from the segment's bottom edge, the bottom one stands on its top.
func (g *Game) drawPipe(dst *ebiten.Image, p flappy.Pipe) {
	name := assets.ImagePipeTop
	if p.Kind == flappy.PipeBottom {
		name = assets.ImagePipeBottom
	}
	img := g.images[name]
	if img == nil {
		g.fillRect(dst, rect{p.X, p.Y, p.Width, p.Height}, pipeColor)
		return
	}

	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())
	y := p.Y
	if p.Kind == flappy.PipeTop {
		y = p.Y + p.Height - imgH
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Width/imgW, 1)
	op.GeoM.Translate(p.X, y)
	dst.DrawImage(img, op)
}

// drawBird draws the bird rotated about its center.
func (g *Game) drawBird(dst *ebiten.Image, b flappy.Bird) {
	img := g.images[assets.ImageBird]
	src := g.pixel
	sw, sh := 1.0, 1.0
	if img != nil {
		src = img
		sw, sh = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Width/sw, b.Height/sh)
	op.GeoM.Translate(-b.Width/2, -b.Height/2)
	op.GeoM.Rotate(b.Angle())
	op.GeoM.Translate(b.X+b.Width/2, b.Y+b.Height/2)
	if img == nil {
		op.ColorScale.ScaleWithColor(birdColor)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Run opens a window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	g.session.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
