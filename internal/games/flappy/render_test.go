package flappy

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func testFrame() Frame {
	w := NewWorld(testConfig(), newRand(1))
	w.AddPair(200)
	w.Pipes[0].X = 250
	w.Pipes[1].X = 250
	w.Score = 12
	return newFrame(w, 34, false)
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestRenderGlyphsWithoutBundle(t *testing.T) {
	r := NewRenderer(nil)
	screen := core.NewScreen(100, 50)
	f := testFrame()

	r.Render(screen, f)

	if !strings.Contains(screen.Row(0), "Score : 12") {
		t.Errorf("Expected score line, got %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "High Score : 34") {
		t.Errorf("Expected high score line, got %q", screen.Row(1))
	}
	if countRune(screen, BirdChar) == 0 {
		t.Error("Expected the bird to be drawn")
	}

	// Pipes at x=250..300 map to columns 50..60. The gap rows stay empty.
	gapY := 260 * 50.0 / 512
	gapRow := int(gapY)
	if screen.Get(55, gapRow) == PipeChar {
		t.Error("Gap row should be empty")
	}
	if screen.Get(55, 5) != PipeChar {
		t.Error("Expected top pipe above the gap")
	}
	if screen.Get(55, 45) != PipeChar {
		t.Error("Expected bottom pipe below the gap")
	}
}

func TestRenderSkipsDeadBird(t *testing.T) {
	r := NewRenderer(nil)
	screen := core.NewScreen(100, 50)
	f := testFrame()
	f.Bird.Alive = false

	r.Render(screen, f)

	if countRune(screen, BirdChar) != 0 {
		t.Error("Dead bird should not be drawn")
	}
	if !strings.Contains(screen.Row(0), "Score : 12") {
		t.Error("Score should still be drawn after death")
	}
}

func TestRenderWithBuiltinBundle(t *testing.T) {
	b, err := assets.LoadSync(context.Background(), assets.ManifestFromConfig(config.DefaultFlappyConfig().Assets))
	if err != nil {
		t.Fatalf("LoadSync() failed: %v", err)
	}
	r := NewRenderer(b)
	screen := core.NewScreen(100, 50)

	r.Render(screen, testFrame())

	// The sky fills the background, so no cell is left blank
	blank := 0
	for y := 2; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == ' ' {
				blank++
			}
		}
	}
	if blank != 0 {
		t.Errorf("Expected the background to cover the field, %d blank cells", blank)
	}

	// Pipe columns are painted in green shades
	c := screen.GetCell(55, 5)
	if c.Color != core.ColorLeaf && c.Color != core.ColorForest && c.Color != core.ColorLime {
		t.Errorf("Expected pipe colored cell, got %+v", c)
	}
}

func TestRenderBackgroundScrollWraps(t *testing.T) {
	b, err := assets.LoadSync(context.Background(), assets.ManifestFromConfig(config.DefaultFlappyConfig().Assets))
	if err != nil {
		t.Fatalf("LoadSync() failed: %v", err)
	}
	r := NewRenderer(b)

	f := testFrame()
	f.Pipes = nil
	f.Bird.Alive = false
	f.BackgroundX = 0
	a := core.NewScreen(100, 50)
	r.Render(a, f)

	// One full background width later the picture repeats
	f.BackgroundX = assets.BackgroundImageW
	c := core.NewScreen(100, 50)
	r.Render(c, f)

	if a.String() != c.String() {
		t.Error("Background should repeat after one image width")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	r := NewRenderer(nil)
	r.Render(core.NewScreen(0, 0), testFrame())
}
