// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration cannot produce a
// playable session.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Bird      FlappyBird      `yaml:"bird"`
	Pipes     FlappyPipes     `yaml:"pipes"`
	Timing    FlappyTiming    `yaml:"timing"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
}

// FlappyPlayfield defines the simulated field size in playfield units.
type FlappyPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyBird defines the bird spawn state and physics constants.
type FlappyBird struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on flap (negative = up)
}

// FlappyPipes defines obstacle geometry and spawning.
type FlappyPipes struct {
	Width         float64 `yaml:"width"`
	Speed         float64 `yaml:"speed"`          // Units moved left per tick
	GapHeight     float64 `yaml:"gap_height"`     // Height of the passable opening
	Margin        float64 `yaml:"margin"`         // Minimum distance of the gap from top/bottom
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between pipe pairs
}

// FlappyTiming defines update and render cadence.
type FlappyTiming struct {
	TickRate        int     `yaml:"tick_rate"`        // Simulation ticks per second
	RefreshRate     int     `yaml:"refresh_rate"`     // Render frames per second
	BackgroundSpeed float64 `yaml:"background_speed"` // Background scroll per tick
}

// AssetsConfig maps logical asset names to locators.
// Locators are either "builtin:<name>" / "synth:<name>" or file paths,
// relative paths being resolved against BaseDir.
type AssetsConfig struct {
	BaseDir string            `yaml:"base_dir"`
	Images  map[string]string `yaml:"images"`
	Sounds  map[string]string `yaml:"sounds"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Relative volume, 0 = unchanged, negative = quieter
}

// Validate checks the invariants the simulation relies on.
// The gap must fit between the margins, otherwise spawning could produce a
// negative segment height.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %v", c.Playfield.Width)
	check(c.Playfield.Height > 0, "playfield.height must be positive, got %v", c.Playfield.Height)
	check(c.Bird.Width > 0, "bird.width must be positive, got %v", c.Bird.Width)
	check(c.Bird.Height > 0, "bird.height must be positive, got %v", c.Bird.Height)
	check(c.Pipes.Width > 0, "pipes.width must be positive, got %v", c.Pipes.Width)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %v", c.Pipes.Speed)
	check(c.Pipes.GapHeight > 0, "pipes.gap_height must be positive, got %v", c.Pipes.GapHeight)
	check(c.Pipes.Margin >= 0, "pipes.margin must not be negative, got %v", c.Pipes.Margin)
	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be positive, got %d", c.Pipes.SpawnInterval)
	check(c.GapSpan() >= 0,
		"playfield.height - 2*pipes.margin - pipes.gap_height must not be negative, got %v", c.GapSpan())
	check(c.Timing.TickRate > 0 && c.Timing.TickRate <= 1000,
		"timing.tick_rate must be in [1, 1000], got %d", c.Timing.TickRate)
	check(c.Timing.RefreshRate > 0 && c.Timing.RefreshRate <= 1000,
		"timing.refresh_rate must be in [1, 1000], got %d", c.Timing.RefreshRate)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// GapSpan returns the vertical range the gap start can vary over.
func (c FlappyConfig) GapSpan() float64 {
	return c.Playfield.Height - 2*c.Pipes.Margin - c.Pipes.GapHeight
}
