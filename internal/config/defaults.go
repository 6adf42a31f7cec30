package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:  500,
			Height: 512,
		},
		Bird: FlappyBird{
			X:           80,
			Y:           250,
			Width:       40,
			Height:      30,
			Gravity:     0.3,
			JumpImpulse: -6,
		},
		Pipes: FlappyPipes{
			Width:         50,
			Speed:         3,
			GapHeight:     120,
			Margin:        50,
			SpawnInterval: 90,
		},
		Timing: FlappyTiming{
			TickRate:        60,
			RefreshRate:     60,
			BackgroundSpeed: 0.5,
		},
		Assets: AssetsConfig{
			Images: map[string]string{
				"bird":       "builtin:bird",
				"background": "builtin:background",
				"pipetop":    "builtin:pipetop",
				"pipebottom": "builtin:pipebottom",
			},
			Sounds: map[string]string{
				"flap":            "synth:flap",
				"score":           "synth:score",
				"hit":             "synth:hit",
				"backgroundMusic": "synth:backgroundMusic",
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
