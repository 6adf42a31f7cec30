package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// SynthPrefix marks a locator naming a built-in synthesized sound.
const SynthPrefix = "synth:"

// ErrUnsupportedFormat is returned for sound files that are neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("audio: unsupported sound format")

// Load resolves a locator into a clip named name. Locators are either
// "synth:<sound>" or a path to a .wav or .mp3 file.
func Load(name, locator string) (*Clip, error) {
	if synth, ok := strings.CutPrefix(locator, SynthPrefix); ok {
		clip, err := Synthesize(synth)
		if err != nil {
			return nil, err
		}
		clip.name = name
		return clip, nil
	}
	return Decode(name, locator)
}

// Decode reads and buffers a sound file.
func Decode(name, path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, format, err = wav.Decode(f)
	case ".mp3":
		s, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer s.Close()
	defer f.Close()

	return NewClip(name, s, format)
}
