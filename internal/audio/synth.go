package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// ErrUnknownSynth is returned for synth names without a generator.
var ErrUnknownSynth = errors.New("audio: unknown synth sound")

// Note frequencies in Hz
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteB5 = 987.77
	noteE6 = 1318.51
)

// note is one tone of a synthesized sound. A zero frequency is a rest.
type note struct {
	freq float64
	d    time.Duration
	gain float64 // Base-2 volume steps
}

// Synthesize builds one of the built-in sounds: flap, score, hit or
// backgroundMusic.
func Synthesize(name string) (*Clip, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch name {
	case "flap":
		s, err = sequence(
			note{noteE5, 40 * time.Millisecond, 0},
			note{noteB5, 50 * time.Millisecond, -1},
		)
	case "score":
		s, err = sequence(
			note{noteB5, 80 * time.Millisecond, -1},
			note{noteE6, 160 * time.Millisecond, -1},
		)
	case "hit":
		var low, lower beep.Streamer
		if low, err = tone(note{110, 220 * time.Millisecond, 0}); err == nil {
			if lower, err = tone(note{82.41, 220 * time.Millisecond, 0}); err == nil {
				s = beep.Mix(low, lower)
			}
		}
	case "backgroundMusic":
		s, err = melody([]float64{noteC4, noteE4, noteG4, noteC5, noteA4, noteG4, noteE4, noteG4}, 220*time.Millisecond)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSynth, name)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: synth %s: %w", name, err)
	}
	return NewClip(name, s, Format)
}

// tone returns a faded sine for n.
func tone(n note) (beep.Streamer, error) {
	samples := SampleRate.N(n.d)
	if n.freq == 0 {
		return beep.Silence(samples), nil
	}
	sine, err := generators.SineTone(SampleRate, n.freq)
	if err != nil {
		return nil, err
	}
	shaped := newFade(beep.Take(samples, sine), samples, SampleRate.N(5*time.Millisecond))
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: n.gain - 2}, nil
}

func sequence(notes ...note) (beep.Streamer, error) {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(n)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, s)
	}
	return beep.Seq(streamers...), nil
}

// melody plays each frequency for step, with a short rest between notes.
func melody(freqs []float64, step time.Duration) (beep.Streamer, error) {
	rest := step / 5
	notes := make([]note, 0, 2*len(freqs))
	for _, f := range freqs {
		notes = append(notes, note{f, step - rest, -2}, note{0, rest, 0})
	}
	return sequence(notes...)
}

// fade applies a linear attack and release of ramp samples to a stream of
// known length.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	return &fade{streamer: s, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.ramp {
			vol = float64(f.pos) / float64(f.ramp)
		}
		if remaining := f.total - f.pos; remaining < f.ramp {
			vol = float64(remaining) / float64(f.ramp)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
