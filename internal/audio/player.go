package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	return speakerErr
}

// BeepPlayer plays named clips on the system speaker.
// One-shot sounds overlap freely; each name has at most one active loop.
type BeepPlayer struct {
	mu     sync.Mutex
	clips  map[string]*Clip
	mixer  *beep.Mixer
	loops  map[string]*beep.Ctrl
	volume float64
	device bool
}

// NewBeepPlayer opens the speaker and starts mixing. volume is in base-2
// steps: 0 leaves clips unchanged, -1 halves their amplitude.
func NewBeepPlayer(clips map[string]*Clip, volume float64) (*BeepPlayer, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p := newPlayer(clips, volume)
	p.device = true
	speaker.Play(p.mixer)
	return p, nil
}

// newPlayer returns a player whose mixer is not attached to a device.
func newPlayer(clips map[string]*Clip, volume float64) *BeepPlayer {
	return &BeepPlayer{
		clips:  clips,
		mixer:  &beep.Mixer{},
		loops:  make(map[string]*beep.Ctrl),
		volume: volume,
	}
}

// Play starts a one-shot playback of name. Unknown names are ignored.
func (p *BeepPlayer) Play(name string) {
	clip, ok := p.clips[name]
	if !ok {
		return
	}
	p.withMixer(func() {
		p.mixer.Add(p.withVolume(clip.Streamer()))
	})
}

// Loop plays name repeatedly from its start, replacing an existing loop of
// the same name.
func (p *BeepPlayer) Loop(name string) {
	clip, ok := p.clips[name]
	if !ok {
		return
	}
	p.withMixer(func() {
		if ctrl, ok := p.loops[name]; ok {
			ctrl.Streamer = nil
		}
		ctrl := &beep.Ctrl{Streamer: p.withVolume(beep.Loop(-1, clip.Streamer()))}
		p.loops[name] = ctrl
		p.mixer.Add(ctrl)
	})
}

// Stop halts the loop of name. The next Loop starts from the beginning.
func (p *BeepPlayer) Stop(name string) {
	p.withMixer(func() {
		if ctrl, ok := p.loops[name]; ok {
			ctrl.Paused = true
			ctrl.Streamer = nil
			delete(p.loops, name)
		}
	})
}

// Looping reports whether name has an active loop.
func (p *BeepPlayer) Looping(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loops[name]
	return ok
}

// Close silences every sound.
func (p *BeepPlayer) Close() {
	p.withMixer(func() {
		for name, ctrl := range p.loops {
			ctrl.Streamer = nil
			delete(p.loops, name)
		}
		p.mixer.Clear()
	})
}

func (p *BeepPlayer) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
}

// withMixer runs fn with exclusive access to the mixer.
func (p *BeepPlayer) withMixer(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.device {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Silent is a player that discards every request.
type Silent struct{}

func (Silent) Play(string) {}
func (Silent) Loop(string) {}
func (Silent) Stop(string) {}
