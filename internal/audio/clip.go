// Package audio loads sound clips and plays them through the system speaker
// using beep.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every clip is stored and mixed at.
const SampleRate = beep.SampleRate(44100)

// Format is the in-memory format of every clip.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// resampleQuality is the interpolation quality passed to beep.Resample.
const resampleQuality = 4

// Clip is a fully buffered sound, immutable after creation.
type Clip struct {
	name string
	buf  *beep.Buffer
}

// NewClip buffers s, resampling it to SampleRate when its format differs.
// s must be finite.
func NewClip(name string, s beep.Streamer, format beep.Format) (*Clip, error) {
	if format.SampleRate != SampleRate && format.SampleRate > 0 {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, s)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot buffer %s: %w", name, err)
	}
	return &Clip{name: name, buf: buf}, nil
}

// Name returns the logical name of the clip.
func (c *Clip) Name() string {
	return c.name
}

// Len returns the clip length in samples.
func (c *Clip) Len() int {
	return c.buf.Len()
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return SampleRate.D(c.buf.Len())
}

// Streamer returns a new streamer positioned at the start of the clip.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}
