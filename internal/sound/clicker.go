// Package sound plays the typewriter key clicks.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/portfolio-hero/internal/config"
)

// Clicker plays a short decaying tone per typed character.
type Clicker struct {
	sr     beep.SampleRate
	muted  bool
	length int
}

// NewClicker initializes the speaker. It must be called at most once
// per process.
func NewClicker() (*Clicker, error) {
	sr := beep.SampleRate(config.ClickSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Clicker{
		sr:     sr,
		length: sr.N(config.ClickDurationMS * time.Millisecond),
	}, nil
}

// Click plays one click unless muted.
func (c *Clicker) Click() {
	if c.muted {
		return
	}
	speaker.Play(newClick(c.sr, config.ClickFrequency, config.ClickVolume, c.length))
}

// SetMuted mutes or unmutes. Muting drops clicks already queued.
func (c *Clicker) SetMuted(muted bool) {
	c.muted = muted
	if muted {
		// Clear takes the speaker lock itself.
		speaker.Clear()
	}
}

// Muted reports whether clicks are suppressed.
func (c *Clicker) Muted() bool {
	return c.muted
}

// click is a sine burst with an exponential decay envelope.
type click struct {
	step   float64
	volume float64
	pos    int
	length int
}

func newClick(sr beep.SampleRate, freq, volume float64, length int) *click {
	return &click{
		step:   2 * math.Pi * freq / float64(sr),
		volume: volume,
		length: length,
	}
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.length {
			break
		}
		decay := math.Exp(-5 * float64(c.pos) / float64(c.length))
		v := c.volume * decay * math.Sin(c.step*float64(c.pos))
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }
