// Package audio plays short synthesized cues: a two-note chime when the
// organism's want changes and a blip when a resource is fed.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/systems"
)

const (
	chimeNote   = 180 * time.Millisecond
	feedLength  = 90 * time.Millisecond
	attackTime  = 8 * time.Millisecond
	releaseTime = 60 * time.Millisecond
)

// Interval ratios give each resource its own pitch.
var ratios = [...]float64{
	systems.ResourceWater:     1,
	systems.ResourceNutrients: 5.0 / 4.0,
	systems.ResourceDarkness:  3.0 / 4.0,
}

// Params configures the cues.
type Params struct {
	SampleRate int
	Volume     float64
	WantToneHz float64
	FeedToneHz float64
}

// ParamsFromConfig extracts audio parameters from the loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
		WantToneHz: cfg.Audio.WantToneHz,
		FeedToneHz: cfg.Audio.FeedToneHz,
	}
}

// Cues owns the speaker mixer. Play methods are safe to call from the frame
// loop; they are no-ops until Init succeeds.
type Cues struct {
	mu          sync.Mutex
	params      Params
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates an uninitialized cue player.
func NewCues(p Params) *Cues {
	return &Cues{
		params: p,
		rate:   beep.SampleRate(p.SampleRate),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device and starts the mixer.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences any playing cue.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// PlayWant plays the chime for a newly sampled want.
func (c *Cues) PlayWant(w systems.Want) {
	c.play(WantChime(c.params, c.rate, w))
}

// PlayFeed plays the blip for feeding the given resource.
func (c *Cues) PlayFeed(kind systems.ResourceKind) {
	c.play(FeedBlip(c.params, c.rate, kind))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// WantChime returns two rising notes pitched by the wanted resource.
func WantChime(p Params, rate beep.SampleRate, w systems.Want) beep.Streamer {
	base := p.WantToneHz * ratios[w.Resource()]
	first := NewTone(base, chimeNote, attackTime, releaseTime, rate)
	second := NewTone(base*1.5, chimeNote, attackTime, releaseTime, rate)
	return newVolume(beep.Seq(first, second), p.Volume)
}

// FeedBlip returns a single short note pitched by the fed resource.
func FeedBlip(p Params, rate beep.SampleRate, kind systems.ResourceKind) beep.Streamer {
	t := NewTone(p.FeedToneHz*ratios[kind], feedLength, attackTime, releaseTime, rate)
	return newVolume(t, p.Volume)
}
