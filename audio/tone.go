package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave with a linear attack and release.
type tone struct {
	freq    float64
	rate    beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a finite sine tone of the given length. The envelope ramps
// up over attack and down over release so the tone starts and ends silent.
func NewTone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &tone{freq: freq, rate: rate, total: total, attack: att, release: rel}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate)) * t.gain()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if t.release > 0 {
		remaining := t.total - t.pos
		if remaining < t.release {
			return float64(remaining) / float64(t.release)
		}
	}
	return 1
}

// newVolume scales s by a linear gain. Zero or negative gain is silent,
// since effects.Volume works in log space.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
