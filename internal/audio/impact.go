// Package audio synthesizes the hit impact sound.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	impactDuration = 300 * time.Millisecond
	sweepDuration  = 100 * time.Millisecond

	sweepFromHz = 800.0
	sweepToHz   = 100.0
	gainFrom    = 0.3
	gainTo      = 0.01
)

// impact is a triangle wave whose pitch falls 800 Hz to 100 Hz over the first
// 100 ms while the gain decays 0.3 to 0.01 over 300 ms, both exponentially.
type impact struct {
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	sweep    int
}

// NewImpact returns a fresh impact streamer at the given rate.
func NewImpact(rate beep.SampleRate) beep.Streamer {
	return &impact{
		rate:  rate,
		total: rate.N(impactDuration),
		sweep: rate.N(sweepDuration),
	}
}

func (s *impact) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		gain := expRamp(gainFrom, gainTo, float64(s.position)/float64(s.total))
		val := triangle(s.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		freq := sweepToHz
		if s.position < s.sweep {
			freq = expRamp(sweepFromHz, sweepToHz, float64(s.position)/float64(s.sweep))
		}
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *impact) Err() error { return nil }

// triangle maps a phase in [0, 1) to [-1, 1].
func triangle(phase float64) float64 {
	return 1 - 4*math.Abs(phase-0.5)
}

func expRamp(from, to, frac float64) float64 {
	if frac <= 0 {
		return from
	}
	if frac >= 1 {
		return to
	}
	return from * math.Pow(to/from, frac)
}

// math.Log2(0) is -Inf, so zero volume becomes an explicit silent stage.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
