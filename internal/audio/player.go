package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sounder plays the impact effect. Implementations never block the caller.
type Sounder interface {
	PlayImpactSound()
}

// Silent drops every sound.
type Silent struct{}

// PlayImpactSound implements Sounder.
func (Silent) PlayImpactSound() {}

// Player mixes impact sounds onto the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewPlayer initializes the speaker. volume scales every effect (1 is unchanged).
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	return p, nil
}

// PlayImpactSound implements Sounder.
func (p *Player) PlayImpactSound() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	s := newVolume(NewImpact(sampleRate), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

// Open returns a speaker-backed Sounder when enabled, falling back to Silent.
// The returned close func is always safe to call.
func Open(enabled bool, volume float64) (Sounder, func(), error) {
	if !enabled {
		return Silent{}, func() {}, nil
	}
	p, err := NewPlayer(volume)
	if err != nil {
		return Silent{}, func() {}, err
	}
	return p, p.Close, nil
}
