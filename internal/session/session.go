// Package session implements the round state machine: status, score and countdown.
package session

import (
	"fmt"
	"strings"
)

// DefaultDurationSec is the round length when none is configured.
const DefaultDurationSec = 30

// Status is the lifecycle state of a round.
type Status int

const (
	Idle Status = iota
	Playing
	Ended
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Background selects the environment. It is independent of the round lifecycle.
type Background int

const (
	White Background = iota
	Space
	School
)

// Backgrounds lists every environment in menu order.
var Backgrounds = []Background{White, Space, School}

func (b Background) String() string {
	switch b {
	case White:
		return "white"
	case Space:
		return "space"
	case School:
		return "school"
	default:
		return fmt.Sprintf("background(%d)", int(b))
	}
}

// ParseBackground maps a name to a Background.
func ParseBackground(name string) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "":
		return White, nil
	case "space":
		return Space, nil
	case "school":
		return School, nil
	}
	return White, fmt.Errorf("unknown background %q (available: white, space, school)", name)
}

// Listener is notified when a round is started or reset.
type Listener interface {
	SessionStarted()
	SessionReset()
}

// Machine owns session state. Calls that do not apply in the current status are no-ops.
type Machine struct {
	status     Status
	score      int
	timeLeft   int
	duration   int
	background Background
	listeners  []Listener
}

// New returns an idle machine. Non-positive durations use DefaultDurationSec.
func New(durationSec int) *Machine {
	if durationSec <= 0 {
		durationSec = DefaultDurationSec
	}
	return &Machine{
		status:   Idle,
		timeLeft: durationSec,
		duration: durationSec,
	}
}

// Subscribe registers a listener for start and reset.
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Machine) Status() Status         { return m.status }
func (m *Machine) Score() int             { return m.score }
func (m *Machine) TimeLeft() int          { return m.timeLeft }
func (m *Machine) Duration() int          { return m.duration }
func (m *Machine) Background() Background { return m.background }

// Start begins a round from any status.
func (m *Machine) Start() {
	m.status = Playing
	m.score = 0
	m.timeLeft = m.duration
	for _, l := range m.listeners {
		l.SessionStarted()
	}
}

// Tick decrements the countdown while playing, floored at zero.
func (m *Machine) Tick() bool {
	if m.status != Playing {
		return false
	}
	if m.timeLeft > 0 {
		m.timeLeft--
	}
	return true
}

// End finishes a round. Ending an ended round changes nothing; idle stays idle.
func (m *Machine) End() bool {
	switch m.status {
	case Playing:
		m.status = Ended
		return true
	default:
		return false
	}
}

// Reset returns to idle with a full timer and zero score.
func (m *Machine) Reset() {
	m.status = Idle
	m.score = 0
	m.timeLeft = m.duration
	for _, l := range m.listeners {
		l.SessionReset()
	}
}

// AddScore credits points while playing.
func (m *Machine) AddScore(points int) {
	if m.status != Playing || points <= 0 {
		return
	}
	m.score += points
}

// SetBackground selects the environment; unknown values are ignored.
func (m *Machine) SetBackground(b Background) {
	for _, known := range Backgrounds {
		if known == b {
			m.background = b
			return
		}
	}
}
