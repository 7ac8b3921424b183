// Package target coordinates the set of active word-targets: spawning against a
// time-driven capacity, committing hits and removing hit targets after a delay.
package target

import (
	"time"

	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/schedule"
	"github.com/verte-zerg/breaker/internal/wordlist"
)

const (
	// HitPoints is credited for every committed hit.
	HitPoints = 100
	// DespawnDelay separates a hit commit from the target's removal.
	DespawnDelay = time.Second

	fullCapacity  = 15
	taperCapacity = 6
	taperFromSec  = 7
)

// Source supplies randomness for spawns.
type Source interface {
	wordlist.Intner
	Position(b model.SpawnBounds) model.Vec3
	Phase() float64
	ID() string
}

// Scorer receives score credit for hits.
type Scorer interface {
	AddScore(points int)
}

// Sounder plays the impact effect.
type Sounder interface {
	PlayImpactSound()
}

type target struct {
	id       string
	position model.Vec3
	word     string
	isHit    bool
	phase    float64
}

func (t *target) view() model.TargetView {
	return model.TargetView{
		ID:       t.id,
		Position: t.position,
		Word:     t.word,
		IsHit:    t.isHit,
		Phase:    t.phase,
	}
}

// Coordinator owns the active targets. It is driven from a single loop.
type Coordinator struct {
	src    Source
	words  *wordlist.Registry
	clock  *schedule.Scheduler
	scorer Scorer
	sound  Sounder
	bounds model.SpawnBounds

	active  []*target
	pending map[string]schedule.Handle
	issued  map[string]struct{}
}

// Capacity returns the maximum active targets for the time left and whether
// new targets may spawn.
func Capacity(timeLeft int) (limit int, spawn bool) {
	switch {
	case timeLeft > taperFromSec:
		return fullCapacity, true
	case timeLeft > 0:
		return taperCapacity, true
	default:
		return 0, false
	}
}

// New builds a coordinator. sound may be nil.
func New(src Source, words *wordlist.Registry, clock *schedule.Scheduler, scorer Scorer, sound Sounder, bounds model.SpawnBounds) *Coordinator {
	return &Coordinator{
		src:     src,
		words:   words,
		clock:   clock,
		scorer:  scorer,
		sound:   sound,
		bounds:  bounds,
		pending: map[string]schedule.Handle{},
		issued:  map[string]struct{}{},
	}
}

// SessionStarted implements session.Listener.
func (c *Coordinator) SessionStarted() { c.Reset() }

// SessionReset implements session.Listener.
func (c *Coordinator) SessionReset() { c.Reset() }

// Fill spawns targets until the capacity for timeLeft is reached.
func (c *Coordinator) Fill(timeLeft int) int {
	limit, spawn := Capacity(timeLeft)
	if !spawn {
		return 0
	}
	spawned := 0
	for len(c.active) < limit {
		c.Spawn()
		spawned++
	}
	return spawned
}

// Spawn adds one target with a negative label and returns its view.
func (c *Coordinator) Spawn() model.TargetView {
	t := &target{
		id:       c.freshID(),
		position: c.src.Position(c.bounds),
		word:     c.words.Negative.Pick(c.src),
		phase:    c.src.Phase(),
	}
	c.active = append(c.active, t)
	return t.view()
}

func (c *Coordinator) freshID() string {
	for {
		id := c.src.ID()
		if _, dup := c.issued[id]; dup {
			continue
		}
		c.issued[id] = struct{}{}
		return id
	}
}

// Commit marks an unhit target as hit, swaps in a positive label, credits score,
// schedules its removal and plays the impact sound. Unknown or already-hit ids
// are ignored.
func (c *Coordinator) Commit(id string) bool {
	t := c.find(id)
	if t == nil || t.isHit {
		return false
	}
	t.isHit = true
	t.word = c.words.Positive.Pick(c.src)
	c.pending[id] = c.clock.After(DespawnDelay, func() {
		delete(c.pending, id)
		c.remove(id)
	})
	c.scorer.AddScore(HitPoints)
	if c.sound != nil {
		c.sound.PlayImpactSound()
	}
	return true
}

// Reset clears every target and drops pending removals.
func (c *Coordinator) Reset() {
	for id, h := range c.pending {
		c.clock.Cancel(h)
		delete(c.pending, id)
	}
	c.active = nil
}

// Targets returns views of the active targets in spawn order.
func (c *Coordinator) Targets() []model.TargetView {
	out := make([]model.TargetView, 0, len(c.active))
	for _, t := range c.active {
		out = append(out, t.view())
	}
	return out
}

// Get returns the view of an active target.
func (c *Coordinator) Get(id string) (model.TargetView, bool) {
	t := c.find(id)
	if t == nil {
		return model.TargetView{}, false
	}
	return t.view(), true
}

// IsHittable reports whether id is active and not yet hit.
func (c *Coordinator) IsHittable(id string) bool {
	t := c.find(id)
	return t != nil && !t.isHit
}

// Len returns the active target count.
func (c *Coordinator) Len() int {
	return len(c.active)
}

// Pending returns the number of scheduled removals.
func (c *Coordinator) Pending() int {
	return len(c.pending)
}

func (c *Coordinator) find(id string) *target {
	for _, t := range c.active {
		if t.id == id {
			return t
		}
	}
	return nil
}

func (c *Coordinator) remove(id string) {
	for i, t := range c.active {
		if t.id == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}
