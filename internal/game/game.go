// Package game wires the session, target coordinator, hit resolver and word
// registry into one event-driven game. All calls are expected from one loop.
package game

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/verte-zerg/breaker/internal/aim"
	"github.com/verte-zerg/breaker/internal/generator"
	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/schedule"
	"github.com/verte-zerg/breaker/internal/session"
	"github.com/verte-zerg/breaker/internal/store"
	"github.com/verte-zerg/breaker/internal/target"
	"github.com/verte-zerg/breaker/internal/wordlist"
)

// Options injects collaborators. Zero values get working defaults.
type Options struct {
	Rand  *generator.Generator
	Sound target.Sounder
	Board *store.Store
	Now   func() time.Time
}

// Game is a single play-through context reused across rounds.
type Game struct {
	cfg      model.Config
	session  *session.Machine
	words    *wordlist.Registry
	clock    *schedule.Scheduler
	targets  *target.Coordinator
	resolver *aim.Resolver
	camera   aim.Camera
	board    *store.Store
	now      func() time.Time

	startedAt time.Time
	shots     int
	hits      int
	lastRound *model.RoundResult
}

// New builds a game in the idle state.
func New(cfg model.Config, opts Options) *Game {
	rnd := opts.Rand
	if rnd == nil {
		if cfg.Seed != 0 {
			rnd = generator.NewSeeded(cfg.Seed)
		} else {
			rnd = generator.New()
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	bounds := cfg.Bounds
	if bounds == (model.SpawnBounds{}) {
		bounds = model.DefaultSpawnBounds()
	}

	g := &Game{
		cfg:     cfg,
		session: session.New(cfg.DurationSec),
		words:   wordlist.NewRegistry(cfg.NegativeSeed, cfg.PositiveSeed),
		clock:   schedule.New(),
		camera:  aim.NewCamera(),
		board:   opts.Board,
		now:     now,
	}
	if bg, err := session.ParseBackground(cfg.Background); err == nil {
		g.session.SetBackground(bg)
	}
	g.targets = target.New(rnd, g.words, g.clock, g.session, opts.Sound, bounds)
	g.resolver = aim.NewResolver(g.targets)
	g.session.Subscribe(g.targets)
	return g
}

// Start begins a round from any state and fills the board.
func (g *Game) Start() {
	g.session.Start()
	g.startedAt = g.now()
	g.shots = 0
	g.hits = 0
	g.targets.Fill(g.session.TimeLeft())
}

// Restart resets and immediately starts a new round.
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// Reset returns to idle and clears every target.
func (g *Game) Reset() {
	g.session.Reset()
}

// End finishes the round and records it. Repeated calls change nothing.
func (g *Game) End() {
	if !g.session.End() {
		return
	}
	g.recordRound()
}

// Tick applies one second of countdown: decrement, refill, then end at zero.
func (g *Game) Tick() {
	if !g.session.Tick() {
		return
	}
	g.targets.Fill(g.session.TimeLeft())
	if g.session.TimeLeft() == 0 {
		g.End()
	}
}

// Advance moves the despawn clock forward.
func (g *Game) Advance(dt time.Duration) {
	g.clock.Advance(dt)
}

// Fire resolves a crosshair shot against the scene. Ignored unless playing.
func (g *Game) Fire(scene aim.Scene) (string, bool) {
	if g.session.Status() != session.Playing {
		return "", false
	}
	g.shots++
	id, ok := g.resolver.Fire(g.camera, scene)
	if ok {
		g.hits++
	}
	return id, ok
}

// Scene returns the default box geometry over the active targets.
func (g *Game) Scene() *aim.BoxScene {
	scene := aim.NewBoxScene(g.targets.Targets())
	if g.cfg.HalfExtents != (model.Vec3{}) {
		scene.Half = g.cfg.HalfExtents
	}
	return scene
}

// Move walks the camera while playing.
func (g *Game) Move(forward, strafe float64) {
	if g.session.Status() != session.Playing {
		return
	}
	g.camera.Move(forward, strafe)
}

// Turn rotates the camera.
func (g *Game) Turn(dYaw, dPitch float64) {
	g.camera.Turn(dYaw, dPitch)
}

// SetBackground selects the environment.
func (g *Game) SetBackground(b session.Background) {
	g.session.SetBackground(b)
}

func (g *Game) Status() session.Status         { return g.session.Status() }
func (g *Game) Score() int                     { return g.session.Score() }
func (g *Game) TimeLeft() int                  { return g.session.TimeLeft() }
func (g *Game) Duration() int                  { return g.session.Duration() }
func (g *Game) Background() session.Background { return g.session.Background() }
func (g *Game) Camera() aim.Camera             { return g.camera }
func (g *Game) Words() *wordlist.Registry      { return g.words }
func (g *Game) Targets() []model.TargetView    { return g.targets.Targets() }
func (g *Game) Shots() int                     { return g.shots }
func (g *Game) Hits() int                      { return g.hits }
func (g *Game) Clock() time.Duration           { return g.clock.Now() }
func (g *Game) PendingDespawns() int           { return g.targets.Pending() }

// LastRound returns the most recently finished round.
func (g *Game) LastRound() (model.RoundResult, bool) {
	if g.lastRound == nil {
		return model.RoundResult{}, false
	}
	return *g.lastRound, true
}

// Board returns the round board, which may be nil.
func (g *Game) Board() *store.Store {
	return g.board
}

func (g *Game) recordRound() {
	r := model.RoundResult{
		StartedAt:   g.startedAt,
		EndedAt:     g.now(),
		Score:       g.session.Score(),
		Hits:        g.hits,
		Shots:       g.shots,
		Background:  g.session.Background().String(),
		DurationSec: g.session.Duration() - g.session.TimeLeft(),
	}
	g.lastRound = &r
	if g.board == nil {
		return
	}
	if _, err := g.board.InsertRound(context.Background(), r); err != nil {
		logErrf("failed to record round: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
