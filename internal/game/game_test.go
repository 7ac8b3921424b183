package game

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/breaker/internal/aim"
	"github.com/verte-zerg/breaker/internal/generator"
	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/session"
	"github.com/verte-zerg/breaker/internal/store"
	"github.com/verte-zerg/breaker/internal/wordlist"
)

type countingSound struct{ plays int }

func (c *countingSound) PlayImpactSound() { c.plays++ }

func newGame(t *testing.T, cfg model.Config) (*Game, *countingSound) {
	t.Helper()
	sound := &countingSound{}
	g := New(cfg, Options{Rand: generator.NewSeeded(11), Sound: sound})
	return g, sound
}

// aimedScene stands in for the renderer: only the target with id is drawn,
// straight ahead of the default camera.
func aimedScene(g *Game, id string) *aim.BoxScene {
	for _, v := range g.Targets() {
		if v.ID == id {
			v.Position = model.Vec3{Y: aim.EyeHeight, Z: -6}
			return aim.NewBoxScene([]model.TargetView{v})
		}
	}
	return aim.NewBoxScene(nil)
}

func TestStartFillsBoard(t *testing.T) {
	g, _ := newGame(t, model.Config{})
	if len(g.Targets()) != 0 {
		t.Fatalf("expected no targets while idle")
	}
	g.Start()
	if g.Status() != session.Playing || g.TimeLeft() != 30 || g.Score() != 0 {
		t.Fatalf("unexpected state %s/%d/%d", g.Status(), g.TimeLeft(), g.Score())
	}
	if len(g.Targets()) != 15 {
		t.Fatalf("expected 15 targets, got %d", len(g.Targets()))
	}
}

func TestFullRound(t *testing.T) {
	g, _ := newGame(t, model.Config{})
	g.Start()
	for i := 0; i < 22; i++ {
		g.Tick()
	}
	if g.TimeLeft() != 8 {
		t.Fatalf("expected 8s left, got %d", g.TimeLeft())
	}
	// Clear the board down to 3 targets, then let them despawn.
	targets := g.Targets()
	for _, v := range targets[:12] {
		if _, ok := g.Fire(aimedScene(g, v.ID)); !ok {
			t.Fatalf("expected hit on %s", v.ID)
		}
	}
	g.Advance(time.Second)
	if len(g.Targets()) != 3 {
		t.Fatalf("expected 3 targets after despawn, got %d", len(g.Targets()))
	}
	g.Tick()
	if g.TimeLeft() != 7 || len(g.Targets()) != 6 {
		t.Fatalf("expected tapered refill to 6 at 7s, got %d at %ds", len(g.Targets()), g.TimeLeft())
	}
	for g.TimeLeft() > 0 {
		g.Tick()
	}
	if g.Status() != session.Ended {
		t.Fatalf("expected ended at zero, got %s", g.Status())
	}
	if g.Score() != 12*100 {
		t.Fatalf("expected 1200, got %d", g.Score())
	}
	before := len(g.Targets())
	g.Tick()
	if g.TimeLeft() != 0 || len(g.Targets()) != before {
		t.Fatalf("tick after end changed state")
	}
	round, ok := g.LastRound()
	if !ok || round.Score != 1200 || round.Hits != 12 || round.Shots != 12 || round.DurationSec != 30 {
		t.Fatalf("unexpected round %+v", round)
	}
}

func TestFireIgnoredUnlessPlaying(t *testing.T) {
	g, sound := newGame(t, model.Config{})
	g.Start()
	id := g.Targets()[0].ID
	scene := aimedScene(g, id)
	g.End()
	if _, ok := g.Fire(scene); ok {
		t.Fatalf("fire must be ignored after end")
	}
	if g.Shots() != 0 || sound.plays != 0 {
		t.Fatalf("unexpected side effects after end")
	}
}

func TestHitSubstitutesPositiveWord(t *testing.T) {
	cfg := model.Config{NegativeSeed: []string{"bad"}, PositiveSeed: []string{"good"}}
	g, sound := newGame(t, cfg)
	g.Start()
	id := g.Targets()[0].ID
	if _, ok := g.Fire(aimedScene(g, id)); !ok {
		t.Fatalf("expected hit")
	}
	for _, v := range g.Targets() {
		if v.ID == id {
			if !v.IsHit || v.Word != "good" {
				t.Fatalf("expected hit target labelled good, got %+v", v)
			}
		} else if v.Word != "bad" {
			t.Fatalf("unhit target relabelled: %+v", v)
		}
	}
	if g.Score() != 100 || sound.plays != 1 {
		t.Fatalf("expected 100 and one sound, got %d and %d", g.Score(), sound.plays)
	}
	// Firing again at the same block is a miss.
	if _, ok := g.Fire(aimedScene(g, id)); ok {
		t.Fatalf("expected repeated hit to miss")
	}
	if g.Score() != 100 || g.Shots() != 2 || g.Hits() != 1 {
		t.Fatalf("unexpected counters %d/%d/%d", g.Score(), g.Shots(), g.Hits())
	}
}

func TestDespawnTiming(t *testing.T) {
	g, _ := newGame(t, model.Config{})
	g.Start()
	id := g.Targets()[0].ID
	g.Advance(2500 * time.Millisecond)
	g.Fire(aimedScene(g, id))
	g.Advance(900 * time.Millisecond)
	if !hasTarget(g, id) {
		t.Fatalf("target removed before 1s")
	}
	g.Advance(100 * time.Millisecond)
	if hasTarget(g, id) {
		t.Fatalf("target present after 1s")
	}
}

func TestResetDuringPendingDespawn(t *testing.T) {
	g, _ := newGame(t, model.Config{})
	g.Start()
	id := g.Targets()[0].ID
	g.Fire(aimedScene(g, id))
	g.Reset()
	if hasTarget(g, id) || len(g.Targets()) != 0 {
		t.Fatalf("expected empty board after reset")
	}
	if g.PendingDespawns() != 0 {
		t.Fatalf("expected pending despawn cancelled")
	}
	g.Advance(2 * time.Second)
	if g.Status() != session.Idle || g.Score() != 0 || len(g.Targets()) != 0 {
		t.Fatalf("state changed at the stale deadline")
	}
}

func TestRestartAfterEnd(t *testing.T) {
	g, _ := newGame(t, model.Config{DurationSec: 2})
	g.Start()
	g.Tick()
	if len(g.Targets()) != 6 {
		t.Fatalf("expected tapered board at 1s, got %d", len(g.Targets()))
	}
	g.Tick()
	if g.Status() != session.Ended {
		t.Fatalf("expected ended")
	}
	g.Restart()
	if g.Status() != session.Playing || g.TimeLeft() != 2 || g.Score() != 0 {
		t.Fatalf("unexpected state after restart %s/%d/%d", g.Status(), g.TimeLeft(), g.Score())
	}
	if len(g.Targets()) != 6 {
		t.Fatalf("expected tapered board after restart, got %d", len(g.Targets()))
	}
}

func TestEmptyNegativeListStillSpawns(t *testing.T) {
	g, _ := newGame(t, model.Config{NegativeSeed: []string{"x"}})
	g.Words().Negative.Remove(0)
	g.Start()
	for _, v := range g.Targets() {
		if v.Word == "" || !contains(wordlist.DefaultNegative, v.Word) {
			t.Fatalf("expected fallback label, got %q", v.Word)
		}
	}
}

func TestRoundRecordedOnBoard(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	g := New(model.Config{DurationSec: 1, Background: "school"}, Options{Rand: generator.NewSeeded(1), Board: st})
	g.Start()
	g.Fire(aimedScene(g, g.Targets()[0].ID))
	g.Tick()
	g.End()
	best, rounds, err := st.BestScore(context.Background())
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 100 || rounds != 1 {
		t.Fatalf("expected one round at 100, got %d rounds best %d", rounds, best)
	}
	list, err := st.ListRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Background != "school" {
		t.Fatalf("expected school background, got %q", list[0].Background)
	}
}

func TestMoveOnlyWhilePlaying(t *testing.T) {
	g, _ := newGame(t, model.Config{})
	g.Move(5, 0)
	if g.Camera().Position.Z != 0 {
		t.Fatalf("camera moved while idle")
	}
	g.Start()
	g.Move(5, 0)
	if g.Camera().Position.Z != -5 {
		t.Fatalf("expected camera at z=-5, got %+v", g.Camera().Position)
	}
}

func hasTarget(g *Game, id string) bool {
	for _, v := range g.Targets() {
		if v.ID == id {
			return true
		}
	}
	return false
}

func contains(list []string, w string) bool {
	for _, v := range list {
		if v == w {
			return true
		}
	}
	return false
}
