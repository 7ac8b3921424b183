package aim

import (
	"math"
	"testing"

	"github.com/verte-zerg/breaker/internal/generator"
	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/schedule"
	"github.com/verte-zerg/breaker/internal/target"
	"github.com/verte-zerg/breaker/internal/wordlist"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCameraBasis(t *testing.T) {
	c := NewCamera()
	f := c.Forward()
	if !near(f.X, 0) || !near(f.Y, 0) || !near(f.Z, -1) {
		t.Fatalf("unexpected forward %+v", f)
	}
	u := c.Up()
	if !near(u.Y, 1) {
		t.Fatalf("unexpected up %+v", u)
	}
	c.Turn(math.Pi/2, 0)
	f = c.Forward()
	if !near(f.X, -1) || !near(f.Z, 0) {
		t.Fatalf("expected to face -X after left turn, got %+v", f)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera()
	c.Turn(0, 10)
	if c.Pitch >= math.Pi/2 {
		t.Fatalf("pitch not clamped: %f", c.Pitch)
	}
	c.Turn(0, -20)
	if c.Pitch <= -math.Pi/2 {
		t.Fatalf("pitch not clamped: %f", c.Pitch)
	}
}

func TestCameraMoveKeepsEyeHeight(t *testing.T) {
	c := NewCamera()
	c.Turn(0, 0.5)
	c.Move(2, 1)
	if !near(c.Position.Y, EyeHeight) {
		t.Fatalf("expected eye height, got %f", c.Position.Y)
	}
	if !near(c.Position.Z, -2) || !near(c.Position.X, 1) {
		t.Fatalf("unexpected position %+v", c.Position)
	}
}

func TestBoxIntersect(t *testing.T) {
	b := Box{Center: model.Vec3{Z: -5}, Half: model.Vec3{X: 1, Y: 1, Z: 1}}
	d, ok := b.Intersect(Ray{Dir: model.Vec3{Z: -1}})
	if !ok || !near(d, 4) {
		t.Fatalf("expected hit at 4, got %f %v", d, ok)
	}
	if _, ok := b.Intersect(Ray{Dir: model.Vec3{Z: 1}}); ok {
		t.Fatalf("box behind the ray must not hit")
	}
	if _, ok := b.Intersect(Ray{Origin: model.Vec3{X: 3}, Dir: model.Vec3{Z: -1}}); ok {
		t.Fatalf("parallel ray outside slab must not hit")
	}
	if d, ok := b.Intersect(Ray{Origin: model.Vec3{Z: -5}, Dir: model.Vec3{Z: -1}}); !ok || d != 0 {
		t.Fatalf("ray from inside must hit at 0, got %f %v", d, ok)
	}
}

func newCoordinator(t *testing.T) *target.Coordinator {
	t.Helper()
	return target.New(generator.NewSeeded(5), wordlist.NewRegistry(nil, nil), schedule.New(), noScore{}, nil, model.DefaultSpawnBounds())
}

type noScore struct{}

func (noScore) AddScore(int) {}

func TestFirePicksNearest(t *testing.T) {
	c := newCoordinator(t)
	far := c.Spawn()
	closer := c.Spawn()
	scene := NewBoxScene([]model.TargetView{
		{ID: far.ID, Position: model.Vec3{Y: EyeHeight, Z: -15}},
		{ID: closer.ID, Position: model.Vec3{Y: EyeHeight, Z: -6}},
	})
	r := NewResolver(c)
	id, ok := r.Fire(NewCamera(), scene)
	if !ok || id != closer.ID {
		t.Fatalf("expected nearest target %s, got %s %v", closer.ID, id, ok)
	}
	if v, _ := c.Get(far.ID); v.IsHit {
		t.Fatalf("only one target may be hit per shot")
	}
	// The hit target still occludes the far one until it despawns.
	scene.Targets[1].IsHit = true
	if _, ok := r.Fire(NewCamera(), scene); ok {
		t.Fatalf("expected miss when nearest target is already hit")
	}
	if v, _ := c.Get(far.ID); v.IsHit {
		t.Fatalf("far target hit through an occluder")
	}
}

func TestFireMissAndBlocker(t *testing.T) {
	c := newCoordinator(t)
	v := c.Spawn()
	scene := NewBoxScene([]model.TargetView{{ID: v.ID, Position: model.Vec3{X: 5, Y: EyeHeight, Z: -8}}})
	r := NewResolver(c)
	if _, ok := r.Fire(NewCamera(), scene); ok {
		t.Fatalf("expected miss for off-axis target")
	}
	scene.Targets[0].Position = model.Vec3{Y: EyeHeight, Z: -8}
	scene.Blockers = []Box{{Center: model.Vec3{Y: EyeHeight, Z: -3}, Half: model.Vec3{X: 5, Y: 5, Z: 0.1}}}
	if _, ok := r.Fire(NewCamera(), scene); ok {
		t.Fatalf("expected wall to block the shot")
	}
	scene.Blockers = nil
	if id, ok := r.Fire(NewCamera(), scene); !ok || id != v.ID {
		t.Fatalf("expected hit after wall removed")
	}
	if _, ok := r.Fire(NewCamera(), scene); ok {
		t.Fatalf("expected repeated fire on the same target to miss")
	}
}

func TestFireUsesOffset(t *testing.T) {
	c := newCoordinator(t)
	v := c.Spawn()
	scene := NewBoxScene([]model.TargetView{{ID: v.ID, Position: model.Vec3{Y: EyeHeight + 3, Z: -8}}})
	scene.Offset = func(model.TargetView) model.Vec3 { return model.Vec3{Y: -3} }
	if _, ok := NewResolver(c).Fire(NewCamera(), scene); !ok {
		t.Fatalf("expected offset geometry to be hit")
	}
}

func TestNearestUnsorted(t *testing.T) {
	got, ok := Nearest([]Intersection{{Distance: 3, ID: "b"}, {Distance: 1, ID: "a"}})
	if !ok || got.ID != "a" {
		t.Fatalf("expected a, got %+v", got)
	}
	if _, ok := Nearest(nil); ok {
		t.Fatalf("expected no nearest for empty input")
	}
}
