// Package generator draws randomized spawn parameters and target ids.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/breaker/internal/model"
)

// Generator produces randomized spawn data from a single source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Position draws a point with each axis uniform inside its bounds.
func (g *Generator) Position(b model.SpawnBounds) model.Vec3 {
	return model.Vec3{
		X: between(g.rnd, b.MinX, b.MaxX),
		Y: between(g.rnd, b.MinY, b.MaxY),
		Z: between(g.rnd, b.MinZ, b.MaxZ),
	}
}

// Phase draws an animation phase in [0, 2π).
func (g *Generator) Phase() float64 {
	return g.rnd.Float64() * 2 * math.Pi
}

// ID returns a random UUIDv4 drawn from the generator's source.
func (g *Generator) ID() string {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		// math/rand never fails to read; keep ids unique regardless.
		return uuid.NewString()
	}
	return id.String()
}

func between(rnd *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rnd.Float64()*(hi-lo)
}
