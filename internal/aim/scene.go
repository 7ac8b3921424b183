package aim

import (
	"sort"

	"github.com/verte-zerg/breaker/internal/model"
)

// Intersection is one ray hit reported by a Scene. Non-target geometry such as
// walls reports IsTarget false and occludes whatever lies behind it.
type Intersection struct {
	Distance float64
	IsTarget bool
	ID       string
}

// Scene casts rays against whatever the presentation currently renders.
type Scene interface {
	Intersect(r Ray) []Intersection
}

// DefaultHalfExtents is the hitbox of a word block.
var DefaultHalfExtents = model.Vec3{X: 1.2, Y: 0.6, Z: 0.6}

// BoxScene treats each target as an axis-aligned block, optionally displaced
// by a cosmetic offset, plus any static blockers.
type BoxScene struct {
	Targets  []model.TargetView
	Half     model.Vec3
	Offset   func(model.TargetView) model.Vec3
	Blockers []Box
}

// NewBoxScene builds a scene over the given targets with the default hitbox.
func NewBoxScene(targets []model.TargetView) *BoxScene {
	return &BoxScene{Targets: targets, Half: DefaultHalfExtents}
}

// Intersect implements Scene. Results are sorted nearest first.
func (s *BoxScene) Intersect(r Ray) []Intersection {
	var out []Intersection
	for _, t := range s.Targets {
		center := t.Position
		if s.Offset != nil {
			center = center.Add(s.Offset(t))
		}
		if d, ok := (Box{Center: center, Half: s.Half}).Intersect(r); ok {
			out = append(out, Intersection{Distance: d, IsTarget: true, ID: t.ID})
		}
	}
	for _, b := range s.Blockers {
		if d, ok := b.Intersect(r); ok {
			out = append(out, Intersection{Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}
