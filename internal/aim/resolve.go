package aim

// Committer applies a hit to the target set. Commit must reject ids that are
// unknown or already hit.
type Committer interface {
	Commit(id string) bool
}

// Resolver turns fire events into hit commits.
type Resolver struct {
	targets Committer
}

// NewResolver returns a resolver committing into targets.
func NewResolver(targets Committer) *Resolver {
	return &Resolver{targets: targets}
}

// Fire casts the crosshair ray and commits the nearest intersection when it is
// an unhit target. Anything else in front, including an already-hit target,
// makes the shot a miss.
func (r *Resolver) Fire(cam Camera, scene Scene) (string, bool) {
	nearest, ok := Nearest(scene.Intersect(cam.Ray()))
	if !ok || !nearest.IsTarget || nearest.ID == "" {
		return "", false
	}
	if !r.targets.Commit(nearest.ID) {
		return "", false
	}
	return nearest.ID, true
}

// Nearest picks the closest intersection regardless of input order.
func Nearest(hits []Intersection) (Intersection, bool) {
	if len(hits) == 0 {
		return Intersection{}, false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < best.Distance {
			best = h
		}
	}
	return best, true
}
