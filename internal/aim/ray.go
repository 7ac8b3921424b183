package aim

import (
	"math"

	"github.com/verte-zerg/breaker/internal/model"
)

// Ray is a half-line from Origin along unit direction Dir.
type Ray struct {
	Origin model.Vec3
	Dir    model.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) model.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Box is an axis-aligned box given by center and half extents.
type Box struct {
	Center model.Vec3
	Half   model.Vec3
}

// Intersect returns the entry distance of r into b. A ray starting inside the
// box hits at distance 0.
func (b Box) Intersect(r Ray) (float64, bool) {
	lo := b.Center.Sub(b.Half)
	hi := b.Center.Add(b.Half)
	tmin, tmax := 0.0, math.Inf(1)
	axes := [3][4]float64{
		{r.Origin.X, r.Dir.X, lo.X, hi.X},
		{r.Origin.Y, r.Dir.Y, lo.Y, hi.Y},
		{r.Origin.Z, r.Dir.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		origin, dir, lower, upper := a[0], a[1], a[2], a[3]
		if math.Abs(dir) < 1e-12 {
			if origin < lower || origin > upper {
				return 0, false
			}
			continue
		}
		t1 := (lower - origin) / dir
		t2 := (upper - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
