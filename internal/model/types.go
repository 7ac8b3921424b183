// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// Config defines resolved game settings.
type Config struct {
	DurationSec  int
	Background   string
	Sound        bool
	Seed         int64
	FOV          float64
	Bounds       SpawnBounds
	HalfExtents  Vec3
	NegativeSeed []string
	PositiveSeed []string
}

// SpawnBounds bounds randomized spawn positions per axis.
type SpawnBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// DefaultSpawnBounds returns the spread used when nothing is configured.
func DefaultSpawnBounds() SpawnBounds {
	return SpawnBounds{
		MinX: -10, MaxX: 10,
		MinY: 1, MaxY: 4,
		MinZ: -20, MaxZ: -5,
	}
}

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// TargetView is a read-only snapshot of an active target.
type TargetView struct {
	ID       string
	Position Vec3
	Word     string
	IsHit    bool
	Phase    float64
}

// RoundResult captures a finished round.
type RoundResult struct {
	StartedAt   time.Time
	EndedAt     time.Time
	Score       int
	Hits        int
	Shots       int
	Background  string
	DurationSec int
}
