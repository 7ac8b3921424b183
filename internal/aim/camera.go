// Package aim resolves a fire input into at most one target hit by casting a
// ray from the camera through the center crosshair.
package aim

import (
	"math"

	"github.com/verte-zerg/breaker/internal/model"
)

// EyeHeight is the fixed camera height above the floor.
const EyeHeight = 1.6

const maxPitch = math.Pi/2 - 0.01

// Camera is a first-person viewpoint. Yaw 0 looks down -Z; positive yaw turns left.
type Camera struct {
	Position model.Vec3
	Yaw      float64
	Pitch    float64
}

// NewCamera returns a camera at the origin at eye height.
func NewCamera() Camera {
	return Camera{Position: model.Vec3{Y: EyeHeight}}
}

// Forward returns the unit view direction.
func (c Camera) Forward() model.Vec3 {
	cp := math.Cos(c.Pitch)
	return model.Vec3{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Right returns the unit direction to the camera's right on the floor plane.
func (c Camera) Right() model.Vec3 {
	return model.Vec3{X: math.Cos(c.Yaw), Z: -math.Sin(c.Yaw)}
}

// Up returns the camera's up direction.
func (c Camera) Up() model.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Ray returns the crosshair ray: zero screen-space offset from the view center.
func (c Camera) Ray() Ray {
	return Ray{Origin: c.Position, Dir: c.Forward()}
}

// Turn rotates the camera. Pitch is clamped short of straight up and down.
func (c *Camera) Turn(dYaw, dPitch float64) {
	c.Yaw = math.Remainder(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
}

// Move walks on the floor plane relative to the current heading.
func (c *Camera) Move(forward, strafe float64) {
	heading := model.Vec3{X: -math.Sin(c.Yaw), Z: -math.Cos(c.Yaw)}
	step := heading.Scale(forward).Add(c.Right().Scale(strafe))
	c.Position = c.Position.Add(step)
	c.Position.Y = EyeHeight
}
