// Package camera provides an orbit camera for viewing the structure.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// minPolar keeps the camera off the vertical axis, where the up vector
// would be degenerate.
const minPolar = 0.01

// Camera orbits a fixed target. Panning is not supported.
type Camera struct {
	// Target is the point the camera looks at
	Target r3.Vec

	// Spherical coordinates around the target.
	// Polar is measured from +Y, so 0 looks straight down.
	Azimuth  float64
	Polar    float64
	Distance float64

	// Constraints
	MinDistance, MaxDistance float64
	MaxPolar                 float64
}

// New creates a camera looking at target from the given position.
func New(target, position r3.Vec, minDistance, maxDistance, maxPolar float64) *Camera {
	offset := r3.Sub(position, target)
	dist := r3.Norm(offset)

	c := &Camera{
		Target:      target,
		Distance:    dist,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		MaxPolar:    maxPolar,
	}
	if dist > 0 {
		c.Polar = math.Acos(offset.Y / dist)
		c.Azimuth = math.Atan2(offset.X, offset.Z)
	}
	c.clamp()
	return c
}

// Position returns the camera position in world coordinates.
func (c *Camera) Position() r3.Vec {
	sinP := math.Sin(c.Polar)
	offset := r3.Vec{
		X: c.Distance * sinP * math.Sin(c.Azimuth),
		Y: c.Distance * math.Cos(c.Polar),
		Z: c.Distance * sinP * math.Cos(c.Azimuth),
	}
	return r3.Add(c.Target, offset)
}

// Rotate orbits by the given angle deltas in radians.
func (c *Camera) Rotate(dAzimuth, dPolar float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzimuth, 2*math.Pi)
	c.Polar += dPolar
	c.clamp()
}

// Zoom moves the camera toward (negative) or away from (positive) the target.
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	c.clamp()
}

func (c *Camera) clamp() {
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.Polar = clamp(c.Polar, minPolar, c.MaxPolar)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
