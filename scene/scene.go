// Package scene holds the pure geometry and palette used to draw the
// structure. It has no graphics dependency so every frontend can share it.
package scene

import (
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Palette
var (
	Background = color.RGBA{R: 5, G: 5, B: 5, A: 255}
	RootColor  = color.RGBA{R: 250, G: 204, B: 21, A: 255} // yellow-400
	NodeColor  = color.RGBA{R: 74, G: 222, B: 128, A: 255} // green-400
	LinkColor  = color.RGBA{R: 255, G: 255, B: 255, A: 77} // white at 0.3
	GridColor  = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	StarColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}

	WaterColor     = color.RGBA{R: 6, G: 182, B: 212, A: 255}  // cyan-500
	NutrientsColor = color.RGBA{R: 34, G: 197, B: 94, A: 255}  // green-500
	DarknessColor  = color.RGBA{R: 168, G: 85, B: 247, A: 255} // purple-500
	WantColor      = color.RGBA{R: 234, G: 179, B: 8, A: 255}  // yellow-500
)

// Star is a point in the backdrop shell.
type Star struct {
	Position   r3.Vec
	Brightness float64 // 0..1
}

// GenerateStars scatters count stars uniformly over directions, at a distance
// in [radius, radius+depth] from the origin.
func GenerateStars(rng *rand.Rand, count int, radius, depth float64) []Star {
	stars := make([]Star, count)
	for i := range stars {
		// Uniform direction via normalized Gaussian
		dir := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		n := r3.Norm(dir)
		if n == 0 {
			dir, n = r3.Vec{Y: 1}, 1
		}
		dist := radius + rng.Float64()*depth
		stars[i] = Star{
			Position:   r3.Scale(dist/n, dir),
			Brightness: 0.3 + 0.7*rng.Float64(),
		}
	}
	return stars
}

// FogFactor returns how visible a point at distance d is under linear fog:
// 1 closer than near, 0 beyond far.
func FogFactor(d, near, far float64) float64 {
	if far <= near {
		return 1
	}
	f := (far - d) / (far - near)
	return math.Max(0, math.Min(1, f))
}

// Fade scales a color's alpha by f in [0, 1].
func Fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}

// NodeColorFor picks the root or branch color.
func NodeColorFor(hasParent bool) color.RGBA {
	if hasParent {
		return NodeColor
	}
	return RootColor
}

// Bounds returns the axis-aligned box enclosing the given points.
// An empty input yields a zero box.
func Bounds(points []r3.Vec) r3.Box {
	if len(points) == 0 {
		return r3.Box{}
	}
	box := r3.Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = r3.Vec{X: math.Min(box.Min.X, p.X), Y: math.Min(box.Min.Y, p.Y), Z: math.Min(box.Min.Z, p.Z)}
		box.Max = r3.Vec{X: math.Max(box.Max.X, p.X), Y: math.Max(box.Max.Y, p.Y), Z: math.Max(box.Max.Z, p.Z)}
	}
	return box
}
