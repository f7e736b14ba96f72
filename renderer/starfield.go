package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/scene"
)

// StarfieldRenderer draws the static backdrop of stars.
type StarfieldRenderer struct {
	points []rl.Vector3
	colors []rl.Color
}

// NewStarfieldRenderer precomputes star positions and colors.
func NewStarfieldRenderer(stars []scene.Star) *StarfieldRenderer {
	s := &StarfieldRenderer{
		points: make([]rl.Vector3, len(stars)),
		colors: make([]rl.Color, len(stars)),
	}
	for i, star := range stars {
		s.points[i] = toVec3(star.Position)
		s.colors[i] = scene.Fade(scene.StarColor, star.Brightness)
	}
	return s
}

// Count returns the number of stars.
func (s *StarfieldRenderer) Count() int {
	return len(s.points)
}

// Draw renders the stars. Must be called between BeginMode3D and EndMode3D.
// Stars ignore fog.
func (s *StarfieldRenderer) Draw() {
	for i := range s.points {
		rl.DrawPoint3D(s.points[i], s.colors[i])
	}
}
