package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/scene"
	"github.com/pthm-cable/mycelium/systems"
)

// StructureRenderer draws nodes as spheres and links as lines, with linear
// distance fog toward the background.
type StructureRenderer struct {
	nodeRadius float32
	fogNear    float64
	fogFar     float64

	gridSlices    int32
	gridSpacing   float32
	gridElevation float32
}

// NewStructureRenderer creates a structure renderer.
func NewStructureRenderer(nodeRadius, fogNear, fogFar float64, gridSlices int, gridSpacing, gridElevation float64) *StructureRenderer {
	return &StructureRenderer{
		nodeRadius:    float32(nodeRadius),
		fogNear:       fogNear,
		fogFar:        fogFar,
		gridSlices:    int32(gridSlices),
		gridSpacing:   float32(gridSpacing),
		gridElevation: float32(gridElevation),
	}
}

// Draw renders the graph. Must be called between BeginMode3D and EndMode3D.
func (s *StructureRenderer) Draw(nodes []systems.GrowthNode, links []systems.Link, eye r3.Vec) {
	// Ground grid, shifted down below the root
	rl.PushMatrix()
	rl.Translatef(0, s.gridElevation, 0)
	rl.DrawGrid(s.gridSlices, s.gridSpacing)
	rl.PopMatrix()

	for _, l := range links {
		mid := r3.Scale(0.5, r3.Add(l.Source, l.Target))
		c := s.fogged(scene.LinkColor, mid, eye)
		rl.DrawLine3D(toVec3(l.Source), toVec3(l.Target), c)
	}

	for _, n := range nodes {
		c := s.fogged(scene.NodeColorFor(n.HasParent), n.Position, eye)
		rl.DrawSphereEx(toVec3(n.Position), s.nodeRadius, 8, 8, c)
	}
}

func (s *StructureRenderer) fogged(c color.RGBA, p, eye r3.Vec) color.RGBA {
	f := scene.FogFactor(r3.Norm(r3.Sub(p, eye)), s.fogNear, s.fogFar)
	return scene.Fade(c, f)
}

func toVec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
