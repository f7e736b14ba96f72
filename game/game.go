// Package game is the raylib frontend for the mycelium simulation.
package game

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/camera"
	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/renderer"
	"github.com/pthm-cable/mycelium/scene"
	"github.com/pthm-cable/mycelium/session"
	"github.com/pthm-cable/mycelium/ui"
)

// Options configures a Game.
type Options struct {
	Seed int64 // seeds the starfield
}

// Game is the raylib frontend: it owns the camera, renderers and HUD and
// drives a session once per frame.
type Game struct {
	cfg     *config.Config
	session *session.Session

	camera    *camera.Camera
	structure *renderer.StructureRenderer
	stars     *renderer.StarfieldRenderer
	hud       *ui.HUD

	screenWidth  int
	screenHeight int
	time         float64
}

// NewGame creates the frontend. Must be called after rl.InitWindow.
func NewGame(cfg *config.Config, sess *session.Session, opts Options) *Game {
	g := &Game{
		cfg:          cfg,
		session:      sess,
		screenWidth:  cfg.Screen.Width,
		screenHeight: cfg.Screen.Height,
	}

	// Start on the (1, 1, 1) diagonal
	d := cfg.Camera.Distance / math.Sqrt(3)
	g.camera = camera.New(r3.Vec{}, r3.Vec{X: d, Y: d, Z: d},
		cfg.Camera.MinDistance, cfg.Camera.MaxDistance, cfg.Camera.MaxPolar)

	g.structure = renderer.NewStructureRenderer(
		cfg.Scene.NodeRadius,
		cfg.Scene.FogNear, cfg.Scene.FogFar,
		cfg.Scene.GridSlices, cfg.Scene.GridSpacing, cfg.Scene.GridElevation,
	)

	rng := rand.New(rand.NewSource(opts.Seed))
	g.stars = renderer.NewStarfieldRenderer(
		scene.GenerateStars(rng, cfg.Scene.StarCount, cfg.Scene.StarRadius, cfg.Scene.StarDepth),
	)

	g.hud = ui.NewHUD(g.screenWidth, g.screenHeight)
	return g
}

// Update handles input and advances the simulation by the frame time.
func (g *Game) Update() {
	g.handleInput()
	g.session.RecordFrame()

	dt := float64(rl.GetFrameTime())
	g.session.Tick(dt)
	g.time += dt
}

// Frames returns the number of simulated frames since the last reset.
func (g *Game) Frames() int64 {
	return g.session.Sim().Frames()
}

// Unload frees resources.
func (g *Game) Unload() {
	g.session.Flush()
}

func (g *Game) camera3D() rl.Camera3D {
	return rl.NewCamera3D(
		toVec3(g.camera.Position()),
		toVec3(g.camera.Target),
		rl.NewVector3(0, 1, 0),
		float32(g.cfg.Camera.Fovy),
		rl.CameraPerspective,
	)
}

func toVec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
