package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/hud"
	"github.com/pthm-cable/mycelium/scene"
	"github.com/pthm-cable/mycelium/ui"
)

// Draw renders the scene and the HUD. A HUD button click is applied here
// because raygui reports clicks while drawing.
func (g *Game) Draw() {
	s := g.session.Sim()
	snap := s.Snapshot()
	params := s.Params()

	rl.BeginDrawing()
	rl.ClearBackground(scene.Background)

	rl.BeginMode3D(g.camera3D())
	g.stars.Draw()
	g.structure.Draw(snap.Nodes, snap.Links, g.camera.Position())
	rl.EndMode3D()

	kind, clicked := g.hud.Draw(ui.HUDData{
		Pools:      snap.Resources,
		MaxLevel:   params.Resources.Max,
		Want:       snap.Want,
		WantTimer:  snap.WantTimer,
		WantPeriod: params.WantCycle,
		Status:     hud.StatusFor(snap.Resources, params.Growth),
		Nodes:      len(snap.Nodes),
		Time:       g.time,
		FPS:        rl.GetFPS(),
		Paused:     g.session.Paused(),
		Muted:      g.session.Muted(),
	})

	rl.EndDrawing()

	if clicked {
		g.session.Feed(kind)
	}
}
