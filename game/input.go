package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/hud"
)

var feedKeys = [len(hud.Actions)]int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.session.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		g.session.ToggleMute()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.session.Reset()
	}
	for i, key := range feedKeys {
		if rl.IsKeyPressed(key) {
			g.session.Feed(hud.Actions[i].Kind)
		}
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = rl.GetScreenWidth()
	g.screenHeight = rl.GetScreenHeight()
	g.hud.Resize(g.screenWidth, g.screenHeight)
}

// handleCameraInput orbits on left-drag and zooms on the wheel.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overButton := g.hud.Layout().HitButton(float64(mouse.X), float64(mouse.Y)) >= 0

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !overButton {
		delta := rl.GetMouseDelta()
		speed := g.cfg.Camera.OrbitSpeed
		g.camera.Rotate(-float64(delta.X)*speed, -float64(delta.Y)*speed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.Zoom(-float64(wheel) * g.cfg.Camera.ZoomSpeed)
	}
}
