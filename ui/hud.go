package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/hud"
	"github.com/pthm-cable/mycelium/systems"
)

// HUDData holds all the data needed to render the overlay.
type HUDData struct {
	Pools      systems.ResourcePools
	MaxLevel   float64
	Want       systems.Want
	WantTimer  float64
	WantPeriod float64
	Status     hud.Status
	Nodes      int
	Time       float64 // seconds, drives the banner pulse
	FPS        int32
	Paused     bool
	Muted      bool
}

// HUD renders the resource overlay and its feed buttons.
type HUD struct {
	renderer *Renderer
	layout   hud.Layout
	screenW  int
	screenH  int
}

// NewHUD creates a HUD laid out for the given screen size.
func NewHUD(screenW, screenH int) *HUD {
	h := &HUD{renderer: NewRenderer()}
	h.Resize(screenW, screenH)
	return h
}

// Resize recomputes the layout when the window size changes.
func (h *HUD) Resize(screenW, screenH int) {
	if screenW == h.screenW && screenH == h.screenH {
		return
	}
	h.screenW, h.screenH = screenW, screenH
	h.layout = hud.ComputeLayout(screenW, screenH)
}

// Layout returns the current element placement.
func (h *HUD) Layout() hud.Layout {
	return h.layout
}

// Draw renders the overlay and returns the resource whose button was
// clicked this frame, if any.
func (h *HUD) Draw(data HUDData) (systems.ResourceKind, bool) {
	r := h.renderer
	l := h.layout

	// Resource panel
	r.DrawPanel(l.Panel)
	rl.DrawText(hud.Title, int32(l.Title.X), int32(l.Title.Y), r.Theme.TitleFontSize, r.Theme.TitleColor)
	for i, bar := range hud.Bars(data.Pools, data.MaxLevel) {
		r.DrawResourceBar(l.Bars[i], bar)
	}

	// Organism state
	r.DrawPanel(l.Status)
	rl.DrawText("ORGANISM_STATE", int32(l.Status.X)+10, int32(l.Status.Y)+8, 10, r.Theme.LabelColor)
	statusColor := r.Theme.StatusIdle
	if data.Status == hud.StatusGrowing {
		statusColor = r.Theme.StatusOK
	}
	rl.DrawCircle(int32(l.Status.X)+16, int32(l.Status.Y)+36, 5, statusColor)
	rl.DrawText(string(data.Status), int32(l.Status.X)+28, int32(l.Status.Y)+28, 16, statusColor)

	// Want banner with time until the next resample
	pulse := 0.5 + 0.5*math.Sin(data.Time*math.Pi)
	r.DrawBanner(l.Banner, hud.Banner(data.Want), pulse)
	timerBounds := rl.Rectangle{
		X:      float32(l.Banner.X + 40),
		Y:      float32(l.Banner.Y + l.Banner.H + 6),
		Width:  float32(l.Banner.W - 80),
		Height: 6,
	}
	gui.ProgressBar(timerBounds, "", "", float32(data.WantTimer), 0, float32(data.WantPeriod))

	// Feed buttons
	kind, clicked := systems.ResourceKind(0), false
	for i, a := range hud.Actions {
		b := l.Buttons[i]
		if gui.Button(toRect(b), a.Label) {
			kind, clicked = a.Kind, true
		}
		sw := rl.MeasureText(a.Sub, 10)
		rl.DrawText(a.Sub, int32(b.X+(b.W-float64(sw))/2), int32(b.Y+b.H)+4, 10, r.Theme.HintColor)
	}

	// Footer
	status := fmt.Sprintf("Nodes: %d | FPS: %d", data.Nodes, data.FPS)
	if data.Paused {
		status += " | PAUSED"
	}
	if data.Muted {
		status += " | MUTED"
	}
	rl.DrawText(status, 10, int32(h.screenH)-44, 14, r.Theme.HintColor)
	rl.DrawText("Drag: orbit | Wheel: zoom | 1/2/3: feed | Space: pause | R: reset | M: mute",
		10, int32(h.screenH)-24, 14, r.Theme.HintColor)

	return kind, clicked
}
