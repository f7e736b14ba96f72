package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/hud"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(rect hud.Rect) {
	rr := toRect(rect)
	rl.DrawRectangleRec(rr, r.Theme.PanelBg)
	rl.DrawRectangleLinesEx(rr, 1, r.Theme.PanelBorder)
}

// DrawResourceBar draws a labelled gauge with its percentage right-aligned
// above the bar.
func (r *Renderer) DrawResourceBar(rect hud.Rect, bar hud.Bar) {
	x, y := int32(rect.X), int32(rect.Y)
	w, h := int32(rect.W), int32(rect.H)
	labelY := y - r.Theme.FontSize - 4

	rl.DrawText(bar.Label, x, labelY, r.Theme.FontSize, r.Theme.LabelColor)
	pct := bar.Percent()
	rl.DrawText(pct, x+w-rl.MeasureText(pct, r.Theme.FontSize), labelY, r.Theme.FontSize, r.Theme.ValueColor)

	rl.DrawRectangle(x, y, w, h, r.Theme.BarBg)
	fill := int32(math.Round(float64(w) * bar.Fraction()))
	rl.DrawRectangle(x, y, fill, h, bar.Color)
}

// DrawBanner draws centered text in a bordered box.
func (r *Renderer) DrawBanner(rect hud.Rect, text string, pulse float64) {
	rr := toRect(rect)
	rl.DrawRectangleRounded(rr, 1, 8, r.Theme.BannerBg)
	border := rl.Fade(r.Theme.BannerBorder, float32(0.6+0.4*pulse))
	rl.DrawRectangleRoundedLinesEx(rr, 1, 8, 1, border)

	tw := rl.MeasureText(text, r.Theme.BannerFontSize)
	tx := int32(rect.X + (rect.W-float64(tw))/2)
	ty := int32(rect.Y + (rect.H-float64(r.Theme.BannerFontSize))/2)
	rl.DrawText(text, tx, ty, r.Theme.BannerFontSize, r.Theme.BannerText)
}

func toRect(r hud.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}
