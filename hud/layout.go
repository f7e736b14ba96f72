package hud

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places every overlay element for a given screen size.
type Layout struct {
	Panel   Rect
	Title   Rect
	Status  Rect
	Bars    [3]Rect
	Banner  Rect
	Buttons [3]Rect
}

const (
	margin       = 24
	panelWidth   = 360
	padding      = 16
	titleHeight  = 28
	barSpacing   = 40
	barHeight    = 10
	bannerWidth  = 420
	bannerHeight = 40
	buttonSize   = 96
	buttonGap    = 16
	statusWidth  = 140
	statusHeight = 56
)

// ComputeLayout anchors the bars panel top-left, the status box top-right
// and the banner with the buttons bottom-center.
func ComputeLayout(screenW, screenH int) Layout {
	w, h := float64(screenW), float64(screenH)

	var l Layout
	l.Panel = Rect{X: margin, Y: margin, W: panelWidth, H: padding*2 + titleHeight + barSpacing*3}
	l.Title = Rect{X: margin + padding, Y: margin + padding, W: panelWidth - padding*2, H: titleHeight}

	y := l.Title.Y + titleHeight
	for i := range l.Bars {
		// Label sits above the bar
		l.Bars[i] = Rect{X: l.Title.X, Y: y + barSpacing - barHeight - 6, W: l.Title.W, H: barHeight}
		y += barSpacing
	}

	l.Status = Rect{X: w - margin - statusWidth, Y: margin, W: statusWidth, H: statusHeight}

	rowW := float64(buttonSize*3 + buttonGap*2)
	rowX := (w - rowW) / 2
	rowY := h - margin - 8 - buttonSize
	for i := range l.Buttons {
		l.Buttons[i] = Rect{X: rowX + float64(i)*(buttonSize+buttonGap), Y: rowY, W: buttonSize, H: buttonSize}
	}

	l.Banner = Rect{X: (w - bannerWidth) / 2, Y: rowY - 24 - bannerHeight, W: bannerWidth, H: bannerHeight}
	return l
}

// HitButton returns the index of the button under (x, y), or -1.
func (l Layout) HitButton(x, y float64) int {
	for i, b := range l.Buttons {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}
