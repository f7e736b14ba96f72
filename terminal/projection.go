package terminal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/scene"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Projector maps world X/Y onto a character grid as a side view.
// Depth (Z) is dropped.
type Projector struct {
	originX, originY float64 // world point at the viewport center
	scale            float64 // columns per world unit
	cols, rows       int
}

// Fit returns a projector that shows every point inside a cols x rows
// viewport. The view is centered on the points' bounds and keeps at least
// minSpan world units visible so a young structure is not blown up.
func Fit(points []r3.Vec, cols, rows int, minSpan float64) Projector {
	box := scene.Bounds(points)
	spanX := math.Max(box.Max.X-box.Min.X, minSpan)
	spanY := math.Max(box.Max.Y-box.Min.Y, minSpan)

	p := Projector{
		originX: (box.Min.X + box.Max.X) / 2,
		originY: (box.Min.Y + box.Max.Y) / 2,
		cols:    cols,
		rows:    rows,
	}
	if cols <= 1 || rows <= 1 {
		return p
	}
	sx := float64(cols-1) / spanX
	sy := float64(rows-1) * cellAspect / spanY
	p.scale = math.Min(sx, sy)
	return p
}

// Project returns the cell for a world point. The second result is false
// when the cell falls outside the viewport.
func (p Projector) Project(v r3.Vec) (col, row int, ok bool) {
	cx := float64(p.cols-1) / 2
	cy := float64(p.rows-1) / 2
	col = int(math.Round(cx + (v.X-p.originX)*p.scale))
	row = int(math.Round(cy - (v.Y-p.originY)*p.scale/cellAspect))
	ok = col >= 0 && col < p.cols && row >= 0 && row < p.rows
	return col, row, ok
}

// line walks the cells between two points inclusive (Bresenham).
func line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
