package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/hud"
	"github.com/pthm-cable/mycelium/scene"
	"github.com/pthm-cable/mycelium/sim"
)

const (
	headerRows = 6 // title, three bars, banner, blank
	footerRows = 1
	barWidth   = 30
	minSpan    = 4 // world units
)

// Glyphs
const (
	rootGlyph = '@'
	nodeGlyph = 'o'
	linkGlyph = '.'
	barFull   = '█'
	barEmpty  = '░'
)

// Frame is everything the view needs for one draw.
type Frame struct {
	Snapshot sim.Snapshot
	MaxLevel float64
	Status   hud.Status
	Paused   bool
	Muted    bool
}

// View draws the organism and the resource overlay onto a tcell screen.
type View struct {
	screen tcell.Screen
}

// NewView wraps an initialized screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw renders one frame and shows it.
func (v *View) Draw(f Frame) {
	s := v.screen
	s.Clear()
	w, h := s.Size()

	v.drawHeader(f, w)
	v.drawStructure(f.Snapshot, 0, headerRows, w, h-headerRows-footerRows)
	v.drawFooter(f, h-1)

	s.Show()
}

func (v *View) drawHeader(f Frame, w int) {
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	v.text(0, 0, hud.Title, title)

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if f.Status == hud.StatusGrowing {
		statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	status := string(f.Status)
	v.text(w-len(status), 0, status, statusStyle)

	for i, bar := range hud.Bars(f.Snapshot.Resources, f.MaxLevel) {
		v.drawBar(1+i, bar)
	}

	banner := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	text := hud.Banner(f.Snapshot.Want)
	v.text(max(0, (w-len(text))/2), 4, text, banner)
}

// drawBar renders "LABEL            [████░░░░] 42%".
func (v *View) drawBar(row int, bar hud.Bar) {
	label := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	fill := tcell.StyleDefault.Foreground(rgb(bar.Color))
	empty := tcell.StyleDefault.Foreground(tcell.ColorDimGray)

	x := v.text(0, row, fmt.Sprintf("%-17s", bar.Label), label)
	filled := int(math.Round(bar.Fraction() * barWidth))
	for i := 0; i < barWidth; i++ {
		if i < filled {
			v.screen.SetContent(x+i, row, barFull, nil, fill)
		} else {
			v.screen.SetContent(x+i, row, barEmpty, nil, empty)
		}
	}
	v.text(x+barWidth+1, row, bar.Percent(), label)
}

func (v *View) drawStructure(snap sim.Snapshot, x0, y0, w, h int) {
	if w <= 0 || h <= 0 || len(snap.Nodes) == 0 {
		return
	}

	points := make([]r3.Vec, len(snap.Nodes))
	for i, n := range snap.Nodes {
		points[i] = n.Position
	}
	proj := Fit(points, w, h, minSpan)

	linkStyle := tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	for _, l := range snap.Links {
		c0, r0, _ := proj.Project(l.Source)
		c1, r1, _ := proj.Project(l.Target)
		line(c0, r0, c1, r1, func(c, r int) {
			if c >= 0 && c < w && r >= 0 && r < h {
				v.screen.SetContent(x0+c, y0+r, linkGlyph, nil, linkStyle)
			}
		})
	}

	rootStyle := tcell.StyleDefault.Foreground(rgb(scene.RootColor))
	nodeStyle := tcell.StyleDefault.Foreground(rgb(scene.NodeColor))
	for _, n := range snap.Nodes {
		c, r, ok := proj.Project(n.Position)
		if !ok {
			continue
		}
		if n.HasParent {
			v.screen.SetContent(x0+c, y0+r, nodeGlyph, nil, nodeStyle)
		}
	}
	// Root last so it is never hidden
	for _, n := range snap.Nodes {
		if n.HasParent {
			continue
		}
		if c, r, ok := proj.Project(n.Position); ok {
			v.screen.SetContent(x0+c, y0+r, rootGlyph, nil, rootStyle)
		}
	}
}

func (v *View) drawFooter(f Frame, row int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := fmt.Sprintf("nodes %d | w/n/d feed | space pause | m mute | r reset | q quit", len(f.Snapshot.Nodes))
	if f.Paused {
		text += " | PAUSED"
	}
	if f.Muted {
		text += " | MUTED"
	}
	v.text(0, row, text, style)
}

// text writes s starting at (x, y) and returns the column after it.
func (v *View) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
