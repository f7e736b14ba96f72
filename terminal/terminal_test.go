package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/session"
	"github.com/pthm-cable/mycelium/sim"
	"github.com/pthm-cable/mycelium/systems"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newApp(t *testing.T, screen tcell.Screen, opts Options) *App {
	t.Helper()
	params := sim.DefaultParams()
	s := sim.New(params, sim.WithSeed(3))
	sess := session.New(s, session.Options{FeedAmount: 20, StatsWindowSec: 10})
	if opts.MaxLevel == 0 {
		opts.MaxLevel = params.Resources.Max
	}
	opts.Growth = params.Growth
	return NewApp(screen, sess, opts)
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// ---------- projection ----------

func TestFit_KeepsPointsVisible(t *testing.T) {
	points := []r3.Vec{{X: -3, Y: 0}, {X: 4, Y: 9}, {X: 0.5, Y: 2, Z: 7}}
	p := Fit(points, 60, 20, 4)

	for _, pt := range points {
		if _, _, ok := p.Project(pt); !ok {
			t.Errorf("point %v projected outside viewport", pt)
		}
	}
}

func TestProject_YUpIsRowDown(t *testing.T) {
	p := Fit([]r3.Vec{{}, {Y: 4}}, 40, 20, 4)
	_, lowRow, _ := p.Project(r3.Vec{})
	_, highRow, _ := p.Project(r3.Vec{Y: 4})
	if highRow >= lowRow {
		t.Errorf("higher point row %d should be above %d", highRow, lowRow)
	}
}

func TestFit_SinglePointCentered(t *testing.T) {
	p := Fit([]r3.Vec{{X: 1, Y: 1}}, 41, 21, 4)
	col, row, ok := p.Project(r3.Vec{X: 1, Y: 1})
	if !ok || col != 20 || row != 10 {
		t.Errorf("Project = (%d, %d, %v), want (20, 10, true)", col, row, ok)
	}
}

func TestLine_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 2, 7, 2, 3, 5},
		{"diagonal", 0, 0, 3, 3, 4},
		{"point", 1, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited [][2]int
			line(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) {
				visited = append(visited, [2]int{x, y})
			})
			if len(visited) != tt.cells {
				t.Errorf("visited %d cells, want %d", len(visited), tt.cells)
			}
			if visited[0] != [2]int{tt.x0, tt.y0} || visited[len(visited)-1] != [2]int{tt.x1, tt.y1} {
				t.Errorf("endpoints %v .. %v", visited[0], visited[len(visited)-1])
			}
		})
	}
}

// ---------- view ----------

func TestView_DrawsOverlay(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{})
	app.draw()

	if got := rowText(screen, 0); !strings.HasPrefix(got, "MYCELIAL_SYMBIONT_V1") || !strings.Contains(got, "GROWING") {
		t.Errorf("title row = %q", got)
	}

	wantLabels := []string{"WATER_LEVEL", "NUTRIENT_DENSITY", "AMBIENT_DARKNESS"}
	for i, label := range wantLabels {
		row := rowText(screen, 1+i)
		if !strings.HasPrefix(row, label) {
			t.Errorf("row %d = %q, want prefix %q", 1+i, row, label)
		}
		if !strings.Contains(row, "50%") {
			t.Errorf("row %d = %q, want 50%%", 1+i, row)
		}
		if n := strings.Count(row, string(barFull)); n != barWidth/2 {
			t.Errorf("row %d has %d filled cells, want %d", 1+i, n, barWidth/2)
		}
	}

	if got := rowText(screen, 4); !strings.Contains(got, "ORGANISM REQUIRES: WATER") {
		t.Errorf("banner row = %q", got)
	}
}

func TestView_DrawsStructure(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{})
	app.draw()

	var roots, nodes int
	for y := headerRows; y < 23; y++ {
		row := rowText(screen, y)
		roots += strings.Count(row, string(rootGlyph))
		nodes += strings.Count(row, string(nodeGlyph))
	}
	if roots != 1 {
		t.Errorf("found %d roots, want 1", roots)
	}
	// Branches may overlap each other or the root in the side view
	if nodes > 3 {
		t.Errorf("found %d branch nodes, want at most 3", nodes)
	}
}

// ---------- input ----------

func TestHandleKey(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{})
	s := app.session.Sim()

	if app.HandleKey(tcell.KeyRune, 'w') {
		t.Fatal("feed key should not quit")
	}
	if got := s.Resources().Water; got != 70 {
		t.Errorf("water = %v, want 70", got)
	}
	app.HandleKey(tcell.KeyRune, 'D')
	if got := s.Resources().Get(systems.ResourceDarkness); got != 70 {
		t.Errorf("darkness = %v, want 70", got)
	}

	app.HandleKey(tcell.KeyRune, ' ')
	if !app.session.Paused() {
		t.Error("space should pause")
	}
	app.HandleKey(tcell.KeyRune, 'm')
	if !app.session.Muted() {
		t.Error("m should mute")
	}

	quits := []struct {
		key tcell.Key
		r   rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	}
	for _, q := range quits {
		if !app.HandleKey(q.key, q.r) {
			t.Errorf("key %v %q should quit", q.key, q.r)
		}
	}
}

func TestHandleKey_Reset(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{})
	s := app.session.Sim()

	app.HandleKey(tcell.KeyRune, 'n')
	s.GrowNode(s.RootID())
	app.HandleKey(tcell.KeyRune, 'r')

	if s.NodeCount() != 4 {
		t.Errorf("nodes = %d, want 4", s.NodeCount())
	}
	if got := s.Resources().Nutrients; got != 50 {
		t.Errorf("nutrients = %v, want 50", got)
	}
}

func TestRun_StopsAtMaxTicks(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{FrameDT: time.Millisecond, MaxTicks: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f := app.session.Sim().Frames(); f != 5 {
		t.Errorf("frames = %d, want 5", f)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	screen := newScreen(t, 80, 24)
	app := newApp(t, screen, Options{FrameDT: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
