// Package terminal is a text frontend for the simulation. It draws a side
// view of the structure and the resource bars with tcell, and maps keys to
// feed actions.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/mycelium/hud"
	"github.com/pthm-cable/mycelium/session"
	"github.com/pthm-cable/mycelium/systems"
)

// Options configures the terminal app.
type Options struct {
	FrameDT  time.Duration // wall time per frame
	MaxTicks int64         // stop after this many frames, 0 = unlimited
	MaxLevel float64       // pool capacity shown as 100%
	Growth   systems.GrowthParams
}

// App runs the simulation against a tcell screen.
type App struct {
	screen  tcell.Screen
	session *session.Session
	view    *View
	opts    Options
}

// NewApp wraps an initialized screen. The caller owns screen.Fini.
func NewApp(screen tcell.Screen, sess *session.Session, opts Options) *App {
	if opts.FrameDT <= 0 {
		opts.FrameDT = time.Second / 60
	}
	return &App{
		screen:  screen,
		session: sess,
		view:    NewView(screen),
		opts:    opts,
	}
}

// Run drives the frame loop until the user quits, MaxTicks is reached or
// ctx is canceled. Key events are funneled into the loop goroutine, which
// is the only caller of the simulator.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(a.opts.FrameDT)
	defer ticker.Stop()

	last := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				return nil
			}
			a.draw()

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.session.Tick(dt)
			a.session.RecordFrame()
			a.draw()

			if a.opts.MaxTicks > 0 && a.session.Sim().Frames() >= a.opts.MaxTicks {
				slog.Info("max ticks reached", "frames", a.session.Sim().Frames())
				return nil
			}
		}
	}
}

// HandleEvent applies one tcell event. Returns true when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// HandleKey applies a key press. Returns true when the app should exit.
func (a *App) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		a.session.TogglePause()
	case 'm', 'M':
		a.session.ToggleMute()
	case 'r', 'R':
		a.session.Reset()
	default:
		if action, ok := hud.ActionForKey(r); ok {
			a.session.Feed(action.Kind)
		}
	}
	return false
}

func (a *App) draw() {
	s := a.session.Sim()
	snap := s.Snapshot()
	a.view.Draw(Frame{
		Snapshot: snap,
		MaxLevel: a.opts.MaxLevel,
		Status:   hud.StatusFor(snap.Resources, a.opts.Growth),
		Paused:   a.session.Paused(),
		Muted:    a.session.Muted(),
	})
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return screen, nil
}
