package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mycelium/audio"
	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/game"
	"github.com/pthm-cable/mycelium/session"
	"github.com/pthm-cable/mycelium/sim"
	"github.com/pthm-cable/mycelium/telemetry"
	"github.com/pthm-cable/mycelium/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	term := flag.Bool("term", false, "Run the terminal frontend instead of a window")
	mute := flag.Bool("mute", false, "Disable audio cues")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	frameDT := flag.Float64("frame-dt", 0, "Seconds per frame for headless runs (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// The terminal frontend owns stdout, so its logs go to a file or nowhere
	logOut := io.Writer(os.Stdout)
	if *term {
		logOut = io.Discard
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0755); err == nil {
				if f, err := os.Create(filepath.Join(*outputDir, "mycelium.log")); err == nil {
					defer f.Close()
					logOut = f
				}
			}
		}
	}

	// Set up slog (JSON for structured logging)
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Use config values if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}
	dt := cfg.Telemetry.FrameDT
	if *frameDT > 0 {
		dt = *frameDT
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts := session.Options{
		FeedAmount:     cfg.UI.FeedAmount,
		StatsWindowSec: statsWindowSec,
		LogStats:       *logStats,
		Output:         output,
	}

	if !*headless && !*mute && cfg.Audio.Enabled {
		cues := audio.NewCues(audio.ParamsFromConfig(cfg))
		if err := cues.Init(); err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			defer cues.Close()
			opts.Cues = cues
		}
	}

	s := sim.New(sim.ParamsFromConfig(cfg), sim.WithSeed(rngSeed))
	sess := session.New(s, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *headless:
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"stats_window", statsWindowSec,
			"max_ticks", *maxTicks,
			"frame_dt", dt,
		)
		runHeadless(ctx, sess, dt, *maxTicks)

	case *term:
		screen, err := terminal.NewScreen()
		if err != nil {
			slog.Error("failed to open terminal", "error", err)
			os.Exit(1)
		}
		app := terminal.NewApp(screen, sess, terminal.Options{
			FrameDT:  time.Duration(dt * float64(time.Second)),
			MaxTicks: *maxTicks,
			MaxLevel: cfg.Resources.Max,
			Growth:   s.Params().Growth,
		})
		err = app.Run(ctx)
		screen.Fini()
		if err != nil && err != context.Canceled {
			slog.Error("terminal frontend stopped", "error", err)
		}
		sess.Flush()

	default:
		rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Mycelium")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGame(cfg, sess, game.Options{Seed: rngSeed})
		defer g.Unload()

		for !rl.WindowShouldClose() && ctx.Err() == nil {
			g.Update()
			g.Draw()

			if *maxTicks > 0 && g.Frames() >= *maxTicks {
				break
			}
		}
	}
}

// runHeadless advances the session with a fixed delta until maxTicks frames
// have run or ctx is canceled.
func runHeadless(ctx context.Context, sess *session.Session, dt float64, maxTicks int64) {
	defer sess.Flush()
	for ctx.Err() == nil {
		sess.Tick(dt)

		if maxTicks > 0 && sess.Sim().Frames() >= maxTicks {
			slog.Info("max ticks reached", "frames", sess.Sim().Frames())
			return
		}
	}
	slog.Info("interrupted", "frames", sess.Sim().Frames())
}
