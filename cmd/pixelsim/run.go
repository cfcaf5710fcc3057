package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/engine"
	"github.com/automoto/pixelplat/physics"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/render"
	"github.com/automoto/pixelplat/ui"
	"github.com/spf13/cobra"
)

// Ticks simulated when neither --ticks nor --script is given.
const defaultTicks = 600

var (
	flagTicks     uint64
	flagScript    string
	flagRealtime  bool
	flagUntilGoal bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a level with scripted input",
	Long: `Drives the frame loop against a no-op surface and logs every engine
event. The script is a comma-separated list of KEYS:TICKS segments, where
KEYS combines L (left), R (right) and J (jump), or is _ for none.

Without --realtime ticks run back to back; with it the loop paces itself
at the configured tick rate.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Ticks to simulate (default: script length, or 600)")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Input script, e.g. R:120,RJ:20")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured rate")
	runCmd.Flags().BoolVar(&flagUntilGoal, "until-goal", false, "Stop as soon as the goal is reached")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	script, err := ParseScript(flagScript)
	if err != nil {
		return err
	}
	ticks := flagTicks
	if ticks == 0 {
		ticks = uint64(script.Len())
	}
	if ticks == 0 {
		ticks = defaultTicks
	}

	lvl, err := assets.Open(flagLevel, logger)
	if err != nil {
		return err
	}

	surface := render.NewNopSurface()
	raster := pixelart.NewRasterizer(assets.Palette())
	sessionCfg := engine.DefaultSessionConfig(engine.ActorSprites{
		Standing: assets.PlayerStanding,
		Walking:  assets.PlayerWalking,
		Jumping:  assets.PlayerJumping,
	})
	sessionCfg.Logger = logger
	session := engine.NewSession(lvl, surface, raster, sessionCfg)
	defer session.Close()
	score := ui.NewScoreboard(config.Score.GoalBonus)

	var loop *engine.GameLoop
	opts := []engine.LoopOption{
		engine.WithTickRate(config.Loop.TickRate),
		engine.WithMinSleep(config.Loop.MinSleep),
		engine.WithMaxTicks(ticks),
		engine.WithLogger(logger),
		engine.WithEventHandler(func(tick uint64, ev physics.Events) {
			score.Apply(ev)
			a := session.Actor()
			logger.Debug("events", "tick", tick, "events", ev, "x", a.X, "y", a.Y, "state", a.State)
			if flagUntilGoal && ev.Has(physics.GoalReached) {
				loop.Stop()
			}
		}),
	}
	if !flagRealtime {
		opts = append(opts, engine.WithSleeper(func(time.Duration) {}))
	}
	loop = engine.NewGameLoop(session, script.Source(), opts...)

	release := stopOnSignal(cmd.Context(), loop.Stop)
	start := time.Now()
	err = loop.Run()
	release()
	if err != nil {
		return err
	}

	a := session.Actor()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks      %d (%s)\n", loop.Ticks(), time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "actor      x=%.1f y=%.1f state=%s\n", a.X, a.Y, a.State)
	fmt.Fprintf(out, "scroll     %.1f\n", session.Camera().ScrollX)
	fmt.Fprintf(out, "won        %t\n", session.Won())
	fmt.Fprintf(out, "%s  falls=%d\n", score, score.Falls)
	fmt.Fprintf(out, "surface    handles=%d visible=%d shows=%d hides=%d\n",
		surface.Handles(), surface.Visible(), surface.Shows, surface.Hides)
	fmt.Fprintf(out, "bitmaps    %d cached\n", raster.Len())
	return nil
}

// stopOnSignal calls stop on SIGINT, SIGTERM, or when parent is done. The
// returned release detaches the handler and waits for its goroutine to exit.
func stopOnSignal(parent context.Context, stop func()) (release func()) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	released := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			stop()
		case <-released:
		}
	}()
	return func() {
		close(released)
		<-exited
		cancel()
	}
}
