package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagDuration  time.Duration
	flagAutopilot bool
	flagRealtime  bool
	flagWidth     int
	flagHeight    int
)

var simCmd = &cobra.Command{
	Use:   "sim <world>",
	Short: "Run a world headless and print a summary",
	Long: `Run a world without a terminal UI and print how the run went.

By default the world is stepped as fast as possible with a fixed dt of
1/fps, so a seeded run is reproducible. With --realtime the world runs on
the real-time loop used by play, for the given wall-clock duration.

The run stops early when the world is lost or won.

Examples:
  runner sim earth --autopilot
  runner sim planet --duration 2m --seed 7 --autopilot
  runner sim earth --realtime --duration 10s --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "Simulated (or wall-clock with --realtime) run length")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot jump over hazards")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on the real-time loop instead of stepping directly")
	simCmd.Flags().IntVar(&flagWidth, "width", 800, "Viewport width in world units")
	simCmd.Flags().IntVar(&flagHeight, "height", 600, "Viewport height in world units")
}

// simSummary is what a headless run reports.
type simSummary struct {
	World   string
	State   core.GameState
	Coins   int
	Ticks   uint64
	Elapsed float64
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available worlds.")
		os.Exit(1)
	}
	if _, err := loadRunnerConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}
	session, ok := game.(*runner.Session)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: world %q cannot run headless\n", gameID)
		os.Exit(1)
	}

	rt := runtimeConfig()
	session.Reset(rt)
	session.Intents().Resize(flagWidth, flagHeight)

	var pilot *runner.Autopilot
	if flagAutopilot {
		pilot = runner.NewAutopilot()
	}

	var summary simSummary
	if flagRealtime {
		summary, err = simRealtime(session, pilot, rt.TickRate, logger)
	} else {
		summary = simStepped(session, pilot, rt.TickRate, logger)
	}
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(summary)
}

// simStepped ticks the session directly with a fixed dt.
func simStepped(s *runner.Session, pilot *runner.Autopilot, fps int, logger *log.Logger) simSummary {
	fps = max(fps, 1)
	dt := 1 / float64(fps)
	total := int(flagDuration.Seconds() * float64(fps))

	logger.Info("sim started", "world", s.ID(), "ticks", total, "autopilot", pilot != nil)
	phase := core.PhaseRunning
	for range total {
		if pilot != nil {
			pilot.Drive(s.World().Snapshot(), s.Intents())
		}
		res := s.Tick(dt)
		if res.State.Phase != phase {
			logger.Info("phase changed", "from", phase, "to", res.State.Phase, "score", res.State.Score)
			phase = res.State.Phase
		}
		if phase.Terminal() {
			break
		}
	}

	return summarize(s.World().Snapshot())
}

// simRealtime runs the session on the real-time loop for the configured
// wall-clock duration, steering from the published frames.
func simRealtime(s *runner.Session, pilot *runner.Autopilot, fps int, logger *log.Logger) (simSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), flagDuration)
	defer cancel()

	l := loop.New(s, loop.WithTickRate(fps), loop.WithLogger(logger))
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var last *runner.Snapshot
	for f := range l.Frames() {
		snap, ok := f.(*runner.Snapshot)
		if !ok {
			continue
		}
		last = snap
		if snap.Phase.Terminal() {
			s.Intents().Press(core.ActionQuit)
			continue
		}
		if pilot != nil {
			pilot.Drive(snap, s.Intents())
		}
	}

	if err := <-done; err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return simSummary{}, fmt.Errorf("sim: %w", err)
	}
	if l.Panics() > 0 {
		logger.Warn("ticks panicked during the run", "count", l.Panics())
	}
	if last == nil {
		return simSummary{World: s.ID()}, nil
	}
	return summarize(last), nil
}

func summarize(snap *runner.Snapshot) simSummary {
	return simSummary{
		World:   snap.World.Title(),
		State:   snap.State(),
		Coins:   snap.Coins,
		Ticks:   snap.Tick,
		Elapsed: snap.Elapsed,
	}
}

func printSummary(s simSummary) {
	fmt.Printf("World:    %s\n", s.World)
	fmt.Printf("Result:   %s\n", s.State.Phase)
	fmt.Printf("Score:    %d\n", s.State.Score)
	fmt.Printf("Coins:    %d\n", s.Coins)
	fmt.Printf("Health:   %d/%d\n", s.State.Health, s.State.MaxHealth)
	fmt.Printf("Speed:    %d\n", s.State.Speed)
	fmt.Printf("Ticks:    %d\n", s.Ticks)
	fmt.Printf("Elapsed:  %.1fs\n", s.Elapsed)
}
