package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <world>",
	Short: "Play a world",
	Long: `Start playing the specified world.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump (twice for a double jump)
  P                - Pause
  R                - Restart (after game over or a win)
  Esc/B            - Leave
  Ctrl+S           - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ramp and one extra heart
  normal - Default tuning
  hard   - Faster start and a steeper ramp
  fixed  - Speed only rises with coins

Examples:
  runner play earth
  runner play planet --difficulty hard
  runner play earth --seed 42 --fps 30
  runner play earth --config ./my-runner.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
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

	logger, closeLog, err := newLogger(true)
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

	res, runErr := tui.Run(game, runtimeConfig(), logger)
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running world: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("run finished", "world", gameID, "phase", res.State.Phase, "score", res.State.Score)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
