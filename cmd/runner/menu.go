package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the runner with a world picker menu",
	Long: `Start the runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a world.
Esc or B inside a world returns to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Close a page, or quit from the list
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --difficulty easy --theme mono`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
			continue
		}

		res, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running world: %v\n", err)
			continue
		}
		logger.Info("run finished", "world", game.ID(), "phase", res.State.Phase, "score", res.State.Score)

		if !res.Back {
			break // Quit from inside the world
		}
	}
}
