// runner is a side-scrolling runner that plays in the terminal.
//
// Usage:
//
//	runner list                  - List available worlds
//	runner play <world>          - Play a world
//	runner menu                  - Pick worlds from an interactive menu
//	runner sim <world>           - Run a world headless and print a summary
//	runner config schema         - Print the JSON Schema of config files
//	runner config defaults       - Print the built-in configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom runner config (YAML or TOML)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Where logs go while the TUI is active
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump and dodge through two worlds in your terminal",
	Long: `Runner is a terminal side-scroller with two worlds.

Earth: jump over blocks, take rolling boulders on the chin, collect coins.
Planet: dodge falling meteors and hovering UFOs between the stars.

Available commands:
  list     - Show all available worlds
  play     - Play a specific world directly
  menu     - Interactive world picker
  sim      - Headless run with an optional autopilot
  config   - Inspect configuration defaults and schema

Examples:
  runner list
  runner play earth
  runner play planet --difficulty hard
  runner menu --fps 30
  runner sim earth --duration 1m --autopilot`,
	PersistentPreRun: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI is active")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags hands the shared flags to the packages that read them.
func applyGlobalFlags(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	if !tui.SetThemeByName(flagTheme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", flagTheme)
		os.Exit(1)
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
}

// loadRunnerConfig loads the configuration the worlds will use, so errors
// surface before a terminal UI takes over the screen.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}
