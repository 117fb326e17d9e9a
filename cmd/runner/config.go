package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	flagSchemaOut    string
	flagConfigFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect runner configuration",
	Long: `Print the configuration the runner uses, its built-in defaults, or a
JSON Schema for editor completion of config files.

Config files are looked up in this order:
  --config <path>
  ~/.runner/configs/runner.yaml (or .toml)
  ./configs/runner.yaml (or .toml)
  built-in defaults

Examples:
  runner config defaults > runner.yaml
  runner config defaults --format toml > runner.toml
  runner config show --difficulty hard
  runner config schema --out runner.schema.json`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of runner config files",
	Args:  cobra.NoArgs,
	Run:   runConfigSchema,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigDefaults,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration after --config and --difficulty",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

func init() {
	configSchemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write the schema to a file instead of stdout")
	configDefaultsCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml, toml")
	configShowCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml, toml")

	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigSchema(_ *cobra.Command, _ []string) {
	data, err := config.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if flagSchemaOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagSchemaOut, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Schema written to %s\n", flagSchemaOut)
}

func runConfigDefaults(_ *cobra.Command, _ []string) {
	printConfig(config.DefaultRunnerConfig())
}

func runConfigShow(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printConfig(cfg)
}

func printConfig(cfg config.RunnerConfig) {
	format, err := config.ParseFormat(flagConfigFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
