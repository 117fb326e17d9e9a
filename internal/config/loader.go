package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the decoder for a file by its extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat maps a CLI string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q", s)
	}
}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.{yaml,toml} ->
// ./configs/runner.{yaml,toml} -> embedded default.
// Files are decoded on top of the defaults, so partial files are fine.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatFromPath(customPath))
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "runner.yaml"), filepath.Join(dir, "runner.toml"))
	}
	candidates = append(candidates, filepath.Join("configs", "runner.yaml"), filepath.Join("configs", "runner.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatFromPath(path)); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultRunnerYAML, FormatYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data in the given format on top of DefaultRunnerConfig.
func Decode(data []byte, format Format) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg RunnerConfig, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("config: write yaml: %w", err)
		}
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, errors.New("viewport must be positive"))
	}
	if c.Physics.BaseSpeed < 1 {
		errs = append(errs, errors.New("physics.base_speed must be at least 1"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxJumps < 0 {
		errs = append(errs, errors.New("player.max_jumps must not be negative"))
	}
	for name, w := range map[string]WorldConfig{"earth": c.Earth, "planet": c.Planet} {
		if w.MaxHealth < 1 {
			errs = append(errs, fmt.Errorf("%s.max_health must be at least 1", name))
		}
		for kind, r := range map[string]SpawnRule{
			"obstacle": w.Obstacle, "rolling": w.Rolling, "falling": w.Falling, "patrol": w.Patrol, "coin": w.Coin,
		} {
			if r.Gate < 0 || r.Cap < 0 || r.CooldownMin < 0 || r.CooldownMax < r.CooldownMin {
				errs = append(errs, fmt.Errorf("%s.%s: invalid spawn rule", name, kind))
			}
		}
	}
	return errors.Join(errs...)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs")
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampPerSec = 0.1
		cfg.Earth.MaxHealth++
		cfg.Planet.MaxHealth++
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampPerSec = 0.35
		cfg.Physics.BaseSpeed++
	}
}
