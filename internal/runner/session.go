package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Session adapts a World to registry.Game. It owns the intents the input
// side writes and hands them to the world once per tick.
type Session struct {
	kind    WorldKind
	cfg     *config.RunnerConfig // nil loads from configPath on Reset
	world   *World
	intents core.Intents
	runtime core.RuntimeConfig
}

// NewSession creates a session of the given kind. A nil cfg makes Reset
// load the configuration from disk.
func NewSession(kind WorldKind, cfg *config.RunnerConfig) *Session {
	return &Session{kind: kind, cfg: cfg}
}

// ID returns the unique identifier for this world.
func (s *Session) ID() string {
	return string(s.kind)
}

// Title returns the display name for this world.
func (s *Session) Title() string {
	return s.kind.Title()
}

// Reset creates a fresh world. A zero seed picks one from the clock.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg := s.loadConfig()
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var view *core.Size
	if s.world != nil {
		v := s.world.view
		view = &v
	}
	s.world = NewWorld(s.kind, cfg, seed)
	if view != nil {
		s.world.SetViewport(view.W, view.H)
	}
}

func (s *Session) loadConfig() config.RunnerConfig {
	if s.cfg != nil {
		return *s.cfg
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Tick advances the world by dt seconds using the pending intents.
func (s *Session) Tick(dt float64) core.StepResult {
	if s.world == nil {
		s.Reset(s.runtime)
	}
	return core.StepResult{State: s.world.Tick(dt, s.intents.Take())}
}

// Snapshot returns a copy of the world for rendering.
func (s *Session) Snapshot() registry.Frame {
	if s.world == nil {
		s.Reset(s.runtime)
	}
	return s.world.Snapshot()
}

// Intents returns the flags shared with the input side.
func (s *Session) Intents() *core.Intents {
	return &s.intents
}

// World exposes the underlying world to tests and headless tools.
func (s *Session) World() *World {
	return s.world
}

// Register both worlds with the registry
func init() {
	for _, kind := range []WorldKind{Earth, Planet} {
		registry.Register(string(kind), func() registry.Game {
			return NewSession(kind, nil)
		})
	}
}
