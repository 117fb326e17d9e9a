package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			GroundY:         450,
			BaseSpeed:       4,
			OffscreenMargin: 80,
		},
		Viewport: Viewport{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			X:            100,
			Width:        50,
			Height:       50,
			Gravity:      1,
			JumpImpulse:  -16,
			MaxFallSpeed: 18,
			MoveSpeed:    6,
			MaxJumps:     2,
			HitRadius:    25,
		},
		Damage: Damage{
			InvincibilitySecs:    1.0,
			PenaltyCooldownSecs:  0.6,
			ScorePenalty:         50,
			HealthPerMajorImpact: 1,
		},
		Scoring: Scoring{
			CoinValue:    10,
			BonusValue:   30,
			BonusHeal:    1,
			WinScore:     100,
			SpeedUpEvery: 10,
		},
		Entities: Entities{
			Obstacle: ObstacleShape{MinHeight: 50, MaxHeight: 90, MinWidth: 20, Aspect: 0.5},
			Rolling:  RollingShape{MinSize: 32, MaxSize: 56, Drift: 1.5, MinSpin: 2, SpinFactor: 2.2},
			Falling: FallingShape{
				MinSize:     28,
				MaxSize:     56,
				DriftFactor: 0.3,
				MinFall:     3,
				FallJitter:  2,
				Spin:        3,
				StartY:      -60,
				EdgeInset:   40,
			},
			Patrol: PatrolShape{
				Width:       90,
				Height:      50,
				Drift:       1,
				WobbleStep:  0.12,
				WobbleAmp:   6,
				SpawnOffset: 20,
			},
			Coin: CoinShape{Size: 26, Spin: 3.6, PlanetLift: 8, EarthMinLift: 60, EarthLiftRange: 120},
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			RampPerSec: 0.2,
		},
		Earth: WorldConfig{
			MaxHealth: 3,
			BonusGate: 10,
			Obstacle:  SpawnRule{Cap: 6, Gate: 9, CooldownMin: 45, CooldownMax: 90, Initial: 30},
			Rolling:   SpawnRule{Cap: 4, Gate: 7, CooldownMin: 60, CooldownMax: 120, Initial: 40},
			Coin:      SpawnRule{Cap: 10, Gate: 5, CooldownMin: 25, CooldownMax: 60, Initial: 20},
		},
		Planet: WorldConfig{
			MaxHealth: 4,
			BonusGate: 10,
			Falling:   SpawnRule{Cap: 0, Gate: 8, CooldownMin: 35, CooldownMax: 60, Initial: 30},
			Patrol:    SpawnRule{Cap: 3, Gate: 6, CooldownMin: 70, CooldownMax: 120, Initial: 50},
			Coin:      SpawnRule{Cap: 10, Gate: 5, CooldownMin: 25, CooldownMax: 60, Initial: 20},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
