// Package config provides YAML/TOML-based runner configuration loading and
// difficulty management.
package config

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Physics    Physics          `yaml:"physics" toml:"physics" json:"physics"`
	Viewport   Viewport         `yaml:"viewport" toml:"viewport" json:"viewport"`
	Player     Player           `yaml:"player" toml:"player" json:"player"`
	Damage     Damage           `yaml:"damage" toml:"damage" json:"damage"`
	Scoring    Scoring          `yaml:"scoring" toml:"scoring" json:"scoring"`
	Entities   Entities         `yaml:"entities" toml:"entities" json:"entities"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
	Earth      WorldConfig      `yaml:"earth" toml:"earth" json:"earth"`
	Planet     WorldConfig      `yaml:"planet" toml:"planet" json:"planet"`
}

// Physics defines world-wide motion parameters.
type Physics struct {
	GroundY         float64 `yaml:"ground_y" toml:"ground_y" json:"ground_y"`                         // Fixed ground line, not resized
	BaseSpeed       int     `yaml:"base_speed" toml:"base_speed" json:"base_speed"`                   // Scroll speed floor (units per tick)
	OffscreenMargin float64 `yaml:"offscreen_margin" toml:"offscreen_margin" json:"offscreen_margin"` // Buffer before removal
}

// Viewport is the initial visible area in world units.
type Viewport struct {
	Width  int `yaml:"width" toml:"width" json:"width"`
	Height int `yaml:"height" toml:"height" json:"height"`
}

// Player defines the player's body and movement.
type Player struct {
	X            float64 `yaml:"x" toml:"x" json:"x"`
	Width        float64 `yaml:"width" toml:"width" json:"width"`
	Height       float64 `yaml:"height" toml:"height" json:"height"`
	Gravity      float64 `yaml:"gravity" toml:"gravity" json:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse" json:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed" json:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed" json:"move_speed"`
	MaxJumps     int     `yaml:"max_jumps" toml:"max_jumps" json:"max_jumps"`
	HitRadius    float64 `yaml:"hit_radius" toml:"hit_radius" json:"hit_radius"`
}

// Damage defines health and score penalties.
type Damage struct {
	InvincibilitySecs    float64 `yaml:"invincibility_secs" toml:"invincibility_secs" json:"invincibility_secs"`
	PenaltyCooldownSecs  float64 `yaml:"penalty_cooldown_secs" toml:"penalty_cooldown_secs" json:"penalty_cooldown_secs"`
	ScorePenalty         int     `yaml:"score_penalty" toml:"score_penalty" json:"score_penalty"`
	HealthPerMajorImpact int     `yaml:"health_per_major_impact" toml:"health_per_major_impact" json:"health_per_major_impact"`
}

// Scoring defines coin values, the win condition and coin-driven speed-ups.
type Scoring struct {
	CoinValue    int `yaml:"coin_value" toml:"coin_value" json:"coin_value"`
	BonusValue   int `yaml:"bonus_value" toml:"bonus_value" json:"bonus_value"`
	BonusHeal    int `yaml:"bonus_heal" toml:"bonus_heal" json:"bonus_heal"`
	WinScore     int `yaml:"win_score" toml:"win_score" json:"win_score"`
	SpeedUpEvery int `yaml:"speed_up_every" toml:"speed_up_every" json:"speed_up_every"` // First threshold and step
}

// Entities groups per-kind shape and motion parameters.
type Entities struct {
	Obstacle ObstacleShape `yaml:"obstacle" toml:"obstacle" json:"obstacle"`
	Rolling  RollingShape  `yaml:"rolling" toml:"rolling" json:"rolling"`
	Falling  FallingShape  `yaml:"falling" toml:"falling" json:"falling"`
	Patrol   PatrolShape   `yaml:"patrol" toml:"patrol" json:"patrol"`
	Coin     CoinShape     `yaml:"coin" toml:"coin" json:"coin"`
}

// ObstacleShape sizes ground obstacles. Width follows height by Aspect.
type ObstacleShape struct {
	MinHeight int     `yaml:"min_height" toml:"min_height" json:"min_height"`
	MaxHeight int     `yaml:"max_height" toml:"max_height" json:"max_height"`
	MinWidth  int     `yaml:"min_width" toml:"min_width" json:"min_width"`
	Aspect    float64 `yaml:"aspect" toml:"aspect" json:"aspect"`
}

// RollingShape sizes and moves rolling hazards.
type RollingShape struct {
	MinSize    int     `yaml:"min_size" toml:"min_size" json:"min_size"`
	MaxSize    int     `yaml:"max_size" toml:"max_size" json:"max_size"`
	Drift      float64 `yaml:"drift" toml:"drift" json:"drift"` // Extra leftward speed
	MinSpin    float64 `yaml:"min_spin" toml:"min_spin" json:"min_spin"`
	SpinFactor float64 `yaml:"spin_factor" toml:"spin_factor" json:"spin_factor"`
}

// FallingShape sizes and moves falling hazards.
type FallingShape struct {
	MinSize     int     `yaml:"min_size" toml:"min_size" json:"min_size"`
	MaxSize     int     `yaml:"max_size" toml:"max_size" json:"max_size"`
	DriftFactor float64 `yaml:"drift_factor" toml:"drift_factor" json:"drift_factor"` // Fraction of scroll speed at spawn
	MinFall     float64 `yaml:"min_fall" toml:"min_fall" json:"min_fall"`
	FallJitter  float64 `yaml:"fall_jitter" toml:"fall_jitter" json:"fall_jitter"`
	Spin        float64 `yaml:"spin" toml:"spin" json:"spin"`
	StartY      float64 `yaml:"start_y" toml:"start_y" json:"start_y"`
	EdgeInset   int     `yaml:"edge_inset" toml:"edge_inset" json:"edge_inset"`
}

// PatrolShape sizes and moves patrol hazards.
type PatrolShape struct {
	Width       float64 `yaml:"width" toml:"width" json:"width"`
	Height      float64 `yaml:"height" toml:"height" json:"height"`
	Hover       float64 `yaml:"hover" toml:"hover" json:"hover"` // Height of the hull bottom above ground
	Drift       float64 `yaml:"drift" toml:"drift" json:"drift"`
	WobbleStep  float64 `yaml:"wobble_step" toml:"wobble_step" json:"wobble_step"`
	WobbleAmp   float64 `yaml:"wobble_amp" toml:"wobble_amp" json:"wobble_amp"`
	SpawnOffset float64 `yaml:"spawn_offset" toml:"spawn_offset" json:"spawn_offset"`
}

// CoinShape sizes and places coins.
type CoinShape struct {
	Size           float64 `yaml:"size" toml:"size" json:"size"`
	Spin           float64 `yaml:"spin" toml:"spin" json:"spin"`
	PlanetLift     float64 `yaml:"planet_lift" toml:"planet_lift" json:"planet_lift"`
	EarthMinLift   int     `yaml:"earth_min_lift" toml:"earth_min_lift" json:"earth_min_lift"`
	EarthLiftRange int     `yaml:"earth_lift_range" toml:"earth_lift_range" json:"earth_lift_range"`
}

// WorldConfig holds the per-world health and spawn tables.
type WorldConfig struct {
	MaxHealth int       `yaml:"max_health" toml:"max_health" json:"max_health"`
	BonusGate int       `yaml:"bonus_gate" toml:"bonus_gate" json:"bonus_gate"` // 1/N of spawned coins are bonus coins
	Obstacle  SpawnRule `yaml:"obstacle" toml:"obstacle" json:"obstacle"`
	Rolling   SpawnRule `yaml:"rolling" toml:"rolling" json:"rolling"`
	Falling   SpawnRule `yaml:"falling" toml:"falling" json:"falling"`
	Patrol    SpawnRule `yaml:"patrol" toml:"patrol" json:"patrol"`
	Coin      SpawnRule `yaml:"coin" toml:"coin" json:"coin"`
}

// SpawnRule gates spawning of one entity kind.
// A zero Gate disables the kind; a zero Cap means unbounded.
type SpawnRule struct {
	Cap         int `yaml:"cap" toml:"cap" json:"cap"`
	Gate        int `yaml:"gate" toml:"gate" json:"gate"` // 1/Gate chance once the cooldown expires
	CooldownMin int `yaml:"cooldown_min" toml:"cooldown_min" json:"cooldown_min"`
	CooldownMax int `yaml:"cooldown_max" toml:"cooldown_max" json:"cooldown_max"`
	Initial     int `yaml:"initial" toml:"initial" json:"initial"` // Cooldown at session start
}

// Enabled reports whether the rule spawns anything.
func (r SpawnRule) Enabled() bool {
	return r.Gate > 0
}

// DifficultyConfig defines time-based speed progression.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled" json:"enabled"`
	RampPerSec float64 `yaml:"ramp_per_sec" toml:"ramp_per_sec" json:"ramp_per_sec"` // Speed units gained per real second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
