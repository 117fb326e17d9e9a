package config

import "math"

// SpeedRamp tracks the integer scroll speed of a session.
// Time-based progression accumulates fractional speed and only moves whole
// units into the speed, which never drops below the base.
type SpeedRamp struct {
	cfg   DifficultyConfig
	base  int
	speed int
	accum float64
}

// NewSpeedRamp creates a ramp starting at base speed.
func NewSpeedRamp(cfg DifficultyConfig, base int) *SpeedRamp {
	r := &SpeedRamp{cfg: cfg, base: base}
	r.Reset()
	return r
}

// Reset returns the ramp to its base speed.
func (r *SpeedRamp) Reset() {
	r.speed = r.base
	r.accum = 0
}

// SetEnabled enables or disables time-based progression.
func (r *SpeedRamp) SetEnabled(enabled bool) {
	r.cfg.Enabled = enabled
}

// IsEnabled returns whether time-based progression is active.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.RampPerSec > 0
}

// Advance applies dt seconds of progression and returns the current speed.
func (r *SpeedRamp) Advance(dt float64) int {
	if r.IsEnabled() && dt > 0 && !math.IsInf(dt, 0) && !math.IsNaN(dt) {
		r.accum += r.cfg.RampPerSec * dt
		if whole := math.Floor(r.accum); whole >= 1 {
			r.speed += int(whole)
			r.accum -= whole
		}
	}
	if r.speed < r.base {
		r.speed = r.base
	}
	return r.speed
}

// Bump raises the speed by n whole units.
func (r *SpeedRamp) Bump(n int) {
	if n > 0 {
		r.speed += n
	}
}

// Speed returns the current integer speed.
func (r *SpeedRamp) Speed() int {
	return r.speed
}

// Base returns the speed floor.
func (r *SpeedRamp) Base() int {
	return r.base
}
