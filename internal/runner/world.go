// Package runner implements the side-scrolling runner simulation: entities,
// spawning, collisions and the session state machine for the Earth and
// Planet worlds. It has no knowledge of terminals or timing.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// WorldKind selects the hazard set of a session. It never changes during
// the session's lifetime.
type WorldKind string

const (
	Earth  WorldKind = "earth"
	Planet WorldKind = "planet"
)

// Title returns the display name of the world.
func (k WorldKind) Title() string {
	switch k {
	case Earth:
		return "Earth Run"
	case Planet:
		return "Planet Run"
	default:
		return string(k)
	}
}

// Rules returns the world's section of cfg.
func (k WorldKind) Rules(cfg config.RunnerConfig) config.WorldConfig {
	if k == Planet {
		return cfg.Planet
	}
	return cfg.Earth
}

// World owns every entity and session scalar. It is only touched by the
// goroutine that ticks it.
type World struct {
	kind  WorldKind
	cfg   config.RunnerConfig
	rules config.WorldConfig
	rng   *rand.Rand
	view  core.Size

	player    Player
	obstacles []Entity
	rolling   []Entity
	falling   []Entity
	patrols   []Entity
	coins     []Entity // Coins and bonus coins

	spawner *Spawner
	ramp    *config.SpeedRamp

	score          int
	coinsCollected int
	nextSpeedUpAt  int
	invincible     float64 // Seconds of invincibility left
	penalty        float64 // Seconds until the next score penalty may apply
	phase          core.Phase

	elapsed float64 // Running time in seconds
	ticks   uint64
}

// NewWorld creates a session of the given kind. The seed feeds the single
// random stream used for every spawn decision.
func NewWorld(kind WorldKind, cfg config.RunnerConfig, seed int64) *World {
	w := &World{
		kind:  kind,
		cfg:   cfg,
		rules: kind.Rules(cfg),
		rng:   rand.New(rand.NewSource(seed)),
		view:  core.Size{W: cfg.Viewport.Width, H: cfg.Viewport.Height},
	}
	w.Reset()
	return w
}

// Reset re-creates all collections and scalars as at construction.
// The viewport and the random stream carry over.
func (w *World) Reset() {
	w.player = NewPlayer(w.cfg.Player, w.cfg.Physics.GroundY, w.rules.MaxHealth, w.view.W)
	w.obstacles = w.obstacles[:0]
	w.rolling = w.rolling[:0]
	w.falling = w.falling[:0]
	w.patrols = w.patrols[:0]
	w.coins = w.coins[:0]

	w.spawner = NewSpawner(w.rules, w.rng)
	w.ramp = config.NewSpeedRamp(w.cfg.Difficulty, max(1, w.cfg.Physics.BaseSpeed))

	w.score = 0
	w.coinsCollected = 0
	w.nextSpeedUpAt = w.cfg.Scoring.SpeedUpEvery
	w.invincible = 0
	w.penalty = 0
	w.phase = core.PhaseRunning
	w.elapsed = 0
	w.ticks = 0
}

// SetViewport changes the visible area. It moves the spawn edge and the
// player's right clamp; the ground line stays put.
func (w *World) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.view = core.Size{W: width, H: height}
	w.player.SetBounds(width)
}

// Tick advances the world by one step of dt real seconds.
// Outside the Running phase only pause, reset and viewport changes apply.
func (w *World) Tick(dt float64, in core.InputFrame) core.GameState {
	if in.Viewport != nil {
		w.SetViewport(in.Viewport.W, in.Viewport.H)
	}

	if in.Has(core.ActionRestart) && w.phase.Terminal() {
		w.Reset()
		return w.State()
	}

	if in.Has(core.ActionPause) {
		switch w.phase {
		case core.PhaseRunning:
			w.phase = core.PhasePaused
		case core.PhasePaused:
			w.phase = core.PhaseRunning
		}
	}

	if w.phase != core.PhaseRunning {
		return w.State()
	}

	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	w.elapsed += dt
	w.ticks++

	w.ramp.Advance(dt)
	w.invincible = math.Max(0, w.invincible-dt)
	w.penalty = math.Max(0, w.penalty-dt)

	if in.Has(core.ActionJump) {
		w.player.Jump()
	}
	w.player.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight))

	w.spawner.Tick(w.count, w.spawn)

	w.updateHazards()
	if w.phase == core.PhaseRunning {
		w.updateCoins()
	}

	return w.State()
}

// updateHazards moves hazards, drops the ones that left the screen and
// applies contact damage.
func (w *World) updateHazards() {
	speed := w.ramp.Speed()
	for _, list := range []*[]Entity{&w.obstacles, &w.rolling, &w.falling, &w.patrols} {
		kept := (*list)[:0]
		for _, e := range *list {
			e.Advance(speed)
			if e.Offscreen(w.view, w.cfg.Physics.OffscreenMargin) {
				continue
			}
			kept = append(kept, e)
			if w.phase == core.PhaseRunning && e.hits(&w.player) {
				w.collide(e)
			}
		}
		*list = kept
	}
}

// collide resolves contact with a hazard.
// Major hazards cost health behind the invincibility window; minor ones
// cost score behind the separate penalty window.
func (w *World) collide(e Entity) {
	if e.Kind.Major() {
		if w.invincible > 0 {
			return
		}
		w.player.Damage(w.cfg.Damage.HealthPerMajorImpact)
		w.invincible = w.cfg.Damage.InvincibilitySecs
		if w.player.HP <= 0 {
			w.phase = core.PhaseGameOver
		}
		return
	}

	if w.penalty > 0 {
		return
	}
	w.score = max(0, w.score-w.cfg.Damage.ScorePenalty)
	w.penalty = w.cfg.Damage.PenaltyCooldownSecs
}

// updateCoins moves coins and collects the ones the player touches.
func (w *World) updateCoins() {
	speed := w.ramp.Speed()
	kept := w.coins[:0]
	for _, c := range w.coins {
		c.Advance(speed)
		if c.Offscreen(w.view, w.cfg.Physics.OffscreenMargin) {
			continue
		}
		if c.hits(&w.player) {
			w.collect(c)
			continue
		}
		kept = append(kept, c)
	}
	w.coins = kept
}

// collect applies a coin pickup: score, healing, speed-ups and the win check.
func (w *World) collect(c Entity) {
	if c.Kind == KindBonusCoin {
		w.score += w.cfg.Scoring.BonusValue
		w.player.Heal(w.cfg.Scoring.BonusHeal)
	} else {
		w.score += w.cfg.Scoring.CoinValue
	}

	w.coinsCollected++
	if step := w.cfg.Scoring.SpeedUpEvery; step > 0 && w.coinsCollected >= w.nextSpeedUpAt {
		w.ramp.Bump(1)
		w.nextSpeedUpAt += step
	}

	if w.score >= w.cfg.Scoring.WinScore {
		w.phase = core.PhaseWon
	}
}

// count returns how many entities of a kind are alive.
func (w *World) count(k Kind) int {
	switch k {
	case KindObstacle:
		return len(w.obstacles)
	case KindRolling:
		return len(w.rolling)
	case KindFalling:
		return len(w.falling)
	case KindPatrol:
		return len(w.patrols)
	default:
		return len(w.coins)
	}
}

// spawn builds one entity of kind k at the spawn edge.
func (w *World) spawn(k Kind) {
	switch k {
	case KindObstacle:
		w.obstacles = append(w.obstacles, w.newObstacle())
	case KindRolling:
		w.rolling = append(w.rolling, w.newRolling())
	case KindFalling:
		w.falling = append(w.falling, w.newFalling())
	case KindPatrol:
		w.patrols = append(w.patrols, w.newPatrol())
	default:
		w.coins = append(w.coins, w.newCoin())
	}
}

func (w *World) newObstacle() Entity {
	shape := w.cfg.Entities.Obstacle
	h := w.between(shape.MinHeight, shape.MaxHeight)
	width := max(shape.MinWidth, int(math.Round(float64(h)*shape.Aspect)))
	return Entity{
		Kind: KindObstacle,
		X:    float64(w.view.W),
		Y:    w.cfg.Physics.GroundY - float64(h),
		W:    float64(width),
		H:    float64(h),
	}
}

func (w *World) newRolling() Entity {
	shape := w.cfg.Entities.Rolling
	size := float64(w.between(shape.MinSize, shape.MaxSize))
	return Entity{
		Kind:       KindRolling,
		X:          float64(w.view.W),
		Y:          w.cfg.Physics.GroundY - size,
		W:          size,
		H:          size,
		Drift:      shape.Drift,
		SpinStep:   shape.MinSpin,
		SpinFactor: shape.SpinFactor,
	}
}

func (w *World) newFalling() Entity {
	shape := w.cfg.Entities.Falling
	size := float64(w.between(shape.MinSize, shape.MaxSize))
	x := 0
	if span := w.view.W - shape.EdgeInset; span > 0 {
		x = w.rng.Intn(span)
	}
	return Entity{
		Kind:     KindFalling,
		X:        float64(x),
		Y:        shape.StartY,
		W:        size,
		H:        size,
		VX:       -float64(w.ramp.Speed()) * shape.DriftFactor,
		VY:       shape.MinFall + w.rng.Float64()*shape.FallJitter,
		Spin:     w.rng.Float64() * 360,
		SpinStep: shape.Spin,
	}
}

func (w *World) newPatrol() Entity {
	shape := w.cfg.Entities.Patrol
	return Entity{
		Kind:      KindPatrol,
		X:         float64(w.view.W) + shape.SpawnOffset,
		Y:         w.cfg.Physics.GroundY - shape.Hover - shape.Height,
		W:         shape.Width,
		H:         shape.Height,
		Drift:     shape.Drift,
		SpinStep:  shape.WobbleStep,
		WobbleAmp: shape.WobbleAmp,
	}
}

func (w *World) newCoin() Entity {
	shape := w.cfg.Entities.Coin
	kind := KindCoin
	if w.rules.BonusGate > 0 && w.rng.Intn(w.rules.BonusGate) == 0 {
		kind = KindBonusCoin
	}

	var y float64
	if w.kind == Planet {
		y = w.cfg.Physics.GroundY - shape.Size - shape.PlanetLift
	} else {
		lift := shape.EarthMinLift
		if shape.EarthLiftRange > 0 {
			lift += w.rng.Intn(shape.EarthLiftRange)
		}
		y = w.cfg.Physics.GroundY - float64(lift)
	}

	return Entity{
		Kind:     kind,
		X:        float64(w.view.W),
		Y:        y,
		W:        shape.Size,
		H:        shape.Size,
		SpinStep: shape.Spin,
	}
}

// between draws an int uniformly from [lo, hi].
func (w *World) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// State returns the platform-facing summary.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:     w.score,
		Health:    w.player.HP,
		MaxHealth: w.player.MaxHP,
		Speed:     w.ramp.Speed(),
		Phase:     w.phase,
	}
}

// Kind returns the world kind.
func (w *World) Kind() WorldKind {
	return w.kind
}

// Phase returns the current phase.
func (w *World) Phase() core.Phase {
	return w.phase
}
