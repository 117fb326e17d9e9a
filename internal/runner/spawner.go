package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// spawnSlot tracks the cooldown of one entity kind.
type spawnSlot struct {
	kind     Kind // KindCoin stands for both coin kinds
	rule     config.SpawnRule
	cooldown int
}

// Spawner decides when new entities enter the world.
// Each kind has a cooldown counted in ticks; once it runs out, a 1/Gate draw
// and the on-screen cap decide whether the kind spawns.
type Spawner struct {
	slots []spawnSlot
	rng   *rand.Rand
}

// NewSpawner creates a spawner for the enabled kinds of a world.
// Kinds are checked in the order obstacle, rolling, falling, patrol, coin.
func NewSpawner(rules config.WorldConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{rng: rng}
	for _, slot := range []spawnSlot{
		{kind: KindObstacle, rule: rules.Obstacle},
		{kind: KindRolling, rule: rules.Rolling},
		{kind: KindFalling, rule: rules.Falling},
		{kind: KindPatrol, rule: rules.Patrol},
		{kind: KindCoin, rule: rules.Coin},
	} {
		if !slot.rule.Enabled() {
			continue
		}
		slot.cooldown = max(0, slot.rule.Initial)
		s.slots = append(s.slots, slot)
	}
	return s
}

// Tick decrements every cooldown and spawns the kinds that are due.
// count reports how many entities of a kind are alive; spawn creates one.
// Spawns over the cap are skipped, not queued.
func (s *Spawner) Tick(count func(Kind) int, spawn func(Kind)) {
	for i := range s.slots {
		slot := &s.slots[i]
		if slot.cooldown > 0 {
			slot.cooldown--
		}
		if slot.cooldown > 0 {
			continue
		}
		if slot.rule.Cap > 0 && count(slot.kind) >= slot.rule.Cap {
			continue
		}
		if s.rng.Intn(slot.rule.Gate) != 0 {
			continue
		}
		spawn(slot.kind)
		slot.cooldown = s.nextCooldown(slot.rule)
	}
}

// Cooldown returns the remaining cooldown of a kind, or -1 if it never spawns.
func (s *Spawner) Cooldown(k Kind) int {
	for _, slot := range s.slots {
		if slot.kind == k {
			return slot.cooldown
		}
	}
	return -1
}

// Kinds returns the kinds this spawner can create, in check order.
func (s *Spawner) Kinds() []Kind {
	kinds := make([]Kind, len(s.slots))
	for i, slot := range s.slots {
		kinds[i] = slot.kind
	}
	return kinds
}

// nextCooldown draws a reset value uniformly from [CooldownMin, CooldownMax].
func (s *Spawner) nextCooldown(rule config.SpawnRule) int {
	if rule.CooldownMax <= rule.CooldownMin {
		return max(0, rule.CooldownMin)
	}
	return rule.CooldownMin + s.rng.Intn(rule.CooldownMax-rule.CooldownMin+1)
}
