package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// PlayerView is the read-only player state carried by a Snapshot.
type PlayerView struct {
	X, Y     float64
	W, H     float64
	VY       float64
	Grounded bool
	Jumps    int
}

// Snapshot is a deep copy of the world taken between ticks.
// It is safe to read from any goroutine.
type Snapshot struct {
	World       WorldKind
	Phase       core.Phase
	Score       int
	Speed       int
	Health      int
	MaxHealth   int
	Coins       int
	NextSpeedUp int
	Invincible  float64 // Seconds left, drives the flashing effect

	Player   PlayerView
	Entities []Entity // Draw order: obstacles, rolling, falling, patrols, coins
	View     core.Size
	GroundY  float64

	Elapsed float64
	Tick    uint64
}

// Snapshot copies the world into a Snapshot.
func (w *World) Snapshot() *Snapshot {
	total := len(w.obstacles) + len(w.rolling) + len(w.falling) + len(w.patrols) + len(w.coins)
	entities := make([]Entity, 0, total)
	entities = append(entities, w.obstacles...)
	entities = append(entities, w.rolling...)
	entities = append(entities, w.falling...)
	entities = append(entities, w.patrols...)
	entities = append(entities, w.coins...)

	return &Snapshot{
		World:       w.kind,
		Phase:       w.phase,
		Score:       w.score,
		Speed:       w.ramp.Speed(),
		Health:      w.player.HP,
		MaxHealth:   w.player.MaxHP,
		Coins:       w.coinsCollected,
		NextSpeedUp: w.nextSpeedUpAt,
		Invincible:  w.invincible,
		Player: PlayerView{
			X:        w.player.X,
			Y:        w.player.Y,
			W:        w.player.W,
			H:        w.player.H,
			VY:       w.player.VY,
			Grounded: w.player.Grounded,
			Jumps:    w.player.Jumps,
		},
		Entities: entities,
		View:     w.view,
		GroundY:  w.cfg.Physics.GroundY,
		Elapsed:  w.elapsed,
		Tick:     w.ticks,
	}
}

// State returns the summary of the snapshot.
func (s *Snapshot) State() core.GameState {
	return core.GameState{
		Score:     s.Score,
		Health:    s.Health,
		MaxHealth: s.MaxHealth,
		Speed:     s.Speed,
		Phase:     s.Phase,
	}
}

// Count returns how many entities of kind k the snapshot holds.
func (s *Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}
