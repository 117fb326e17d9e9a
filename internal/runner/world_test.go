package runner

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const testDT = 1.0 / 60

// quietConfig disables spawning and speed ramping so tests control every entity.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	for _, w := range []*config.WorldConfig{&cfg.Earth, &cfg.Planet} {
		w.Obstacle.Gate = 0
		w.Rolling.Gate = 0
		w.Falling.Gate = 0
		w.Patrol.Gate = 0
		w.Coin.Gate = 0
	}
	cfg.Difficulty.Enabled = false
	return cfg
}

func newQuietWorld(kind WorldKind) *World {
	return NewWorld(kind, quietConfig(), 1)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// coinOnPlayer returns a coin that sits on the player after one tick of scrolling.
func coinOnPlayer(w *World, kind Kind) Entity {
	return Entity{
		Kind: kind,
		X:    w.player.X + float64(w.ramp.Speed()),
		Y:    w.player.Y + 12,
		W:    26,
		H:    26,
	}
}

func TestWorldInitialState(t *testing.T) {
	tests := []struct {
		kind    WorldKind
		maxHP   int
		groundY float64
	}{
		{Earth, 3, 450},
		{Planet, 4, 450},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			w := NewWorld(tc.kind, config.DefaultRunnerConfig(), 1)
			st := w.State()
			if st.Phase != core.PhaseRunning {
				t.Errorf("Phase = %v, expected running", st.Phase)
			}
			if st.Health != tc.maxHP || st.MaxHealth != tc.maxHP {
				t.Errorf("Health = %d/%d, expected %d/%d", st.Health, st.MaxHealth, tc.maxHP, tc.maxHP)
			}
			if st.Speed != 4 || st.Score != 0 {
				t.Errorf("Speed = %d Score = %d, expected 4 and 0", st.Speed, st.Score)
			}
			if w.player.Y+w.player.H != tc.groundY || !w.player.Grounded {
				t.Error("player should start on the ground")
			}
			if w.nextSpeedUpAt != 10 {
				t.Errorf("nextSpeedUpAt = %d, expected 10", w.nextSpeedUpAt)
			}
		})
	}
}

func TestObstacleHitAtOneHealthEndsRun(t *testing.T) {
	w := newQuietWorld(Earth)
	w.player.HP = 1
	w.obstacles = append(w.obstacles, Entity{
		Kind: KindObstacle,
		X:    w.player.X + float64(w.ramp.Speed()),
		Y:    450 - 60,
		W:    30,
		H:    60,
	})

	st := w.Tick(testDT, idle())

	if st.Health != 0 {
		t.Errorf("Health = %d, expected 0", st.Health)
	}
	if st.Phase != core.PhaseGameOver {
		t.Errorf("Phase = %v, expected game_over", st.Phase)
	}
}

func TestMajorHitInvincibilityWindow(t *testing.T) {
	w := newQuietWorld(Planet)
	w.patrols = append(w.patrols, Entity{
		Kind:  KindPatrol,
		X:     w.player.X + float64(w.ramp.Speed()) + 1,
		Y:     400,
		W:     90,
		H:     50,
		Drift: 1,
	})

	w.Tick(testDT, idle())
	if w.player.HP != 3 {
		t.Fatalf("HP = %d after first hit, expected 3", w.player.HP)
	}
	if w.invincible != w.cfg.Damage.InvincibilitySecs {
		t.Errorf("invincible = %v, expected full window", w.invincible)
	}

	// Still overlapping, but invincible
	w.Tick(testDT, idle())
	if w.player.HP != 3 {
		t.Errorf("HP = %d during invincibility, expected 3", w.player.HP)
	}

	// Window measured in seconds: one long tick clears it
	w.patrols[0].X = w.player.X + float64(w.ramp.Speed()) + 1
	w.Tick(1.0, idle())
	if w.player.HP != 2 {
		t.Errorf("HP = %d after window expired, expected 2", w.player.HP)
	}
}

func TestMinorHitCostsScoreOnly(t *testing.T) {
	w := newQuietWorld(Earth)
	w.score = 200
	w.rolling = append(w.rolling, Entity{
		Kind:  KindRolling,
		X:     w.player.X + float64(w.ramp.Speed()) + 1.5,
		Y:     450 - 40,
		W:     40,
		H:     40,
		Drift: 1.5,
	})

	w.Tick(testDT, idle())
	if w.score != 150 {
		t.Errorf("score = %d, expected 150", w.score)
	}
	if w.player.HP != w.player.MaxHP {
		t.Errorf("HP = %d, minor hazards should not cost health", w.player.HP)
	}

	// Penalty window blocks the repeat hit
	w.Tick(testDT, idle())
	if w.score != 150 {
		t.Errorf("score = %d during penalty window, expected 150", w.score)
	}
}

func TestScorePenaltyFloorsAtZero(t *testing.T) {
	w := newQuietWorld(Planet)
	w.score = 20
	w.falling = append(w.falling, Entity{
		Kind: KindFalling,
		X:    w.player.X,
		Y:    w.player.Y - 4,
		W:    40,
		H:    40,
		VY:   4,
	})

	w.Tick(testDT, idle())
	if w.score != 0 {
		t.Errorf("score = %d, expected floor at 0", w.score)
	}
}

func TestCoinPushesScoreToWin(t *testing.T) {
	w := newQuietWorld(Earth)
	w.score = 95
	w.coins = append(w.coins, coinOnPlayer(w, KindCoin))

	st := w.Tick(testDT, idle())

	if st.Score != 105 {
		t.Errorf("Score = %d, expected 105", st.Score)
	}
	if st.Phase != core.PhaseWon {
		t.Errorf("Phase = %v, expected won", st.Phase)
	}
	if len(w.coins) != 0 {
		t.Error("collected coin should be removed")
	}

	// Latched: nothing but reset leaves Won
	for _, in := range []core.InputFrame{idle(), press(core.ActionPause), press(core.ActionJump)} {
		if st := w.Tick(testDT, in); st.Phase != core.PhaseWon {
			t.Fatalf("Phase = %v, Won should be latched", st.Phase)
		}
	}

	st = w.Tick(testDT, press(core.ActionRestart))
	if st.Phase != core.PhaseRunning || st.Score != 0 {
		t.Errorf("after reset: Phase = %v Score = %d, expected running and 0", st.Phase, st.Score)
	}
}

func TestBonusCoinHeals(t *testing.T) {
	w := newQuietWorld(Earth)
	w.player.HP = 1
	w.coins = append(w.coins, coinOnPlayer(w, KindBonusCoin))

	st := w.Tick(testDT, idle())
	if st.Score != 30 {
		t.Errorf("Score = %d, expected 30", st.Score)
	}
	if st.Health != 2 {
		t.Errorf("Health = %d, expected 2", st.Health)
	}

	// Healing is capped at max
	w.coins = append(w.coins, coinOnPlayer(w, KindBonusCoin))
	w.player.HP = w.player.MaxHP
	st = w.Tick(testDT, idle())
	if st.Health != st.MaxHealth {
		t.Errorf("Health = %d, expected cap at %d", st.Health, st.MaxHealth)
	}
}

func TestCoinSpeedUpThreshold(t *testing.T) {
	w := newQuietWorld(Earth)
	w.coinsCollected = 9
	before := w.ramp.Speed()
	w.coins = append(w.coins, coinOnPlayer(w, KindCoin))

	st := w.Tick(testDT, idle())

	if st.Speed != before+1 {
		t.Errorf("Speed = %d, expected %d", st.Speed, before+1)
	}
	if w.nextSpeedUpAt != 20 {
		t.Errorf("nextSpeedUpAt = %d, expected 20", w.nextSpeedUpAt)
	}

	// The next coin below the threshold does nothing
	w.coins = append(w.coins, coinOnPlayer(w, KindCoin))
	if st := w.Tick(testDT, idle()); st.Speed != before+1 {
		t.Errorf("Speed = %d, expected no further speed-up", st.Speed)
	}
}

func TestObstacleRemovedPastMargin(t *testing.T) {
	w := newQuietWorld(Earth)
	w.obstacles = append(w.obstacles,
		Entity{Kind: KindObstacle, X: -81, Y: 390, W: 30, H: 60},
		Entity{Kind: KindObstacle, X: -70, Y: 390, W: 30, H: 60},
	)

	w.Tick(testDT, idle())

	if len(w.obstacles) != 1 {
		t.Fatalf("len(obstacles) = %d, expected 1", len(w.obstacles))
	}
	if w.obstacles[0].X != -74 {
		t.Errorf("kept obstacle X = %v, expected -74", w.obstacles[0].X)
	}
}

func TestPauseToggle(t *testing.T) {
	w := newQuietWorld(Earth)

	if st := w.Tick(testDT, press(core.ActionPause)); st.Phase != core.PhasePaused {
		t.Fatalf("Phase = %v, expected paused", st.Phase)
	}
	if st := w.Tick(testDT, press(core.ActionPause)); st.Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected running", st.Phase)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	w := newQuietWorld(Earth)
	w.score = 40

	st := w.Tick(testDT, press(core.ActionRestart))
	if st.Score != 40 {
		t.Errorf("Score = %d, restart must not reset a running session", st.Score)
	}

	w.phase = core.PhaseGameOver
	w.player.HP = 0
	w.obstacles = append(w.obstacles, Entity{Kind: KindObstacle, X: 500, Y: 390, W: 30, H: 60})
	st = w.Tick(testDT, press(core.ActionRestart))
	if st.Phase != core.PhaseRunning || st.Health != st.MaxHealth || st.Score != 0 {
		t.Errorf("after restart: %+v", st)
	}
	if len(w.obstacles) != 0 {
		t.Error("restart should clear entities")
	}
}

func TestTickFrozenOutsideRunning(t *testing.T) {
	tests := []struct {
		name  string
		enter func(w *World)
	}{
		{"paused", func(w *World) { w.Tick(testDT, press(core.ActionPause)) }},
		{"game over", func(w *World) { w.phase = core.PhaseGameOver }},
		{"won", func(w *World) { w.phase = core.PhaseWon }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(Earth, config.DefaultRunnerConfig(), 99)
			w.cfg.Damage.HealthPerMajorImpact = 0
			for i := 0; i < 300; i++ {
				w.Tick(testDT, idle())
			}
			w.invincible = 0.5
			w.penalty = 0.3
			tc.enter(w)

			before := *w.Snapshot()
			cooldowns := cooldownsOf(w)

			for i := 0; i < 120; i++ {
				w.Tick(0.5, press(core.ActionJump, core.ActionRight))
			}

			after := *w.Snapshot()
			if !reflect.DeepEqual(before, after) {
				t.Errorf("world changed while frozen:\nbefore %+v\nafter  %+v", before, after)
			}
			if !reflect.DeepEqual(cooldowns, cooldownsOf(w)) {
				t.Error("spawn cooldowns changed while frozen")
			}
			if w.penalty != 0.3 {
				t.Errorf("penalty window = %v, expected frozen at 0.3", w.penalty)
			}
		})
	}
}

func cooldownsOf(w *World) map[Kind]int {
	out := make(map[Kind]int)
	for _, k := range w.spawner.Kinds() {
		out[k] = w.spawner.Cooldown(k)
	}
	return out
}

func TestJumpDroppedWhilePaused(t *testing.T) {
	w := newQuietWorld(Earth)
	w.Tick(testDT, press(core.ActionPause))
	w.Tick(testDT, press(core.ActionJump))
	w.Tick(testDT, press(core.ActionPause))

	if !w.player.Grounded {
		t.Error("a jump pressed while paused must not fire on resume")
	}
}

func TestSetViewport(t *testing.T) {
	w := newQuietWorld(Earth)
	w.player.X = 700

	in := idle()
	in.Viewport = &core.Size{W: 400, H: 300}
	w.Tick(testDT, in)

	if w.player.X != 350 {
		t.Errorf("player X = %v, expected clamp to 350", w.player.X)
	}
	if w.cfg.Physics.GroundY != 450 || w.player.Y+w.player.H != 450 {
		t.Error("ground line must not move with the viewport")
	}

	w.spawn(KindObstacle)
	if w.obstacles[0].X != 400 {
		t.Errorf("spawn X = %v, expected new right edge 400", w.obstacles[0].X)
	}

	// Invalid sizes are ignored
	w.SetViewport(0, 10)
	if w.view.W != 400 {
		t.Errorf("view W = %d, expected 400", w.view.W)
	}
}

func TestSpawnedEntityShapes(t *testing.T) {
	earth := NewWorld(Earth, config.DefaultRunnerConfig(), 5)
	planet := NewWorld(Planet, config.DefaultRunnerConfig(), 5)

	for i := 0; i < 200; i++ {
		earth.spawn(KindObstacle)
		earth.spawn(KindRolling)
		earth.spawn(KindCoin)
		planet.spawn(KindFalling)
		planet.spawn(KindPatrol)
		planet.spawn(KindCoin)
	}

	for _, o := range earth.obstacles {
		if o.H < 50 || o.H > 90 || o.W < 20 || o.Y+o.H != 450 || o.X != 800 {
			t.Fatalf("obstacle out of shape: %+v", o)
		}
	}
	for _, r := range earth.rolling {
		if r.W < 32 || r.W > 56 || r.Y+r.H != 450 {
			t.Fatalf("rolling out of shape: %+v", r)
		}
	}
	for _, c := range earth.coins {
		lift := 450 - c.Y
		if lift < 60 || lift >= 180 {
			t.Fatalf("earth coin lift %v outside [60,180)", lift)
		}
	}
	for _, f := range planet.falling {
		if f.X < 0 || f.X >= 760 || f.Y != -60 || f.VY < 3 || f.VY >= 5 || !near(f.VX, -1.2) {
			t.Fatalf("falling out of shape: %+v", f)
		}
	}
	for _, p := range planet.patrols {
		if p.X != 820 || p.W != 90 || p.H != 50 || p.Y+p.H != 450 {
			t.Fatalf("patrol out of shape: %+v", p)
		}
	}
	bonus := 0
	for _, c := range planet.coins {
		if c.Y != 450-26-8 {
			t.Fatalf("planet coin Y = %v, expected %v", c.Y, 450-26-8)
		}
		if c.Kind == KindBonusCoin {
			bonus++
		}
	}
	if bonus == 0 || bonus > 60 {
		t.Errorf("bonus coins = %d of 200, expected roughly 1 in 10", bonus)
	}
}

func TestSpawnCapsAndWorldKinds(t *testing.T) {
	tests := []struct {
		kind    WorldKind
		allowed map[Kind]int // kind -> cap, 0 means unbounded
	}{
		{Earth, map[Kind]int{KindObstacle: 6, KindRolling: 4, KindCoin: 10, KindBonusCoin: 10}},
		{Planet, map[Kind]int{KindFalling: 0, KindPatrol: 3, KindCoin: 10, KindBonusCoin: 10}},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			cfg.Damage.HealthPerMajorImpact = 0
			cfg.Scoring.WinScore = 1 << 30
			w := NewWorld(tc.kind, cfg, 11)

			seen := make(map[Kind]bool)
			for i := 0; i < 6000; i++ {
				w.Tick(testDT, idle())
				for _, e := range w.Snapshot().Entities {
					if _, ok := tc.allowed[e.Kind]; !ok {
						t.Fatalf("tick %d: %v spawned in %s", i, e.Kind, tc.kind)
					}
					seen[e.Kind] = true
				}
				for _, k := range []Kind{KindObstacle, KindRolling, KindFalling, KindPatrol} {
					if limit := tc.allowed[k]; limit > 0 && w.count(k) > limit {
						t.Fatalf("tick %d: %d %v alive, cap %d", i, w.count(k), k, limit)
					}
				}
				if len(w.coins) > 10 {
					t.Fatalf("tick %d: %d coins alive, cap 10", i, len(w.coins))
				}
			}
			for _, k := range w.spawner.Kinds() {
				if k != KindCoin && !seen[k] {
					t.Errorf("%v never spawned", k)
				}
			}
		})
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for _, kind := range []WorldKind{Earth, Planet} {
		t.Run(string(kind), func(t *testing.T) {
			w := NewWorld(kind, config.DefaultRunnerConfig(), 2024)
			input := rand.New(rand.NewSource(7))

			for i := 0; i < 20000; i++ {
				in := core.NewInputFrame()
				for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
					if input.Intn(4) == 0 {
						in.Set(a)
					}
				}
				if w.phase.Terminal() && input.Intn(30) == 0 {
					in.Set(core.ActionRestart)
				}
				wasWon := w.phase == core.PhaseWon
				restart := in.Has(core.ActionRestart)

				st := w.Tick(testDT, in)

				if st.Health < 0 || st.Health > st.MaxHealth {
					t.Fatalf("tick %d: health %d outside [0,%d]", i, st.Health, st.MaxHealth)
				}
				if st.Score < 0 {
					t.Fatalf("tick %d: negative score %d", i, st.Score)
				}
				if w.player.Jumps < 0 || w.player.Jumps > w.cfg.Player.MaxJumps {
					t.Fatalf("tick %d: jumps %d", i, w.player.Jumps)
				}
				if st.Speed < w.ramp.Base() {
					t.Fatalf("tick %d: speed %d below base", i, st.Speed)
				}
				if wasWon && !restart && st.Phase != core.PhaseWon {
					t.Fatalf("tick %d: left Won without reset", i)
				}
				if w.invincible < 0 || w.penalty < 0 {
					t.Fatalf("tick %d: negative window", i)
				}
			}
		})
	}
}

func TestSpeedRampsWithTime(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.RampPerSec = 0.2
	w := NewWorld(Earth, cfg, 1)

	// 5 seconds at 0.2 units per second is exactly one unit
	for i := 0; i < 5*60+1; i++ {
		w.Tick(testDT, idle())
	}
	if st := w.State(); st.Speed != 5 {
		t.Errorf("Speed = %d after 5s, expected 5", st.Speed)
	}
}

func TestBadDeltaIsIgnored(t *testing.T) {
	w := newQuietWorld(Earth)
	w.invincible = 0.5
	w.Tick(-3, idle())
	if w.invincible != 0.5 || w.elapsed != 0 {
		t.Errorf("negative dt must not move clocks: invincible=%v elapsed=%v", w.invincible, w.elapsed)
	}
}
