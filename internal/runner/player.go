package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner controlled by the user.
type Player struct {
	X, Y     float64 // Top-left corner in world units
	VY       float64 // Vertical velocity, positive is down
	W, H     float64
	Grounded bool
	Jumps    int // Jumps used since last landing
	HP       int
	MaxHP    int

	cfg     config.Player
	groundY float64
	maxX    float64 // Right clamp derived from the viewport width
}

// NewPlayer places a player on the ground.
func NewPlayer(cfg config.Player, groundY float64, maxHP, viewW int) Player {
	p := Player{
		X:        cfg.X,
		Y:        groundY - cfg.Height,
		W:        cfg.Width,
		H:        cfg.Height,
		Grounded: true,
		HP:       maxHP,
		MaxHP:    maxHP,
		cfg:      cfg,
		groundY:  groundY,
	}
	p.SetBounds(viewW)
	return p
}

// SetBounds updates the horizontal clamp for a new viewport width.
func (p *Player) SetBounds(viewW int) {
	p.maxX = math.Max(0, float64(viewW)-p.W)
	p.X = core.ClampF(p.X, 0, p.maxX)
}

// Jump starts a jump if any remain. Returns whether it did.
func (p *Player) Jump() bool {
	if p.Jumps >= p.cfg.MaxJumps {
		return false
	}
	p.VY = p.cfg.JumpImpulse
	p.Jumps++
	p.Grounded = false
	return true
}

// Update applies horizontal movement and gravity for one tick.
func (p *Player) Update(left, right bool) {
	if left {
		p.X -= p.cfg.MoveSpeed
	}
	if right {
		p.X += p.cfg.MoveSpeed
	}
	p.X = core.ClampF(p.X, 0, p.maxX)

	p.VY += p.cfg.Gravity
	if p.VY > p.cfg.MaxFallSpeed {
		p.VY = p.cfg.MaxFallSpeed
	}
	p.Y += p.VY

	// Landing
	if p.Y+p.H >= p.groundY {
		p.Y = p.groundY - p.H
		p.VY = 0
		p.Grounded = true
		p.Jumps = 0
	}
}

// Damage removes n health, floored at zero.
func (p *Player) Damage(n int) {
	p.HP = core.Clamp(p.HP-n, 0, p.MaxHP)
}

// Heal restores n health, capped at MaxHP.
func (p *Player) Heal(n int) {
	p.HP = core.Clamp(p.HP+n, 0, p.MaxHP)
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.RoundRect(p.X, p.Y, int(math.Round(p.W)), int(math.Round(p.H)))
}

// Circle returns the player's round hitbox centered in the bounding box.
func (p *Player) Circle() core.Circle {
	return core.NewCircle(p.X+p.W/2, p.Y+p.H/2, p.cfg.HitRadius)
}
