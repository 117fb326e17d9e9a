package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind identifies what an entity is and how it moves and collides.
type Kind int

const (
	KindObstacle Kind = iota // Ground rectangle
	KindRolling              // Rolls along the ground, rotates
	KindFalling              // Falls from above with leftward drift
	KindPatrol               // Hovers near the ground, wobbles
	KindCoin
	KindBonusCoin // Heals and scores more
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindRolling:
		return "rolling"
	case KindFalling:
		return "falling"
	case KindPatrol:
		return "patrol"
	case KindCoin:
		return "coin"
	case KindBonusCoin:
		return "bonus_coin"
	default:
		return "unknown"
	}
}

// Hitbox is the collision geometry used by a kind.
type Hitbox int

const (
	HitboxRect Hitbox = iota
	HitboxCircle
)

// Hitbox returns the collision geometry for the kind.
func (k Kind) Hitbox() Hitbox {
	switch k {
	case KindObstacle, KindPatrol:
		return HitboxRect
	default:
		return HitboxCircle
	}
}

// Major reports whether contact costs health rather than score.
func (k Kind) Major() bool {
	return k == KindObstacle || k == KindPatrol
}

// Collectible reports whether the kind is picked up on contact.
func (k Kind) Collectible() bool {
	return k == KindCoin || k == KindBonusCoin
}

// Entity is a hazard or collectible. All kinds share one struct;
// Kind selects the motion and collision rules.
type Entity struct {
	Kind Kind
	X, Y float64 // Top-left corner in world units
	W, H float64

	VX, VY float64 // Own velocity, used by falling hazards instead of scroll
	Drift  float64 // Extra leftward speed on top of the scroll

	Spin       float64 // Degrees; wobble phase in radians for patrols
	SpinStep   float64
	SpinFactor float64 // Spin per tick also grows with speed: max(SpinStep, speed*SpinFactor)
	WobbleAmp  float64
}

// Advance moves the entity by one tick at the given scroll speed.
func (e *Entity) Advance(speed int) {
	if e.Kind == KindFalling {
		e.X += e.VX
		e.Y += e.VY
	} else {
		e.X -= float64(speed) + e.Drift
	}

	step := e.SpinStep
	if f := float64(speed) * e.SpinFactor; f > step {
		step = f
	}
	if e.Kind == KindPatrol {
		e.Spin = core.WrapF(e.Spin+step, 2*math.Pi)
	} else {
		e.Spin = core.WrapF(e.Spin+step, 360)
	}
}

// Offscreen reports whether the entity's left edge is more than margin past
// the left of the view, or its top has dropped margin below the bottom.
func (e Entity) Offscreen(view core.Size, margin float64) bool {
	if e.X < -margin {
		return true
	}
	return e.Y-e.H > float64(view.H)+margin
}

// Rect returns the axis-aligned bounding box.
func (e Entity) Rect() core.Rect {
	return core.RoundRect(e.X, e.Y, int(math.Round(e.W)), int(math.Round(e.H)))
}

// Circle returns the circle inscribed in the bounding box.
func (e Entity) Circle() core.Circle {
	return core.NewCircle(e.X+e.W/2, e.Y+e.H/2, e.W/2)
}

// DrawY returns the vertical position including cosmetic wobble.
func (e Entity) DrawY() float64 {
	if e.Kind != KindPatrol {
		return e.Y
	}
	return e.Y - e.WobbleAmp*math.Sin(e.Spin)
}

// hits reports whether the entity touches the player.
func (e Entity) hits(p *Player) bool {
	if e.Kind.Hitbox() == HitboxRect {
		return e.Rect().Intersects(p.Rect())
	}
	return e.Circle().Intersects(p.Circle())
}
