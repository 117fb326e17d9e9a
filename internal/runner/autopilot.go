package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Autopilot plays a session from its snapshots. It jumps over ground
// hazards and ignores anything falling from above. Used by headless runs.
type Autopilot struct {
	// LeadTicks is how many ticks of scrolling ahead of the player a hazard
	// must be before the autopilot reacts.
	LeadTicks float64
}

// NewAutopilot returns an autopilot with a lead tuned for the default jump.
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadTicks: 9}
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(s *Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if s.Phase != core.PhaseRunning {
		return in
	}

	p := s.Player
	reach := float64(s.Speed)*a.LeadTicks + p.W/2
	for _, e := range s.Entities {
		if e.Kind.Collectible() || e.Kind == KindFalling {
			continue
		}
		// Only hazards sharing the player's standing band matter
		if e.Y+e.H <= s.GroundY-p.H {
			continue
		}
		ahead := e.X - (p.X + p.W)
		switch {
		case p.Grounded && ahead >= 0 && ahead <= reach:
			in.Set(core.ActionJump)
		case !p.Grounded && p.VY > 0 && e.X < p.X+p.W && e.X+e.W > p.X && p.Y+p.H > e.Y-p.H/2:
			// Falling onto it: spend the second jump
			in.Set(core.ActionJump)
		}
	}
	return in
}

// Drive writes the decision for s into intents.
func (a *Autopilot) Drive(s *Snapshot, intents *core.Intents) {
	if a.Decide(s).Has(core.ActionJump) {
		intents.Press(core.ActionJump)
	}
}
