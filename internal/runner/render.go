package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerEye    = '▀'
	ObstacleChar = '▓'
	RockChar     = '@'
	MeteorChar   = '*'
	PatrolHull   = '▄'
	PatrolDome   = '▀'
	CoinChar     = '$'
	BonusChar    = '+'
	GroundChar   = '▀'
	DirtChar     = '░'
	CloudChar    = '~'
	StarChar     = '.'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

// rollFrames cycles through a rolling hazard's rotation.
var rollFrames = []rune{'|', '/', '-', '\\'}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(s *Snapshot, dst *core.Screen) viewport {
	vw, vh := float64(max(1, s.View.W)), float64(max(1, s.View.H))
	return viewport{
		sx: float64(dst.Width()) / vw,
		sy: float64(dst.Height()) / vh,
	}
}

// cells converts a world-space box into a screen rectangle of at least one cell.
func (v viewport) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	y0 := int(math.Floor(y * v.sy))
	x1 := int(math.Ceil((x + w) * v.sx))
	y1 := int(math.Ceil((y + h) * v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the snapshot into dst. The screen is cleared first.
func (s *Snapshot) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(s, dst)

	s.renderBackdrop(dst, v)
	s.renderGround(dst, v)
	for _, e := range s.Entities {
		s.renderEntity(dst, v, e)
	}
	s.renderPlayer(dst, v)
	s.renderHUD(dst)
	s.renderOverlay(dst)
}

// renderBackdrop draws clouds on Earth and stars on Planet. Both scroll
// slower than the ground.
func (s *Snapshot) renderBackdrop(dst *core.Screen, v viewport) {
	groundRow := int(s.GroundY * v.sy)
	w := dst.Width()
	if w == 0 {
		return
	}
	shift := int(s.Elapsed * 2)

	if s.World == Planet {
		for y := 1; y < groundRow; y++ {
			for x := 0; x < w; x++ {
				// Sparse fixed pattern, drifting one cell every half second
				if (x+shift+y*7)%23 == 0 && (y*13+x)%5 == 0 {
					dst.SetColored(x, y, StarChar, core.ColorBrightWhite)
				}
			}
		}
		return
	}

	cloud := string([]rune{CloudChar, CloudChar, CloudChar, CloudChar})
	span := w + len(cloud)
	for i, row := range []int{2, 4, 3} {
		if row >= groundRow {
			continue
		}
		x := ((i*w/3-shift*(i+1))%span + span) % span
		dst.DrawTextColored(x-len(cloud)+1, row, cloud, core.ColorWhite)
	}
}

func (s *Snapshot) renderGround(dst *core.Screen, v viewport) {
	row := int(s.GroundY * v.sy)
	groundColor, dirtColor := core.ColorGreen, core.ColorBrown
	if s.World == Planet {
		groundColor, dirtColor = core.ColorMagenta, core.ColorGray
	}
	dst.DrawHLineColored(0, row, dst.Width(), GroundChar, groundColor)
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), DirtChar, dirtColor)
	}
}

func (s *Snapshot) renderEntity(dst *core.Screen, v viewport, e Entity) {
	r := v.cells(e.X, e.DrawY(), e.W, e.H)
	switch e.Kind {
	case KindObstacle:
		dst.DrawRectColored(r, ObstacleChar, core.ColorBrightGreen)
	case KindRolling:
		dst.DrawRectColored(r, RockChar, core.ColorBrown)
		frame := rollFrames[int(e.Spin/90)%len(rollFrames)]
		cx, cy := r.Center()
		dst.SetColored(cx, cy, frame, core.ColorWhite)
	case KindFalling:
		dst.DrawRectColored(r, MeteorChar, core.ColorOrange)
		dst.SetColored(r.Right(), r.Y-1, '\'', core.ColorRed)
	case KindPatrol:
		dome := core.NewRect(r.X+r.W/4, r.Y, max(1, r.W/2), 1)
		dst.DrawRectColored(dome, PatrolDome, core.ColorBrightCyan)
		hull := core.NewRect(r.X, r.Y+1, r.W, max(1, r.H-1))
		dst.DrawRectColored(hull, PatrolHull, core.ColorBrightMagenta)
	case KindCoin:
		// Spin squeezes the coin to its edge twice per turn
		ch := CoinChar
		if math.Abs(math.Cos(e.Spin*math.Pi/180)) < 0.3 {
			ch = '|'
		}
		dst.DrawRectColored(r, ch, core.ColorGold)
	case KindBonusCoin:
		dst.DrawRectColored(r, BonusChar, core.ColorBrightRed)
	}
}

func (s *Snapshot) renderPlayer(dst *core.Screen, v viewport) {
	// Flash while invincible
	if s.Invincible > 0 && int(s.Invincible*10)%2 == 1 {
		return
	}
	p := s.Player
	r := v.cells(p.X, p.Y, p.W, p.H)
	color := core.ColorBrightCyan
	if s.World == Planet {
		color = core.ColorBrightYellow
	}
	dst.DrawRectColored(r, PlayerChar, color)
	dst.SetColored(r.Right()-1, r.Y, PlayerEye, core.ColorWhite)
}

func (s *Snapshot) renderHUD(dst *core.Screen) {
	var hearts strings.Builder
	for i := 0; i < s.MaxHealth; i++ {
		if i < s.Health {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextColored(1, 0, hearts.String(), core.ColorBrightRed)

	scoreText := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawTextCentered(0, scoreText)

	speedText := fmt.Sprintf("Coins: %d  Spd: %d", s.Coins, s.Speed)
	dst.DrawText(dst.Width()-len(speedText)-1, 0, speedText)
}

func (s *Snapshot) renderOverlay(dst *core.Screen) {
	switch s.Phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case core.PhaseWon:
		drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", s.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
