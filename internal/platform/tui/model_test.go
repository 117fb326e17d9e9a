package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

type stubFrame struct{}

func (stubFrame) State() core.GameState { return core.GameState{Score: 42, Phase: core.PhaseWon} }
func (stubFrame) Render(dst *core.Screen) {
	dst.Clear()
	dst.Set(0, 0, 'X')
}

type stubGame struct {
	intents core.Intents
	resets  int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Tick(float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Snapshot() registry.Frame { return stubFrame{} }
func (g *stubGame) Intents() *core.Intents { return &g.intents }

func newTestModel(t *testing.T) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, nil)
	t.Cleanup(m.cancel)
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelResetsAndSizes(t *testing.T) {
	m, g := newTestModel(t)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	// One row is kept for the help line
	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", m.screen.Width(), m.screen.Height())
	}
	f := g.intents.Take()
	if f.Viewport == nil {
		t.Fatal("expected a viewport intent")
	}
	if *f.Viewport != (core.Size{W: 1000, H: 600}) {
		t.Errorf("viewport = %+v, expected 1000x600", *f.Viewport)
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	m, g := newTestModel(t)
	g.intents.Take()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 31})

	if m.screen.Width() != 120 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 120x30", m.screen.Width(), m.screen.Height())
	}
	f := g.intents.Take()
	if f.Viewport == nil || *f.Viewport != (core.Size{W: 1200, H: 600}) {
		t.Errorf("viewport = %v, expected 1200x600", f.Viewport)
	}
}

func TestMovementHoldAndRelease(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd == nil {
		t.Fatal("movement should schedule a release")
	}
	if !g.intents.Take().Has(core.ActionLeft) {
		t.Fatal("left should be held")
	}
	first := m.seq

	// Auto-repeat extends the hold; the first release is stale
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, releaseMsg{action: core.ActionLeft, seq: first})
	if !g.intents.Take().Has(core.ActionLeft) {
		t.Error("stale release must not end a repeated hold")
	}

	m, _ = update(t, m, releaseMsg{action: core.ActionLeft, seq: m.seq})
	if g.intents.Take().Has(core.ActionLeft) {
		t.Error("latest release should end the hold")
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runes("a"))
	_, _ = update(t, m, runes("d"))

	f := g.intents.Take()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("actions = %v, expected only right", f.Actions)
	}
}

func TestEdgeKeysBecomeIntents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"p pauses", runes("p"), core.ActionPause},
		{"r restarts", runes("r"), core.ActionRestart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, g := newTestModel(t)
			update(t, m, tc.msg)

			f := g.intents.Take()
			if !f.Has(tc.want) {
				t.Errorf("expected %v in %v", tc.want, f.Actions)
			}
			// Edge-triggered: consumed by the first Take
			if g.intents.Take().Has(tc.want) {
				t.Errorf("%v should be consumed once", tc.want)
			}
		})
	}
}

func TestQuitAndBack(t *testing.T) {
	m, g := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if !g.intents.Quitting() {
		t.Error("q should raise the quit intent")
	}
	if m.ctx.Err() == nil {
		t.Error("q should stop the loop")
	}

	m, _ = newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Result().Back {
		t.Error("esc should return to the menu")
	}
}

func TestViewRendersLatestFrame(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), "Loading Stub") {
		t.Error("expected a loading message before the first frame")
	}

	m, cmd := update(t, m, frameMsg{frame: stubFrame{}})
	if cmd == nil {
		t.Error("a frame should schedule the wait for the next one")
	}
	view := m.View()
	if !strings.HasPrefix(view, "X") {
		t.Errorf("view should start with the frame, got %q", view[:min(len(view), 10)])
	}
	if got := m.Result().State.Score; got != 42 {
		t.Errorf("Result score = %d, expected 42", got)
	}
}

func TestHelpToggleReservesRows(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("?"))

	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if m.screen.Height() != 22 {
		t.Errorf("screen height = %d, expected 22 with full help", m.screen.Height())
	}
}

func TestWorldViewport(t *testing.T) {
	tests := []struct {
		cols, rows int
		want       core.Size
	}{
		{80, 24, core.Size{W: 1000, H: 600}},
		{40, 30, core.Size{W: 400, H: 600}},
		{0, 24, core.Size{}},
		{80, 0, core.Size{}},
	}

	for _, tc := range tests {
		if got := worldViewport(tc.cols, tc.rows, worldHeight); got != tc.want {
			t.Errorf("worldViewport(%d, %d) = %+v, expected %+v", tc.cols, tc.rows, got, tc.want)
		}
	}
}
