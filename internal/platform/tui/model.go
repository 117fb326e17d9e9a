package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// worldHeight is the height of the visible world in world units.
// The width follows the terminal's aspect ratio.
const worldHeight = 600

// Model is the Bubble Tea model for a running world.
type Model struct {
	game   registry.Game
	loop   *loop.Loop
	ctx    context.Context
	cancel context.CancelFunc

	screen *core.Screen
	frame  registry.Frame
	keys   *KeyMapper
	help   help.Model
	theme  Theme
	config core.RuntimeConfig
	logger *log.Logger

	holds map[core.Action]uint64 // Latest press per movement action
	seq   uint64

	width, height int
	back          bool // Leave to the menu instead of exiting
	quitting      bool
	err           error
}

// NewModel resets game and prepares a loop for it. The loop starts in Init.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	game.Reset(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		game:   game,
		ctx:    ctx,
		cancel: cancel,
		loop: loop.New(game,
			loop.WithTickRate(cfg.TickRate),
			loop.WithLogger(logger),
		),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		help:   help.New(),
		theme:  GetTheme(),
		config: cfg,
		logger: logger,
		holds:  make(map[core.Action]uint64),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.layout()
	return m
}

// Init starts the simulation loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runLoop(m.ctx, m.loop),
		waitFrame(m.loop.Frames()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case frameMsg:
		m.frame = msg.frame
		return m, waitFrame(m.loop.Frames())

	case releaseMsg:
		if m.holds[msg.action] == msg.seq {
			m.hold(msg.action, false)
			delete(m.holds, msg.action)
		}
		return m, nil

	case loopDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards key presses to the game as intents.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Game.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Game.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	intents := m.game.Intents()

	switch {
	case isQuit:
		m.quitting = true
		intents.Press(core.ActionQuit)
		m.cancel()
		return m, tea.Quit

	case action == core.ActionBack:
		m.back = true
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case action == core.ActionLeft || action == core.ActionRight:
		// Pressing one direction cancels the other
		opposite := core.ActionRight
		if action == core.ActionRight {
			opposite = core.ActionLeft
		}
		m.hold(opposite, false)
		delete(m.holds, opposite)

		m.seq++
		m.holds[action] = m.seq
		m.hold(action, true)
		return m, releaseAfter(action, m.seq)

	case action != core.ActionNone:
		intents.Press(action)
	}

	return m, nil
}

// hold sets or clears a movement intent.
func (m Model) hold(a core.Action, held bool) {
	intents := m.game.Intents()
	switch a {
	case core.ActionLeft:
		intents.SetLeft(held)
	case core.ActionRight:
		intents.SetRight(held)
	}
}

// layout sizes the screen buffer to the terminal minus the help rows and
// tells the world how much of it is visible.
func (m *Model) layout() {
	rows := max(m.height-m.helpRows(), 1)
	cols := max(m.width, 1)
	m.screen.Resize(cols, rows)
	m.help.Width = cols

	view := worldViewport(cols, rows, worldHeight)
	if view.W > 0 {
		m.game.Intents().Resize(view.W, view.H)
	}
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, group := range m.keys.Game.FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.frame != nil {
		m.frame.Render(m.screen)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the latest frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.frame == nil {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, "Loading "+m.game.Title()+"...")
	} else {
		m.frame.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + m.theme.Help.Render(m.help.View(m.keys.Game))
}

// Result describes how a play session ended.
type Result struct {
	State core.GameState
	Back  bool // The player asked to return to the menu
}

// Result returns the outcome as seen by the model.
func (m Model) Result() Result {
	res := Result{Back: m.back}
	if m.frame != nil {
		res.State = m.frame.State()
	}
	return res
}

// Run starts the Bubble Tea program for game and blocks until it ends.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, logger)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	if m.err != nil {
		return m.Result(), fmt.Errorf("tui: loop: %w", m.err)
	}
	return m.Result(), nil
}
