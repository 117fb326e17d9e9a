package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// menuPage identifies what the menu is currently showing.
type menuPage int

const (
	pageList menuPage = iota
	pageGuide
	pageCredits
)

// MenuItem is one selectable menu entry. Entries without a GameID open a
// text page instead of starting a world.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	page        menuPage
}

var worldDescriptions = map[string]string{
	"earth":  "Jump blocks and rolling boulders under a cloudy sky",
	"planet": "Dodge falling meteors and patrolling UFOs among the stars",
}

var guideLines = []string{
	"Reach 100 points to win. Lose all hearts and the run is over.",
	"",
	"$  coin        +10",
	"+  bonus coin  +30 and one heart back",
	"▓  block, UFO  costs a heart, then a short grace period",
	"@  boulder     costs 50 points",
	"*  meteor      costs 50 points",
	"",
	"Every 10 coins the world scrolls faster,",
	"and it speeds up on its own over time.",
	"You can jump twice before landing.",
}

var creditsLines = []string{
	"tui-runner",
	"",
	"Built with Bubble Tea, Bubbles and Lip Gloss",
	"Logging by charmbracelet/log, CLI by cobra",
}

// MenuModel is the Bubble Tea model for the world picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	page      menuPage
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme
	quitting  bool
	selected  *MenuItem // Set when user selects a world
}

// NewMenuModel creates a new menu model listing every registered world.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: worldDescriptions[g.ID],
		})
	}
	items = append(items,
		MenuItem{Title: "Guide", Description: "What everything on screen does", page: pageGuide},
		MenuItem{Title: "Credits", Description: "Who made this", page: pageCredits},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		theme:     GetTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	// Text pages only close
	if m.page != pageList {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.page = pageList
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.GameID == "" {
			m.page = item.page
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit // Exit menu to start the world
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.page {
	case pageGuide:
		content = m.renderPage("Guide", guideLines)
	case pageCredits:
		content = m.renderPage("Credits", creditsLines)
	default:
		content = m.renderList()
	}

	footer := m.help.View(m.keyMapper.Menu)
	if m.width <= 0 || m.height <= 0 {
		return content + "\n\n" + footer
	}
	body := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + centerText(footer, m.width)
}

func (m MenuModel) renderList() string {
	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render("R U N N E R"))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuSubtitle.Render("Select a world"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + item.Title
			style = m.theme.MenuItemActive
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cursor < len(m.items) {
		b.WriteString(m.theme.MenuDescription.Render(m.items[m.cursor].Description))
	}
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m MenuModel) renderPage(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render(title))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(m.theme.PageText.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.PageAccent.Render("esc: back"))
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
