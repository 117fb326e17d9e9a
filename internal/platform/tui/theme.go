package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the playfield.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Text page styles (guide, credits)
	PageTitle  lipgloss.Style
	PageText   lipgloss.Style
	PageAccent lipgloss.Style

	// Help line under the playfield
	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		PageTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		PageText:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		Help: lipgloss.NewStyle().Padding(0, 1),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.PageTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.PageAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// SetThemeByName sets the global theme by name and reports whether the
// name was known.
func SetThemeByName(name string) bool {
	switch name {
	case "", "default":
		SetTheme(DefaultTheme())
	case "mono", "monochrome":
		SetTheme(MonochromeTheme())
	default:
		return false
	}
	return true
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
