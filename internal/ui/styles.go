package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noteleap/noteleap/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan
	ColorBlue      = lipgloss.Color("75")  // Blue

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)

	// The selected row of the interactive switcher.
	StyleSelected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// Input box around the query field.
	StyleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// Per-category label styles; the label colors double as a legend.
	categoryStyles = map[models.Category]lipgloss.Style{
		models.CategoryRecent:    lipgloss.NewStyle().Foreground(ColorSuccess),
		models.CategoryOutgoing:  lipgloss.NewStyle().Foreground(ColorBlue),
		models.CategoryBacklink:  lipgloss.NewStyle().Foreground(ColorCyan),
		models.CategoryTwoHop:    lipgloss.NewStyle().Foreground(ColorWarning),
		models.CategoryOther:     lipgloss.NewStyle().Foreground(ColorSecondary),
		models.CategoryUnrelated: lipgloss.NewStyle().Foreground(ColorSecondary).Faint(true),
	}
)

// CategoryLabel renders the bracketed, colored label for a category.
func CategoryLabel(c models.Category) string {
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleSubtle
	}
	return style.Render("[" + string(c) + "]")
}
