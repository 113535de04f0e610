package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/savetree/pkg/filetree"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	accentColor    = lipgloss.Color("#FF00FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	modeStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	// Row styles
	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	ignoredStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Strikethrough(true)

	registryStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Status bar styles
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginTop(1)

	statusCountStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)
)

// badgeStyle returns the style a badge is drawn with
func badgeStyle(kind filetree.BadgeKind) lipgloss.Style {
	switch kind {
	case filetree.BadgeNew:
		return lipgloss.NewStyle().Foreground(successColor)
	case filetree.BadgeChanged:
		return lipgloss.NewStyle().Foreground(warningColor)
	case filetree.BadgeDuplicated:
		return lipgloss.NewStyle().Foreground(accentColor)
	case filetree.BadgeFailed:
		return lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	}
}
