package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/axemsolutions/dem/internal/core"
)

// Color palette.
var (
	colorPrimary   = lipgloss.Color("#0EA5E9") // Sky
	colorSecondary = lipgloss.Color("#7DD3FC") // Light sky
	colorSuccess   = lipgloss.Color("#10B981") // Green (local)
	colorDanger    = lipgloss.Color("#EF4444") // Red (errors)
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorBorder    = lipgloss.Color("#374151") // Dark gray
	colorWarning   = lipgloss.Color("#F59E0B") // Amber (registry only)
)

// Shared styles used across TUI views.
var (
	// Header bar: "dem  modify demo"
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F3F4F6")).
				Padding(0, 1)

	// Step prompt.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F3F4F6"))

	// Section header within a panel (e.g. "SELECTION").
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorMuted)

	// Section header rule (the ─── line after the label).
	sectionRuleStyle = lipgloss.NewStyle().
				Foreground(colorBorder)

	// Selected item in a list.
	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Normal (unselected) item in a list.
	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	// Muted text (descriptions, secondary info).
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Image available locally.
	localStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Image only in the registry.
	registryStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Error text.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Help text at the bottom.
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Wizard content inset and breadcrumb.
	wizardContentStyle = lipgloss.NewStyle().
				Padding(0, 1)

	wizardStepActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	wizardStepInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	wizardStepSeparatorStyle = lipgloss.NewStyle().
					Foreground(colorBorder)

	// Status table.
	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Width(16)

	// Decision dialog.
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	dialogButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(colorMuted).
				Padding(0, 2)

	dialogActiveButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(colorPrimary).
				Padding(0, 2).
				Bold(true)
)

// renderSectionHeader renders a section label with short rules on both sides:
// "  ── SELECTION ──"
func renderSectionHeader(label string) string {
	rule := sectionRuleStyle.Render("──")
	text := sectionHeaderStyle.Render(" " + label + " ")
	return rule + text + rule
}

// availabilityStyle picks the badge color for a catalog entry.
func availabilityStyle(a core.Availability) lipgloss.Style {
	switch a {
	case core.LocalOnly, core.LocalAndRegistry:
		return localStyle
	case core.RegistryOnly:
		return registryStyle
	default:
		return errorStyle
	}
}
