package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axemsolutions/dem/internal/core"
)

// decisionModel is the closing dialog of the modify flow. It renders as a
// centered bordered modal with one button per core.Decision and intercepts
// all key input while active.
//
// Navigation: left/right/tab/shift+tab move focus between the buttons.
// Enter activates the focused button. y/s/n/esc are shortcut accelerators.
type decisionModel struct {
	active  bool
	message string
	choices []core.Decision
	focus   int

	// Layout dimensions, set by the parent so the dialog can center itself.
	width  int
	height int
}

// decisionMsg is sent after the user picks a button.
type decisionMsg struct {
	decision core.Decision
}

func newDecisionModel() decisionModel {
	return decisionModel{choices: core.Decisions()}
}

// show activates the dialog with the given prompt. Focus starts on the
// first choice.
func (m decisionModel) show(message string) decisionModel {
	m.active = true
	m.message = message
	m.focus = 0
	return m
}

// setSize updates the available area for centering the dialog.
func (m decisionModel) setSize(width, height int) decisionModel {
	m.width = width
	m.height = height
	return m
}

// dismiss hides the dialog.
func (m decisionModel) dismiss() decisionModel {
	m.active = false
	m.message = ""
	m.focus = 0
	return m
}

// choose dismisses the dialog and reports d.
func (m decisionModel) choose(d core.Decision) (decisionModel, tea.Cmd) {
	m = m.dismiss()
	return m, func() tea.Msg {
		return decisionMsg{decision: d}
	}
}

// update handles key input while the dialog is active.
// Returns the updated model, any commands to run, and whether the message was consumed.
func (m decisionModel) update(msg tea.Msg) (decisionModel, tea.Cmd, bool) {
	if !m.active {
		return m, nil, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	// Shortcut accelerators.
	case key.Matches(keyMsg, decisionConfirmKey):
		m, cmd := m.choose(core.DecisionConfirm)
		return m, cmd, true

	case key.Matches(keyMsg, decisionSaveAsKey):
		m, cmd := m.choose(core.DecisionSaveAs)
		return m, cmd, true

	case key.Matches(keyMsg, decisionCancelKey), key.Matches(keyMsg, keys.Back):
		m, cmd := m.choose(core.DecisionCancel)
		return m, cmd, true

	// Enter activates the focused button.
	case key.Matches(keyMsg, keys.Enter):
		m, cmd := m.choose(m.choices[m.focus])
		return m, cmd, true

	case key.Matches(keyMsg, decisionLeft), key.Matches(keyMsg, decisionShiftTab):
		m.focus = (m.focus + len(m.choices) - 1) % len(m.choices)
		return m, nil, true

	case key.Matches(keyMsg, decisionRight), key.Matches(keyMsg, decisionTab):
		m.focus = (m.focus + 1) % len(m.choices)
		return m, nil, true
	}

	// Consume all other keys while the dialog is active.
	return m, nil, true
}

// view renders a centered bordered dialog with the prompt and one button
// per decision.
func (m decisionModel) view() string {
	if !m.active {
		return ""
	}

	question := lipgloss.NewStyle().
		Width(44).
		Align(lipgloss.Center).
		Render(m.message)

	var buttons []string
	for i, d := range m.choices {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		if i == m.focus {
			buttons = append(buttons, dialogActiveButtonStyle.Render(string(d)))
		} else {
			buttons = append(buttons, dialogButtonStyle.Render(string(d)))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	ui := lipgloss.JoinVertical(lipgloss.Center, question, "", row)
	dialog := dialogBoxStyle.Render(ui)

	if m.width <= 0 || m.height <= 0 {
		return dialog
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

// Key bindings for the decision dialog (not part of the global keyMap).
var (
	decisionConfirmKey = key.NewBinding(
		key.WithKeys("y", "Y", "c"),
		key.WithHelp("y", "confirm"),
	)
	decisionSaveAsKey = key.NewBinding(
		key.WithKeys("s", "S"),
		key.WithHelp("s", "save as"),
	)
	decisionCancelKey = key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "cancel"),
	)
	decisionLeft = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	decisionRight = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	decisionTab = key.NewBinding(
		key.WithKeys("tab"),
	)
	decisionShiftTab = key.NewBinding(
		key.WithKeys("shift+tab"),
	)
)

// decisionHelpKeyMap is shown while the dialog is active.
type decisionHelpKeyMap struct{}

func (k decisionHelpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{decisionConfirmKey, decisionSaveAsKey, decisionCancelKey, keys.Enter}
}

func (k decisionHelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
