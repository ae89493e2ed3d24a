package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/axemsolutions/dem/internal/wizard"
)

// toolTypesChosenMsg is emitted when the user confirms the tool-type step.
type toolTypesChosenMsg struct {
	selected []string
}

// wizardCancelMsg is emitted when the user leaves the tool-type step with esc.
type wizardCancelMsg struct{}

// toolTypeStepModel is the multi-select checkbox list of supported tool types.
type toolTypeStepModel struct {
	title   string
	options []string
	checked map[string]bool
	cursor  int
}

func newToolTypeStepModel(s wizard.Step, options []string) toolTypeStepModel {
	m := toolTypeStepModel{
		title:   s.Title,
		options: options,
		checked: make(map[string]bool, len(s.Checked)),
		cursor:  s.Row,
	}
	for _, t := range s.Checked {
		m.checked[t] = true
	}
	if m.cursor >= len(options) {
		m.cursor = 0
	}
	return m
}

// selected returns the checked options in display order.
func (m toolTypeStepModel) selected() []string {
	var out []string
	for _, o := range m.options {
		if m.checked[o] {
			out = append(out, o)
		}
	}
	return out
}

func (m toolTypeStepModel) update(msg tea.Msg) (toolTypeStepModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		if len(m.options) > 0 {
			o := m.options[m.cursor]
			m.checked[o] = !m.checked[o]
		}
	case key.Matches(keyMsg, keys.ToggleAll):
		all := len(m.selected()) < len(m.options)
		for _, o := range m.options {
			m.checked[o] = all
		}
	case key.Matches(keyMsg, keys.Enter):
		selected := m.selected()
		return m, func() tea.Msg { return toolTypesChosenMsg{selected: selected} }
	case key.Matches(keyMsg, keys.Back):
		return m, func() tea.Msg { return wizardCancelMsg{} }
	}
	return m, nil
}

func (m toolTypeStepModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, o := range m.options {
		check := "[ ]"
		if m.checked[o] {
			check = "[x]"
		}

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}

		line := prefix + check + " " + o
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(normalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press enter to continue"))

	return b.String()
}
