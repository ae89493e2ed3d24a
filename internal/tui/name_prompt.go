package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// nameEnteredMsg carries the name typed for a save-as.
type nameEnteredMsg struct {
	name string
}

// nameCancelledMsg is emitted when the user leaves the prompt with esc.
type nameCancelledMsg struct{}

// namePromptModel asks for the name of the new Development Environment.
type namePromptModel struct {
	input textinput.Model
	err   string
}

func newNamePromptModel() namePromptModel {
	ti := textinput.New()
	ti.Placeholder = "my_dev_env"
	ti.CharLimit = 128
	ti.Width = 40
	return namePromptModel{input: ti}
}

// show clears and focuses the input.
func (m namePromptModel) show() (namePromptModel, tea.Cmd) {
	m.input.SetValue("")
	m.err = ""
	m.input.Focus()
	return m, m.input.Cursor.BlinkCmd()
}

func (m namePromptModel) update(msg tea.Msg) (namePromptModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Enter):
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.err = "The name must not be empty."
				return m, nil
			}
			m.input.Blur()
			return m, func() tea.Msg { return nameEnteredMsg{name: name} }
		case key.Matches(keyMsg, keys.Back):
			m.input.Blur()
			return m, func() tea.Msg { return nameCancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m namePromptModel) view() string {
	s := titleStyle.Render("Name of the new Development Environment") + "\n\n" + m.input.View()
	if m.err != "" {
		s += "\n\n" + errorStyle.Render(m.err)
	}
	return wizardContentStyle.Render(s)
}
