package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axemsolutions/dem/internal/wizard"
)

// wizardBackMsg is emitted by a tool-image step when esc is pressed.
type wizardBackMsg struct{}

// wizardDoneMsg is emitted by wizardModel when the wizard leaves Running.
type wizardDoneMsg struct {
	aborted bool
}

// wizardModel renders the active step of a wizard.Wizard with a step
// indicator breadcrumb.
//
// Step models never touch the wizard. They emit toolTypesChosenMsg,
// wizardCancelMsg, imagePickedMsg or wizardBackMsg; wizardModel feeds the
// answer to the wizard and rebuilds the step model for whichever step
// becomes active. When the wizard finishes it emits wizardDoneMsg.
type wizardModel struct {
	width, height int

	w     *wizard.Wizard
	types toolTypeStepModel
	image toolImageStepModel
}

// newWizardModel creates the frame for w and builds its first step.
func newWizardModel(w *wizard.Wizard) wizardModel {
	m := wizardModel{w: w, width: 80}
	return m.sync()
}

// setSize updates the content area dimensions.
func (m wizardModel) setSize(width, height int) wizardModel {
	m.width = width
	m.height = height
	if m.w.Current().Kind == wizard.StepToolImage {
		m.image.width = width
		m.image.list.SetWidth(width)
	}
	return m
}

// sync rebuilds the active step model from the wizard.
func (m wizardModel) sync() wizardModel {
	s := m.w.Current()
	switch s.Kind {
	case wizard.StepToolTypes:
		m.types = newToolTypeStepModel(s, m.w.SupportedToolTypes())
	case wizard.StepToolImage:
		m.image = newToolImageStepModel(s, m.w.Catalog(), m.w.StatusRows(), m.width)
	}
	return m
}

// update applies step answers to the wizard. All other messages are
// forwarded to the active step's model.
func (m wizardModel) update(msg tea.Msg) (wizardModel, tea.Cmd) {
	var err error
	switch msg := msg.(type) {
	case toolTypesChosenMsg:
		err = m.w.ConfirmToolTypes(msg.selected)
	case wizardCancelMsg:
		err = m.w.Cancel()
	case imagePickedMsg:
		err = m.w.PickImage(msg.image)
	case wizardBackMsg:
		err = m.w.Back()
	default:
		return m.forward(msg)
	}
	if err != nil {
		// Stale answer for a step that is no longer active.
		return m, nil
	}

	if m.w.State() != wizard.Running {
		aborted := m.w.State() == wizard.Aborted
		return m, func() tea.Msg { return wizardDoneMsg{aborted: aborted} }
	}
	return m.sync(), nil
}

func (m wizardModel) forward(msg tea.Msg) (wizardModel, tea.Cmd) {
	if m.w.State() != wizard.Running {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.w.Current().Kind {
	case wizard.StepToolTypes:
		m.types, cmd = m.types.update(msg)
		m.w.SetRow(m.types.cursor)
	case wizard.StepToolImage:
		m.image, cmd = m.image.update(msg)
		if row := m.image.row(); row >= 0 {
			m.w.SetRow(row)
		}
	}
	return m, cmd
}

// helpKeys returns the help keymap for the active step.
func (m wizardModel) helpKeys() help.KeyMap {
	if m.w.Current().Kind == wizard.StepToolTypes {
		return toolTypeHelpKeyMap{}
	}
	return toolImageHelpKeyMap{filtering: m.image.filtering()}
}

// view renders the step indicator and the active step content.
func (m wizardModel) view() string {
	s := m.w.Current()

	var stepView string
	if s.Kind == wizard.StepToolTypes {
		stepView = m.types.view()
	} else {
		stepView = m.image.view()
	}

	content := stepView
	if indicator := renderStepIndicator(m.w.Labels(), s.Index); indicator != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, indicator, "", stepView)
	}
	return wizardContentStyle.Render(content)
}

// renderStepIndicator draws the breadcrumb strip:
//
//	Tool types → toolchain → debugger
//	             ─────────
func renderStepIndicator(labels []string, activeIdx int) string {
	if len(labels) <= 1 {
		return ""
	}

	var parts []string
	var activeLabel string

	for i, name := range labels {
		var label string
		if i == activeIdx {
			label = wizardStepActiveStyle.Render(name)
			activeLabel = name
		} else {
			label = wizardStepInactiveStyle.Render(name)
		}
		parts = append(parts, label)
	}

	sep := wizardStepSeparatorStyle.Render(" → ")
	breadcrumb := strings.Join(parts, sep)

	underline := wizardStepActiveStyle.Render(strings.Repeat("─", lipgloss.Width(activeLabel)))

	// Offset of the active label: visible width of everything before it.
	offset := 0
	sepWidth := lipgloss.Width(sep)
	for i := 0; i < activeIdx && i < len(labels); i++ {
		offset += lipgloss.Width(labels[i]) + sepWidth
	}

	return breadcrumb + "\n" + strings.Repeat(" ", offset) + underline
}
