// Package tui implements the terminal user interface of `dem modify`.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/axemsolutions/dem/internal/core"
	"github.com/axemsolutions/dem/internal/wizard"
)

const overwritePrompt = "Are you sure to overwrite the Development Environment?"

type modifyPhase int

const (
	phaseWizard modifyPhase = iota
	phaseDecision
	phaseName
	phaseDone
)

// ModifyResult is what the user decided in a modify session.
type ModifyResult struct {
	Aborted  bool // Wizard cancelled or interrupted; nothing to commit
	Tools    []core.Tool
	Decision core.Decision
	NewName  string // Set for core.DecisionSaveAs
}

// ModifyModel is the root Bubble Tea model of `dem modify`. It runs the
// wizard, then asks whether to overwrite the environment, save it under a
// new name or cancel. The program quits once a decision is made; read the
// outcome with Result.
type ModifyModel struct {
	width, height int

	w        *wizard.Wizard
	phase    modifyPhase
	wizard   wizardModel
	decision decisionModel
	name     namePromptModel
	help     help.Model
	result   ModifyResult
}

// NewModifyModel creates the root model for a modify session driven by w.
func NewModifyModel(w *wizard.Wizard) ModifyModel {
	h := help.New()
	h.ShortSeparator = "  |  "

	return ModifyModel{
		w:        w,
		wizard:   newWizardModel(w),
		decision: newDecisionModel(),
		name:     newNamePromptModel(),
		help:     h,
	}
}

// Result returns the outcome of the session.
func (m ModifyModel) Result() ModifyResult {
	return m.result
}

// RunModify runs the modify session for w on the terminal and returns what
// the user decided.
func RunModify(ctx context.Context, w *wizard.Wizard) (ModifyResult, error) {
	p := tea.NewProgram(NewModifyModel(w), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return ModifyResult{}, fmt.Errorf("running modify wizard: %w", err)
	}

	m, ok := finalModel.(ModifyModel)
	if !ok {
		return ModifyResult{}, fmt.Errorf("unexpected model %T", finalModel)
	}
	return m.Result(), nil
}

func (m ModifyModel) Init() tea.Cmd {
	return nil
}

func (m ModifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wizard = m.wizard.setSize(msg.Width, msg.Height)
		m.decision = m.decision.setSize(msg.Width, msg.Height-4)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Interrupt) {
			return m.abort()
		}

	case wizardDoneMsg:
		if msg.aborted {
			return m.abort()
		}
		m.result.Tools = m.w.Tools()
		m.phase = phaseDecision
		m.decision = m.decision.show(overwritePrompt)
		return m, nil

	case decisionMsg:
		m.result.Decision = msg.decision
		if msg.decision == core.DecisionSaveAs {
			m.phase = phaseName
			var cmd tea.Cmd
			m.name, cmd = m.name.show()
			return m, cmd
		}
		return m.finish()

	case nameEnteredMsg:
		m.result.NewName = msg.name
		return m.finish()

	case nameCancelledMsg:
		m.phase = phaseDecision
		m.decision = m.decision.show(overwritePrompt)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.phase {
	case phaseWizard:
		m.wizard, cmd = m.wizard.update(msg)
	case phaseDecision:
		m.decision, cmd, _ = m.decision.update(msg)
	case phaseName:
		m.name, cmd = m.name.update(msg)
	}
	return m, cmd
}

func (m ModifyModel) abort() (tea.Model, tea.Cmd) {
	m.result = ModifyResult{Aborted: true, Decision: core.DecisionCancel}
	m.phase = phaseDone
	return m, tea.Quit
}

func (m ModifyModel) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseDone
	return m, tea.Quit
}

func (m ModifyModel) View() string {
	if m.phase == phaseDone {
		return ""
	}

	header := logoStyle.Render("dem") + headerTitleStyle.Render("modify "+m.w.EnvName())

	var body string
	var km help.KeyMap
	switch m.phase {
	case phaseWizard:
		body = m.wizard.view()
		km = m.wizard.helpKeys()
	case phaseDecision:
		body = m.decision.view()
		km = decisionHelpKeyMap{}
	case phaseName:
		body = m.name.view()
		km = namePromptHelpKeyMap{}
	}

	helpBar := " " + helpStyle.Render(m.help.View(km))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", helpBar)
}
