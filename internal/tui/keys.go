package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the TUI.
type keyMap struct {
	Interrupt key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Filter    key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
}

var keys = keyMap{
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/up", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/down", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "toggle"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all/none"),
	),
}

// ---------------------------------------------------------------------------
// Per-step help keymaps for the help.Model component.
// Each implements help.KeyMap (ShortHelp + FullHelp).
// ---------------------------------------------------------------------------

// toolTypeHelpKeyMap is shown on the tool-type step.
type toolTypeHelpKeyMap struct{}

func (k toolTypeHelpKeyMap) ShortHelp() []key.Binding {
	cancel := keys.Back
	cancel.SetHelp("esc", "cancel")
	return []key.Binding{
		keys.Up, keys.Down, keys.Toggle, keys.ToggleAll,
		keys.Enter, cancel,
	}
}

func (k toolTypeHelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// toolImageHelpKeyMap is shown on a tool-image step.
type toolImageHelpKeyMap struct {
	filtering bool
}

func (k toolImageHelpKeyMap) ShortHelp() []key.Binding {
	if k.filtering {
		return []key.Binding{keys.Enter, keys.Back}
	}
	return []key.Binding{
		keys.Up, keys.Down, keys.Filter, keys.Enter, keys.Back,
	}
}

func (k toolImageHelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// namePromptHelpKeyMap is shown while typing the save-as name.
type namePromptHelpKeyMap struct{}

func (k namePromptHelpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Enter, keys.Back}
}

func (k namePromptHelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
