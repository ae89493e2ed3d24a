package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/axemsolutions/dem/internal/core"
	"github.com/axemsolutions/dem/internal/wizard"
)

// imagePickedMsg is emitted when the user picks an image from the catalog.
type imagePickedMsg struct {
	image string
}

const maxImageListHeight = 12

// toolImageStepModel lists the catalog for one tool type, next to a status
// table of every chosen tool type and its current image.
type toolImageStepModel struct {
	title    string
	toolType string
	catalog  []core.CatalogEntry
	status   []wizard.StatusRow
	list     list.Model
	width    int
}

func newToolImageStepModel(s wizard.Step, catalog []core.CatalogEntry, status []wizard.StatusRow, width int) toolImageStepModel {
	// One extra line for the paginator.
	height := len(catalog) + 1
	if height > maxImageListHeight {
		height = maxImageListHeight
	}

	l := list.New(catalogToItems(catalog), imageDelegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	if s.Row < len(catalog) {
		l.Select(s.Row)
	}

	return toolImageStepModel{
		title:    s.Title,
		toolType: s.ToolType,
		catalog:  catalog,
		status:   status,
		list:     l,
		width:    width,
	}
}

// row returns the catalog index of the highlighted image, or -1.
func (m toolImageStepModel) row() int {
	it, ok := m.list.SelectedItem().(imageItem)
	if !ok {
		return -1
	}
	return core.CatalogIndex(m.catalog, it.entry.Image)
}

func (m toolImageStepModel) filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m toolImageStepModel) update(msg tea.Msg) (toolImageStepModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		switch {
		case key.Matches(keyMsg, keys.Enter):
			it, ok := m.list.SelectedItem().(imageItem)
			if !ok {
				return m, nil
			}
			image := it.entry.Image
			return m, func() tea.Msg { return imagePickedMsg{image: image} }
		case key.Matches(keyMsg, keys.Back) && m.list.FilterState() == list.Unfiltered:
			return m, func() tea.Msg { return wizardBackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m toolImageStepModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.catalog) == 0 {
		b.WriteString(errorStyle.Render("No tool images are available."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderStatus draws the selection table shown under the image list.
func (m toolImageStepModel) renderStatus() string {
	var b strings.Builder
	b.WriteString(renderSectionHeader("SELECTION"))
	for _, r := range m.status {
		b.WriteString("\n")

		image := r.Image
		if m.width > 20 {
			image = ansi.Truncate(image, m.width-20, "…")
		}
		style := normalItemStyle
		if r.ToolType == m.toolType {
			style = selectedItemStyle
		} else if r.Image == wizard.Unassigned {
			style = mutedStyle
		}
		b.WriteString(statusKeyStyle.Render(r.ToolType) + style.Render(image))
	}
	return b.String()
}
