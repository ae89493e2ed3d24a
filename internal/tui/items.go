package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/axemsolutions/dem/internal/core"
)

// imageItem wraps a catalog entry for the tool-image list.
type imageItem struct {
	entry core.CatalogEntry
}

func (i imageItem) FilterValue() string { return i.entry.Image }

// imageDelegate renders catalog entries as: > axemsolutions/gcc:12  local
type imageDelegate struct{}

func (d imageDelegate) Height() int                             { return 1 }
func (d imageDelegate) Spacing() int                            { return 0 }
func (d imageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d imageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(imageItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	indicator := "  "
	if isSelected {
		indicator = "> "
	}

	badge := it.entry.Availability.String()
	// Leave room for the indicator and the badge.
	room := m.Width() - len(indicator) - len(badge) - 2
	name := it.entry.Image
	if room > 0 {
		name = ansi.Truncate(name, room, "…")
	}

	style := normalItemStyle
	if isSelected {
		style = selectedItemStyle
	}
	_, _ = fmt.Fprint(w, indicator+style.Render(name)+"  "+availabilityStyle(it.entry.Availability).Render(badge))
}

// catalogToItems converts the merged catalog to list items.
func catalogToItems(catalog []core.CatalogEntry) []list.Item {
	items := make([]list.Item, len(catalog))
	for i, e := range catalog {
		items[i] = imageItem{entry: e}
	}
	return items
}
