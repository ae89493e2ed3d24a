// Package wizard implements the navigation state machine behind
// `dem modify`: a tool-type step followed by one tool-image step per chosen
// tool type, with back/forward navigation that remembers earlier choices.
//
// The wizard has no UI. A front end renders Current() and feeds the user's
// answers back through ConfirmToolTypes, Cancel, PickImage and Back until
// State() leaves Running.
package wizard

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/axemsolutions/dem/internal/core"
)

// StepKind tags the variant of a step.
type StepKind int

const (
	StepToolTypes StepKind = iota // Choose which tool types the environment has
	StepToolImage                 // Choose the image for one tool type
)

func (k StepKind) String() string {
	if k == StepToolTypes {
		return "tool types"
	}
	return "tool image"
}

// State is the lifecycle of a wizard run.
type State int

const (
	Running State = iota
	Complete
	Aborted
)

var (
	// ErrWrongStep is returned when an answer does not fit the active step.
	ErrWrongStep = errors.New("answer does not match the active step")

	// ErrFinished is returned when answering a wizard that is not running.
	ErrFinished = errors.New("wizard is not running")
)

// toolTypeState is the remembered state of the tool-type step.
type toolTypeState struct {
	checked []string
	row     int
}

// toolImageState is the remembered state of one tool-image step.
type toolImageState struct {
	toolTypes []string // Rows of the status table
	row       int      // Highlighted catalog row
}

// step is one slot of the panel stack. Exactly one payload is set,
// according to kind.
type step struct {
	kind  StepKind
	types *toolTypeState
	image *toolImageState
}

// Step is a snapshot of the active step for rendering.
type Step struct {
	Kind     StepKind
	Index    int    // Position in the panel stack
	Title    string // Prompt shown above the menu
	Row      int    // Row to highlight when the step is shown
	ToolType string // StepToolImage: tool type being assigned
	Cursor   int    // StepToolImage: position of ToolType in the chosen list

	Checked   []string // StepToolTypes: tool types to pre-check
	ToolTypes []string // StepToolImage: chosen tool types, for the status table
}

// StatusRow is one line of the selection status table.
type StatusRow struct {
	ToolType string
	Image    string // Image identifier or Unassigned
}

// Wizard drives one modification session for a Development Environment.
type Wizard struct {
	envName   string
	supported []string
	catalog   []core.CatalogEntry
	logger    *log.Logger

	steps     []step // Panel stack; grows lazily, never shrinks
	active    int    // Index into steps
	cursor    int    // Index into chosen
	chosen    []string
	selection Selection
	order     []string // Tool types in the order they entered the selection
	state     State
}

// New starts a wizard for env. The tool-type step is pre-checked with the
// environment's current tool types and the selection is seeded with their
// images. The catalog is taken from p's image inventory.
func New(p *core.Platform, env *core.DevEnv) *Wizard {
	w := &Wizard{
		envName:   env.Name,
		supported: core.SupportedToolTypes(),
		catalog:   p.Images.Catalog(),
		logger:    p.Logger,
		selection: make(Selection, len(env.Tools)),
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	var current []string
	for _, t := range env.Tools {
		current = append(current, t.Type)
		w.assign(t.Type, t.Image())
	}

	w.steps = []step{{
		kind:  StepToolTypes,
		types: &toolTypeState{checked: w.inSupportedOrder(current)},
	}}
	return w
}

// EnvName returns the name of the environment being modified.
func (w *Wizard) EnvName() string {
	return w.envName
}

// State reports whether the wizard is running, complete or aborted.
func (w *Wizard) State() State {
	return w.state
}

// Catalog returns the merged tool image catalog the image steps offer.
func (w *Wizard) Catalog() []core.CatalogEntry {
	return w.catalog
}

// SupportedToolTypes returns the tool types offered on the tool-type step.
func (w *Wizard) SupportedToolTypes() []string {
	return w.supported
}

// Selection returns a copy of the current selection.
func (w *Wizard) Selection() Selection {
	return w.selection.Clone()
}

// Depth returns the number of materialized steps in the panel stack.
func (w *Wizard) Depth() int {
	return len(w.steps)
}

// Labels names the steps of the current flow: the tool-type step followed
// by one entry per chosen tool type.
func (w *Wizard) Labels() []string {
	labels := make([]string, 0, len(w.chosen)+1)
	labels = append(labels, "Tool types")
	return append(labels, w.chosen...)
}

// Current returns a snapshot of the active step.
func (w *Wizard) Current() Step {
	s := w.steps[w.active]
	switch s.kind {
	case StepToolTypes:
		return Step{
			Kind:    StepToolTypes,
			Index:   w.active,
			Title:   fmt.Sprintf("What kind of tools would you like to include in %s?", w.envName),
			Row:     s.types.row,
			Checked: append([]string(nil), s.types.checked...),
		}
	default:
		toolType := w.chosen[w.cursor]
		return Step{
			Kind:      StepToolImage,
			Index:     w.active,
			Title:     "Select tool image for type " + toolType,
			Row:       s.image.row,
			ToolType:  toolType,
			Cursor:    w.cursor,
			ToolTypes: append([]string(nil), s.image.toolTypes...),
		}
	}
}

// SetRow remembers the highlighted row of the active step so it is
// restored when the user returns to it.
func (w *Wizard) SetRow(row int) {
	if row < 0 {
		row = 0
	}
	s := w.steps[w.active]
	switch s.kind {
	case StepToolTypes:
		s.types.row = row
	case StepToolImage:
		s.image.row = row
	}
}

// StatusRows lists every chosen tool type with its current selection.
func (w *Wizard) StatusRows() []StatusRow {
	rows := make([]StatusRow, 0, len(w.chosen))
	for _, t := range w.chosen {
		img, ok := w.selection.Assigned(t)
		if !ok {
			img = Unassigned
		}
		rows = append(rows, StatusRow{ToolType: t, Image: img})
	}
	return rows
}

// Cancel aborts the wizard from the tool-type step.
func (w *Wizard) Cancel() error {
	if err := w.expect(StepToolTypes); err != nil {
		return err
	}
	w.state = Aborted
	w.logger.Debug("wizard cancelled", "env", w.envName)
	return nil
}

// ConfirmToolTypes completes the tool-type step with the chosen subset.
// Unknown types are ignored and the rest are ordered like
// SupportedToolTypes. Confirming an empty subset completes the wizard.
func (w *Wizard) ConfirmToolTypes(selected []string) error {
	if err := w.expect(StepToolTypes); err != nil {
		return err
	}
	w.completeToolTypes(w.inSupportedOrder(selected))
	return nil
}

// PickImage completes the active tool-image step with an image from the
// catalog.
func (w *Wizard) PickImage(image string) error {
	if err := w.expect(StepToolImage); err != nil {
		return err
	}
	if core.CatalogIndex(w.catalog, image) < 0 {
		return fmt.Errorf("image %q is not in the catalog", image)
	}
	w.completeToolImage(image, false)
	return nil
}

// Back leaves the active tool-image step without choosing an image.
func (w *Wizard) Back() error {
	if err := w.expect(StepToolImage); err != nil {
		return err
	}
	w.completeToolImage("", true)
	return nil
}

func (w *Wizard) expect(kind StepKind) error {
	if w.state != Running {
		return ErrFinished
	}
	if got := w.steps[w.active].kind; got != kind {
		return fmt.Errorf("%w: active step is %s, not %s", ErrWrongStep, got, kind)
	}
	return nil
}

// completeToolTypes is the transition out of the tool-type step.
func (w *Wizard) completeToolTypes(selected []string) {
	w.steps[0].types.checked = selected
	w.chosen = selected
	w.selection.prune(selected)
	w.order = keepOrdered(w.order, w.selection)

	if len(selected) == 0 {
		w.state = Complete
		w.logger.Debug("wizard complete", "env", w.envName, "tools", 0)
		return
	}

	if len(w.steps) < 2 {
		w.steps = append(w.steps, newToolImageStep())
	}
	w.cursor = 0
	w.enter(1)
}

// completeToolImage is the transition out of a tool-image step.
func (w *Wizard) completeToolImage(image string, back bool) {
	toolType := w.chosen[w.cursor]

	if back {
		w.assign(toolType, Unassigned)
		if w.cursor > 0 {
			w.cursor--
		}
		w.enter(w.active - 1)
		return
	}

	w.assign(toolType, image)
	if w.cursor == len(w.chosen)-1 {
		w.state = Complete
		w.logger.Debug("wizard complete", "env", w.envName, "tools", len(w.chosen))
		return
	}

	w.cursor++
	next := w.active + 1
	if next >= len(w.steps) {
		w.steps = append(w.steps, newToolImageStep())
	}
	w.enter(next)
}

// enter makes idx the active step, refreshing a tool-image step's display
// state from the selection.
func (w *Wizard) enter(idx int) {
	w.active = idx
	s := w.steps[idx]
	if s.kind == StepToolImage {
		s.image.toolTypes = append([]string(nil), w.chosen...)
		if img, ok := w.selection.Assigned(w.chosen[w.cursor]); ok {
			if row := core.CatalogIndex(w.catalog, img); row >= 0 {
				s.image.row = row
			}
		}
	}
	w.logger.Debug("wizard step", "index", idx, "kind", s.kind, "cursor", w.cursor)
}

// assign records image for toolType. A tool type new to the selection goes
// to the end of the tool order; a reassigned one keeps its place.
func (w *Wizard) assign(toolType, image string) {
	if _, ok := w.selection[toolType]; !ok {
		w.order = append(w.order, toolType)
	}
	w.selection[toolType] = image
}

// keepOrdered drops the tool types that left the selection from order.
func keepOrdered(order []string, sel Selection) []string {
	out := order[:0]
	for _, t := range order {
		if _, ok := sel[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func newToolImageStep() step {
	return step{kind: StepToolImage, image: &toolImageState{}}
}

// inSupportedOrder filters types to supported ones, dropping duplicates,
// in SupportedToolTypes order.
func (w *Wizard) inSupportedOrder(types []string) []string {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	out := make([]string, 0, len(types))
	for _, t := range w.supported {
		if want[t] {
			out = append(out, t)
		}
	}
	return out
}

// Tools builds the environment's new tool list from the selection. Tools
// the environment already had keep their stored order and newly added tool
// types follow in the order they were assigned. Unassigned tool types are
// skipped. Identifiers always come from the catalog, so a malformed one
// panics.
func (w *Wizard) Tools() []core.Tool {
	tools := make([]core.Tool, 0, len(w.order))
	for _, t := range w.order {
		img, ok := w.selection.Assigned(t)
		if !ok {
			continue
		}
		ref := core.MustParseImageRef(img)
		tools = append(tools, core.Tool{
			Type:         t,
			ImageName:    ref.Name,
			ImageVersion: ref.Tag,
		})
	}
	return tools
}
