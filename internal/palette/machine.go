package palette

import (
	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

// Step is the palette's current screen.
type Step int

const (
	StepNone Step = iota // palette closed / no step to open
	StepInitial
	StepSearchCandidate
	StepSearchCompany
)

func (s Step) String() string {
	switch s {
	case StepInitial:
		return "initial"
	case StepSearchCandidate:
		return "search_candidate"
	case StepSearchCompany:
		return "search_company"
	default:
		return "none"
	}
}

// RequiredKind maps a search step to the entity kind it selects.
func (s Step) RequiredKind() entity.Kind {
	switch s {
	case StepSearchCandidate:
		return entity.KindCandidate
	case StepSearchCompany:
		return entity.KindCompany
	default:
		return ""
	}
}

// SearchStepFor returns the search step for a required kind. RequiresEither
// defaults to candidate search.
func SearchStepFor(req Requires) Step {
	switch req {
	case RequiresCompany:
		return StepSearchCompany
	default:
		return StepSearchCandidate
	}
}

// Machine tracks the palette's step, command list, search term, and
// selection index. It holds no entity data; the UI feeds it list lengths.
type Machine struct {
	step     Step
	commands []Command
	term     string
	index    int
}

// NewMachine returns a closed machine.
func NewMachine() *Machine {
	return &Machine{step: StepNone}
}

// Open resets to the initial step with a command list rebuilt fresh, so
// commands reflect the selection at open time rather than a stale snapshot.
func (m *Machine) Open(selected entity.Entity) {
	m.step = StepInitial
	m.commands = BuildCommands(selected)
	m.term = ""
	m.index = 0
	logging.PaletteDebug("palette opened: %d commands, selected=%v", len(m.commands), selected != nil)
}

// Close shuts the palette.
func (m *Machine) Close() {
	m.step = StepNone
	m.commands = nil
	m.term = ""
	m.index = 0
}

// IsOpen reports whether the palette is showing.
func (m *Machine) IsOpen() bool { return m.step != StepNone }

// Step returns the current step.
func (m *Machine) Step() Step { return m.step }

// Commands returns the current command list (initial step only).
func (m *Machine) Commands() []Command { return m.commands }

// EnterSearch moves into a search step, clearing the term and selection.
func (m *Machine) EnterSearch(step Step) {
	if step != StepSearchCandidate && step != StepSearchCompany {
		return
	}
	m.step = step
	m.term = ""
	m.index = 0
	logging.PaletteDebug("palette step -> %s", step)
}

// Escape handles the escape key: a search step returns to initial (the
// palette stays open); the initial step closes the palette. Returns true
// when the palette closed.
func (m *Machine) Escape() bool {
	switch m.step {
	case StepSearchCandidate, StepSearchCompany:
		m.step = StepInitial
		m.term = ""
		m.index = 0
		logging.PaletteDebug("palette step -> initial (escape)")
		return false
	default:
		m.Close()
		return true
	}
}

// SetTerm updates the search term and resets the selection index.
func (m *Machine) SetTerm(term string) {
	if term == m.term {
		return
	}
	m.term = term
	m.index = 0
}

// Term returns the current search term.
func (m *Machine) Term() string { return m.term }

// Move shifts the selection index by delta, wrapping modulo listLen.
// A no-op when the active list is empty.
func (m *Machine) Move(delta, listLen int) {
	if listLen <= 0 {
		return
	}
	m.index = ((m.index+delta)%listLen + listLen) % listLen
}

// Index returns the selection index, clamped to the list length in case the
// active list shrank under the cursor (e.g. the filter narrowed).
func (m *Machine) Index(listLen int) int {
	if listLen <= 0 {
		return 0
	}
	if m.index >= listLen {
		return listLen - 1
	}
	return m.index
}
