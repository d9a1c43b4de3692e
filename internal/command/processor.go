// Package command implements the command processor: the pending-command
// slot, entity-requirement resolution, and the execute pipeline that turns a
// palette command into an intent-router call and a transcript update.
package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"hiredesk/internal/entity"
	"hiredesk/internal/intent"
	"hiredesk/internal/logging"
	"hiredesk/internal/palette"
	"hiredesk/internal/transcript"
)

// ErrBusy is returned when an AI call is already in flight.
var ErrBusy = errors.New("an AI request is already in progress")

// Decision is the outcome of resolving a chosen command against the current
// selection: either execute now with the bound entity, or surface guidance
// and open a search step.
type Decision struct {
	ExecuteNow bool
	Entity     entity.Entity
	Guidance   string
	OpenStep   palette.Step
}

// Processor owns the pending-command slot and runs resolved commands.
type Processor struct {
	mu      sync.Mutex
	pending string

	processing atomic.Bool

	store      *entity.ContextStore
	transcript *transcript.Transcript
	router     *intent.Router
}

// NewProcessor wires the processor to its collaborators.
func NewProcessor(store *entity.ContextStore, log *transcript.Transcript, router *intent.Router) *Processor {
	return &Processor{store: store, transcript: log, router: router}
}

// SetPending records a command awaiting entity binding. At most one pending
// command exists; a new one replaces the old.
func (p *Processor) SetPending(commandID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = commandID
}

// Pending returns the pending command id, or "".
func (p *Processor) Pending() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// takePending clears and returns the slot in one step.
func (p *Processor) takePending() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.pending
	p.pending = ""
	return id
}

// Busy reports whether an AI call is in flight.
func (p *Processor) Busy() bool {
	return p.processing.Load()
}

// Resolve applies the entity-requirement rules to a chosen command:
//  1. No requirement: execute immediately, without consulting the selection.
//  2. Otherwise the command id becomes pending.
//  3. A matching (or either-satisfying) selection executes immediately.
//  4. A selection of the wrong kind yields guidance plus the matching search.
//  5. No selection yields a prompt naming the required kind; "either"
//     defaults to candidate search.
func (p *Processor) Resolve(cmd palette.Command) Decision {
	if cmd.Requires == palette.RequiresNone {
		return Decision{ExecuteNow: true}
	}

	p.SetPending(cmd.ID)
	selected := p.store.Selected()

	if selected != nil {
		if cmd.Requires == palette.RequiresEither || entity.Matches(selected, entity.Kind(cmd.Requires)) {
			return Decision{ExecuteNow: true, Entity: selected}
		}
		logging.Command("resolve %s: wrong entity kind selected (%s), opening %s search",
			cmd.ID, selected.EntityKind(), cmd.Requires)
		return Decision{
			Guidance: fmt.Sprintf("**%s** needs a %s. Pick one to continue.",
				humanizeID(cmd.ID), cmd.Requires),
			OpenStep: palette.SearchStepFor(cmd.Requires),
		}
	}

	required := string(cmd.Requires)
	if cmd.Requires == palette.RequiresEither {
		required = "candidate or company"
	}
	logging.Command("resolve %s: no entity selected, opening search (requires %s)", cmd.ID, required)
	return Decision{
		Guidance: fmt.Sprintf("Pick a %s for **%s**.", required, humanizeID(cmd.ID)),
		OpenStep: palette.SearchStepFor(cmd.Requires),
	}
}

// Execute runs a command against a bound entity: it posts a loading message,
// consumes the pending slot, synthesizes the query, routes it, and replaces
// the loading message with the answer or an error. The processing flag is
// cleared on every path.
func (p *Processor) Execute(ctx context.Context, commandID string, ent entity.Entity) (string, error) {
	if !p.processing.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer p.processing.Store(false)

	gen := p.store.Generation()
	msgID := p.transcript.AddLoading(fmt.Sprintf("Working on %s for %s...", humanizeID(commandID), ent.DisplayName()))
	p.takePending()

	query := BuildQuery(commandID, ent)
	logging.Command("execute %s: query=%q entity=%s", commandID, query, ent.EntityID())

	resp, err := p.router.Respond(ctx, query, ent)

	if p.store.Generation() != gen {
		// The selection changed mid-flight; never apply a stale answer.
		logging.Command("execute %s: dropped stale response (generation moved)", commandID)
		p.transcript.Resolve(msgID, "Context changed while generating; response discarded.", nil)
		return msgID, nil
	}

	if err != nil {
		p.transcript.Resolve(msgID, failureMessage(commandID, err), nil)
		return msgID, err
	}

	p.transcript.Resolve(msgID, resp.Content, transcript.RefFor(ent))
	return msgID, nil
}

// Ask routes a free-text chat query with the current selection as context,
// using the same loading-message and stale-drop discipline as Execute.
func (p *Processor) Ask(ctx context.Context, input string) (string, error) {
	if !p.processing.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer p.processing.Store(false)

	gen := p.store.Generation()
	selected := p.store.Selected()
	msgID := p.transcript.AddLoading("Thinking...")

	resp, err := p.router.Respond(ctx, input, selected)

	if p.store.Generation() != gen {
		logging.Command("ask: dropped stale response (generation moved)")
		p.transcript.Resolve(msgID, "Context changed while generating; response discarded.", nil)
		return msgID, nil
	}

	if err != nil {
		p.transcript.Resolve(msgID, fmt.Sprintf("❌ Something went wrong: %s", errorDetail(err)), nil)
		return msgID, err
	}

	p.transcript.Resolve(msgID, resp.Content, transcript.RefFor(resp.Entity))
	return msgID, nil
}

// CancelPending handles an abandoned entity search: the pending command is
// surfaced as a cancellation notice and the slot cleared.
func (p *Processor) CancelPending() {
	id := p.takePending()
	if id == "" {
		return
	}
	logging.Command("cancelled pending command %s", id)
	p.transcript.Add(transcript.SenderAssistant,
		fmt.Sprintf("Cancelled %s. Open the palette to pick an entity and try again.", humanizeID(id)))
}

func failureMessage(commandID string, err error) string {
	return fmt.Sprintf("❌ Couldn't complete %s: %s", humanizeID(commandID), errorDetail(err))
}

func errorDetail(err error) string {
	if err == nil || err.Error() == "" {
		return "Please try again."
	}
	return err.Error()
}
