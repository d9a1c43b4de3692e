package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

// Messages for tea updates.
type (
	// listsMsg carries freshly loaded directory lists for palette search.
	listsMsg struct {
		candidates []entity.Candidate
		companies  []entity.Company
		err        error
	}

	// doneMsg signals that an AI request finished; the transcript has
	// already been updated by the processor.
	doneMsg struct {
		err error
	}
)

// loadListsCmd fetches both directory lists through the deduplicating loader.
func (m Model) loadListsCmd() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx := context.Background()
		candidates, err := loader.Candidates(ctx)
		if err != nil {
			return listsMsg{err: err}
		}
		companies, err := loader.Companies(ctx)
		if err != nil {
			return listsMsg{err: err}
		}
		return listsMsg{candidates: candidates, companies: companies}
	}
}

// askCmd routes a free-text chat query in the background.
func (m Model) askCmd(input string) tea.Cmd {
	proc := m.processor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := proc.Ask(ctx, input)
		if err != nil {
			logging.Session("ask failed: %v", err)
		}
		return doneMsg{err: err}
	}
}

// executeCmd runs a palette command with its bound entity in the background.
func (m Model) executeCmd(commandID string, ent entity.Entity) tea.Cmd {
	proc := m.processor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := proc.Execute(ctx, commandID, ent)
		if err != nil {
			logging.Session("execute %s failed: %v", commandID, err)
		}
		return doneMsg{err: err}
	}
}
