package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"hiredesk/internal/palette"
	"hiredesk/internal/transcript"
)

// Update is the bubbletea update loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 5 // header, input, footer, margins
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = contentHeight
		}
		m.textinput.Width = m.width - 4
		m.searchinput.Width = m.width - 10
		m.initRenderer()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listsMsg:
		m.listsLoading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.candidates = msg.candidates
		m.companies = msg.companies
		return m, nil

	case doneMsg:
		// The processor already wrote the outcome into the transcript.
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if m.machine.IsOpen() {
			return m.handlePaletteKey(msg)
		}
		return m.handleChatKey(msg)
	}

	return m, nil
}

// =============================================================================
// CHAT KEYS
// =============================================================================

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+k":
		m.machine.Open(m.store.Selected())
		m.textinput.Blur()
		return m, m.loadListsCmd()

	case "enter":
		input := strings.TrimSpace(m.textinput.Value())
		if input == "" {
			return m, nil
		}
		if strings.HasPrefix(input, "/") {
			return m.handleSlashCommand(input)
		}
		return m.sendChat(input)

	default:
		var cmd tea.Cmd
		m.textinput, cmd = m.textinput.Update(msg)
		return m, cmd
	}
}

// sendChat routes a chat message through the processor, honoring the
// single-in-flight gate.
func (m Model) sendChat(input string) (tea.Model, tea.Cmd) {
	if m.processor.Busy() {
		m.transcript.Add(transcript.SenderAssistant, "⏳ Still working on the previous request...")
		m.refreshViewport()
		return m, nil
	}
	m.transcript.Add(transcript.SenderUser, input)
	m.textinput.Reset()
	m.refreshViewport()
	return m, tea.Batch(m.askCmd(input), m.spinner.Tick)
}

// =============================================================================
// PALETTE KEYS
// =============================================================================

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		wasSearch := m.machine.Step() == palette.StepSearchCandidate ||
			m.machine.Step() == palette.StepSearchCompany
		closed := m.machine.Escape()
		if wasSearch {
			// Search abandoned without a selection: the pending command
			// is orphaned and treated as cancelled.
			m.processor.CancelPending()
			m.searchinput.Reset()
			m.searchinput.Blur()
		}
		if closed {
			m.textinput.Focus()
		}
		m.refreshViewport()
		return m, nil

	case "up", "ctrl+p":
		m.machine.Move(-1, m.activeListLen())
		return m, nil

	case "down", "ctrl+n":
		m.machine.Move(1, m.activeListLen())
		return m, nil

	case "enter":
		return m.handlePaletteSelect()

	default:
		if m.machine.Step() == palette.StepSearchCandidate || m.machine.Step() == palette.StepSearchCompany {
			var cmd tea.Cmd
			m.searchinput, cmd = m.searchinput.Update(msg)
			m.machine.SetTerm(m.searchinput.Value())
			return m, cmd
		}
		return m, nil
	}
}

// activeListLen is the length of whichever list the current step navigates.
func (m Model) activeListLen() int {
	switch m.machine.Step() {
	case palette.StepInitial:
		return len(m.machine.Commands())
	case palette.StepSearchCandidate:
		return len(palette.FilterCandidates(m.candidates, m.machine.Term()))
	case palette.StepSearchCompany:
		return len(palette.FilterCompanies(m.companies, m.machine.Term()))
	default:
		return 0
	}
}

func (m Model) handlePaletteSelect() (tea.Model, tea.Cmd) {
	switch m.machine.Step() {
	case palette.StepInitial:
		cmds := m.machine.Commands()
		if len(cmds) == 0 {
			return m, nil
		}
		chosen := cmds[m.machine.Index(len(cmds))]

		switch chosen.Action {
		case palette.ActionOpenSearch:
			m.machine.EnterSearch(chosen.SearchStep)
			m.searchinput.Reset()
			m.searchinput.Focus()
			return m, m.loadListsCmd()

		case palette.ActionPrefill:
			m.machine.Close()
			m.textinput.SetValue(chosen.Prefill)
			m.textinput.CursorEnd()
			m.textinput.Focus()
			return m, nil

		default: // ActionRun
			decision := m.processor.Resolve(chosen)
			if decision.ExecuteNow && decision.Entity != nil {
				m.machine.Close()
				m.textinput.Focus()
				m.refreshViewport()
				return m, tea.Batch(m.executeCmd(chosen.ID, decision.Entity), m.spinner.Tick)
			}
			if decision.Guidance != "" {
				m.transcript.Add(transcript.SenderAssistant, decision.Guidance)
			}
			m.machine.EnterSearch(decision.OpenStep)
			m.searchinput.Reset()
			m.searchinput.Focus()
			m.refreshViewport()
			return m, m.loadListsCmd()
		}

	case palette.StepSearchCandidate:
		list := palette.FilterCandidates(m.candidates, m.machine.Term())
		if len(list) == 0 {
			return m, nil
		}
		chosen := list[m.machine.Index(len(list))]
		m.store.SelectCandidate(chosen)
		return m.finishSelection(chosen.DisplayName())

	case palette.StepSearchCompany:
		list := palette.FilterCompanies(m.companies, m.machine.Term())
		if len(list) == 0 {
			return m, nil
		}
		chosen := list[m.machine.Index(len(list))]
		m.store.SelectCompany(chosen)
		return m.finishSelection(chosen.DisplayName())
	}
	return m, nil
}

// finishSelection closes the palette after an entity pick and runs the
// pending command if one is waiting for the entity.
func (m Model) finishSelection(name string) (tea.Model, tea.Cmd) {
	m.machine.Close()
	m.searchinput.Reset()
	m.searchinput.Blur()
	m.textinput.Focus()

	if pending := m.processor.Pending(); pending != "" {
		selected := m.store.Selected()
		m.refreshViewport()
		return m, tea.Batch(m.executeCmd(pending, selected), m.spinner.Tick)
	}

	m.transcript.Add(transcript.SenderAssistant,
		"Context set to **"+name+"**. Commands and questions now use it.")
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

func (m Model) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]
	m.textinput.Reset()

	switch cmd {
	case "/analyze_cv":
		// Not a UI command; the intent router owns this prefix.
		return m.sendChat(input)

	case "/quit", "/exit", "/q":
		return m, tea.Quit

	case "/clear":
		m.transcript.Clear()
		m.refreshViewport()
		return m, nil

	case "/context":
		m.transcript.Add(transcript.SenderAssistant, "Current context: "+m.contextLabel())
		m.refreshViewport()
		return m, nil

	case "/clear-context":
		m.store.Clear()
		// Clearing the entity orphans any pending command.
		m.processor.CancelPending()
		m.transcript.Add(transcript.SenderAssistant, "Context cleared.")
		m.refreshViewport()
		return m, nil

	case "/help":
		help := `## Commands

| Command | Description |
|---------|-------------|
| Ctrl+K | Open the command palette |
| /context | Show the selected candidate/company |
| /clear-context | Drop the selected entity |
| /clear | Clear the chat history |
| /help | This message |
| /quit | Exit |

Free-text tips: start a message with ` + "`analyze cv <text>`" + ` for structured
CV analysis; mention "job description" or "interview questions" for those
generators. With a candidate or company selected, answers use it as context.`
		m.transcript.Add(transcript.SenderAssistant, help)
		m.refreshViewport()
		return m, nil

	default:
		m.transcript.Add(transcript.SenderAssistant, "Unknown command `"+cmd+"`. Try `/help`.")
		m.refreshViewport()
		return m, nil
	}
}
