// Package chat provides the interactive TUI chat interface for hiredesk:
// the transcript view, the chat input, and the Ctrl+K command palette.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"hiredesk/internal/backend"
	"hiredesk/internal/command"
	"hiredesk/internal/config"
	"hiredesk/internal/directory"
	"hiredesk/internal/entity"
	"hiredesk/internal/intent"
	"hiredesk/internal/logging"
	"hiredesk/internal/palette"
	"hiredesk/internal/transcript"
)

const requestTimeout = 5 * time.Minute

// Model is the bubbletea model for the chat interface.
type Model struct {
	// UI components
	textinput   textinput.Model
	searchinput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	renderer    *glamour.TermRenderer
	styles      Styles

	// Layout
	width  int
	height int
	ready  bool

	// Engine
	cfg        *config.Config
	workspace  string
	store      *entity.ContextStore
	transcript *transcript.Transcript
	processor  *command.Processor
	loader     *directory.Loader
	machine    *palette.Machine

	// Palette search data
	candidates   []entity.Candidate
	companies    []entity.Company
	listsLoading bool

	err error
}

// New builds the chat model and its engine collaborators.
func New(cfg *config.Config, workspace string, store *directory.Store) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Ask me anything... (Ctrl+K for commands, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 4096

	si := textinput.New()
	si.Placeholder = "Type to filter..."
	si.Prompt = "🔍 "
	si.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles(cfg.UI.Theme)
	ti.PromptStyle = styles.Prompt
	sp.Style = styles.Spinner

	ctxStore := entity.NewContextStore()
	log := transcript.New()

	client, err := backend.NewClientFromConfig(context.Background(), cfg.LLM)
	if err != nil {
		logging.Get(logging.CategoryBoot).Warn("backend client unavailable: %v", err)
		client = backend.NewOpenAICompatClient(backend.OpenAIConfig{})
		log.Add(transcript.SenderAssistant,
			"⚠️ No AI backend configured. Set `HIREDESK_API_KEY` (or `GEMINI_API_KEY`/`OPENAI_API_KEY`) "+
				"or edit `.hiredesk/config.yaml`, then restart.")
	}
	router := intent.NewRouter(backend.NewService(client))
	proc := command.NewProcessor(ctxStore, log, router)

	log.Add(transcript.SenderAssistant,
		"👋 Welcome to **hiredesk**. Press `Ctrl+K` to open the command palette, or just ask. "+
			"Type `/help` for commands.")

	return Model{
		textinput:    ti,
		searchinput:  si,
		spinner:      sp,
		styles:       styles,
		cfg:          cfg,
		workspace:    workspace,
		store:        ctxStore,
		transcript:   log,
		processor:    proc,
		loader:       directory.NewLoader(store),
		machine:      palette.NewMachine(),
		listsLoading: true,
	}, nil
}

// Init starts the spinner and warms the directory lists.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadListsCmd())
}

// contextLabel renders the selected entity for the header.
func (m Model) contextLabel() string {
	selected := m.store.Selected()
	if selected == nil {
		return "no context"
	}
	switch selected.EntityKind() {
	case entity.KindCandidate:
		return fmt.Sprintf("👤 %s", selected.DisplayName())
	case entity.KindCompany:
		return fmt.Sprintf("🏢 %s", selected.DisplayName())
	}
	return selected.DisplayName()
}

// initRenderer (re)builds the glamour renderer for the current width.
func (m *Model) initRenderer() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	style := glamour.WithStandardStyle("dark")
	if m.cfg.UI.Theme == "light" {
		style = glamour.WithStandardStyle("light")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err == nil {
		m.renderer = renderer
	}
}
