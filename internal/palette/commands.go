// Package palette implements the command palette: the context-sensitive
// command list, its search-step state machine, and the entity filters.
package palette

import (
	"fmt"
	"strings"

	"hiredesk/internal/entity"
)

// Command ids. Several ids double as intent-router keywords via the command
// processor's query synthesis, so they are stable strings rather than ints.
const (
	CmdSearchCandidate     = "search_candidate"
	CmdSearchCompany       = "search_company"
	CmdAnalyzeCV           = "analyze_cv"
	CmdGenerateEmail       = "generate_email"
	CmdGenerateSuggestions = "generate_suggestions"
	CmdCandidateFeedback   = "generate_candidate_feedback"
	CmdInterviewQuestions  = "generate_interview_questions"
	CmdJobDescription      = "generate_job_description"
	CmdOpenChat            = "open_chat"
)

// Requires states what entity kind, if any, must be bound before a command
// can run.
type Requires string

const (
	RequiresNone      Requires = ""
	RequiresCandidate Requires = Requires(entity.KindCandidate)
	RequiresCompany   Requires = Requires(entity.KindCompany)
	RequiresEither    Requires = "either"
)

// ActionKind is the explicit action a command performs when selected.
// Actions are data, not closures, so the palette is testable without a UI.
type ActionKind int

const (
	// ActionRun executes the command through the command processor,
	// binding an entity first if Requires demands one.
	ActionRun ActionKind = iota
	// ActionOpenSearch transitions the palette into a search step.
	ActionOpenSearch
	// ActionPrefill closes the palette and seeds the chat input with a
	// template the user completes (context-free commands).
	ActionPrefill
)

// Command is a static descriptor for one palette entry.
type Command struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Requires    Requires
	Action      ActionKind
	SearchStep  Step   // for ActionOpenSearch
	Prefill     string // for ActionPrefill
}

// BuildCommands returns the palette command list for the current selection.
// It is a pure function: commands are regenerated, never mutated, because
// several labels embed the selected entity's name.
func BuildCommands(selected entity.Entity) []Command {
	if selected == nil {
		return baseCommands("Search candidates", "Search companies")
	}

	name := selected.DisplayName()
	var cmds []Command

	switch selected.EntityKind() {
	case entity.KindCandidate:
		cmds = append(cmds,
			Command{
				ID:          CmdCandidateFeedback,
				Label:       fmt.Sprintf("Feedback on %s", name),
				Description: "Generate structured recruiter feedback",
				Icon:        "📝",
				Requires:    RequiresCandidate,
				Action:      ActionRun,
			},
			Command{
				ID:          CmdInterviewQuestions,
				Label:       fmt.Sprintf("Interview questions for %s", name),
				Description: "Questions tailored to the candidate's position",
				Icon:        "❓",
				Requires:    RequiresCandidate,
				Action:      ActionRun,
			},
		)
	case entity.KindCompany:
		cmds = append(cmds,
			Command{
				ID:          CmdJobDescription,
				Label:       fmt.Sprintf("Job description at %s", name),
				Description: "Draft a description for a role at the company",
				Icon:        "📄",
				Requires:    RequiresCompany,
				Action:      ActionRun,
			},
			Command{
				ID:          CmdInterviewQuestions,
				Label:       fmt.Sprintf("Interview questions for a role at %s", name),
				Description: "Questions for a role at the company",
				Icon:        "❓",
				Requires:    RequiresCompany,
				Action:      ActionRun,
			},
		)
	}

	cmds = append(cmds,
		Command{
			ID:          CmdGenerateEmail,
			Label:       fmt.Sprintf("Draft email to %s", name),
			Description: "Generate an outreach email",
			Icon:        "✉️",
			Requires:    RequiresEither,
			Action:      ActionRun,
		},
		Command{
			ID:          CmdGenerateSuggestions,
			Label:       fmt.Sprintf("Suggestions for %s", name),
			Description: "Suggestions for working with this contact",
			Icon:        "💡",
			Requires:    RequiresEither,
			Action:      ActionRun,
		},
		Command{
			ID:          CmdOpenChat,
			Label:       fmt.Sprintf("Chat about %s", name),
			Description: "Ask anything with this entity as context",
			Icon:        "💬",
			Requires:    RequiresEither,
			Action:      ActionRun,
		},
	)

	// Search commands come last, re-labeled as switch-context.
	cmds = append(cmds, baseCommands("Switch candidate", "Switch company")[:2]...)
	return cmds
}

// baseCommands is the no-entity list: the two search commands plus the
// context-free generators.
func baseCommands(candidateLabel, companyLabel string) []Command {
	return []Command{
		{
			ID:          CmdSearchCandidate,
			Label:       candidateLabel,
			Description: "Pick a candidate as chat context",
			Icon:        "👤",
			Action:      ActionOpenSearch,
			SearchStep:  StepSearchCandidate,
		},
		{
			ID:          CmdSearchCompany,
			Label:       companyLabel,
			Description: "Pick a company as chat context",
			Icon:        "🏢",
			Action:      ActionOpenSearch,
			SearchStep:  StepSearchCompany,
		},
		{
			ID:          CmdAnalyzeCV,
			Label:       "Analyze a CV",
			Description: "Paste CV text for structured analysis",
			Icon:        "📋",
			Action:      ActionPrefill,
			Prefill:     "analyze cv ",
		},
		{
			ID:          CmdJobDescription,
			Label:       "Generate job description",
			Description: "Draft a description for any position",
			Icon:        "📄",
			Action:      ActionPrefill,
			Prefill:     "job description for a  position",
		},
		{
			ID:          CmdInterviewQuestions,
			Label:       "Generate interview questions",
			Description: "Questions for any position",
			Icon:        "❓",
			Action:      ActionPrefill,
			Prefill:     "interview questions for a  position",
		},
	}
}

// FilterCandidates returns candidates matching the term case-insensitively
// against name, email, and position. An empty term returns the full list.
func FilterCandidates(candidates []entity.Candidate, term string) []entity.Candidate {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return candidates
	}
	out := make([]entity.Candidate, 0, len(candidates))
	for _, c := range candidates {
		haystack := strings.ToLower(c.DisplayName() + " " + c.Email + " " + c.Position)
		if strings.Contains(haystack, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterCompanies returns companies matching the term case-insensitively
// against name and industry. An empty term returns the full list.
func FilterCompanies(companies []entity.Company, term string) []entity.Company {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return companies
	}
	out := make([]entity.Company, 0, len(companies))
	for _, c := range companies {
		haystack := strings.ToLower(c.Name + " " + c.Industry)
		if strings.Contains(haystack, term) {
			out = append(out, c)
		}
	}
	return out
}
