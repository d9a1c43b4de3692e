package command

import (
	"fmt"
	"strings"

	"hiredesk/internal/entity"
	"hiredesk/internal/palette"
)

// BuildQuery deterministically synthesizes the natural-language query a
// command sends through the intent router, parameterized by the bound
// entity. The phrasing is load-bearing: each template contains the keywords
// the router's matching branch expects.
func BuildQuery(commandID string, ent entity.Entity) string {
	name := ent.DisplayName()

	switch commandID {
	case palette.CmdGenerateEmail:
		return fmt.Sprintf("draft an email for %s", name)

	case palette.CmdGenerateSuggestions:
		return fmt.Sprintf("provide suggestions for working with %s", name)

	case palette.CmdCandidateFeedback:
		return fmt.Sprintf("provide feedback for candidate %s", name)

	case palette.CmdInterviewQuestions:
		if c, ok := ent.(entity.Candidate); ok {
			return fmt.Sprintf("interview questions for %s for %s position", name, c.Position)
		}
		return fmt.Sprintf("interview questions for a role at %s", name)

	case palette.CmdJobDescription:
		if c, ok := ent.(entity.Company); ok {
			return fmt.Sprintf("job description for a role at %s in the %s industry", name, c.Industry)
		}
		if c, ok := ent.(entity.Candidate); ok {
			return fmt.Sprintf("job description for a role similar to %s's position (%s)", name, c.Position)
		}
		return fmt.Sprintf("job description for a role at %s", name)

	case palette.CmdOpenChat:
		return fmt.Sprintf("tell me about %s", name)

	default:
		return fmt.Sprintf("help with %s for %s", humanizeID(commandID), name)
	}
}

// humanizeID turns a command id into words.
func humanizeID(commandID string) string {
	return strings.ReplaceAll(commandID, "_", " ")
}
