package intent

import (
	"regexp"
	"strings"
)

// Extraction patterns. The position patterns deliberately share one family:
// "<verb phrase> for (a/an) <position> position", capturing the words between
// the article and the trailing "position".
var (
	emailPurposeRe      = regexp.MustCompile(`(?i)email\s+for\s+(.+)`)
	jobPositionRe       = regexp.MustCompile(`(?i)job description\s+for\s+(?:an?\s+)?(.+?)\s+position`)
	questionsPositionRe = regexp.MustCompile(`(?i)interview questions\s+for\s+(?:an?\s+)?(.+?)\s+position`)
	genericPositionRe   = regexp.MustCompile(`(?i)for\s+(?:an?\s+)?(.+?)\s+position`)
)

// extractEmailPurpose pulls the purpose from "email for <X>" phrasing,
// defaulting to "general inquiry".
func extractEmailPurpose(raw string) string {
	if m := emailPurposeRe.FindStringSubmatch(raw); m != nil {
		purpose := strings.TrimSpace(strings.Trim(m[1], ".!?"))
		if purpose != "" {
			return purpose
		}
	}
	return "general inquiry"
}

// extractJobPosition pulls the position from job-description phrasing.
func extractJobPosition(raw, fallback string) string {
	if m := jobPositionRe.FindStringSubmatch(raw); m != nil {
		if pos := strings.TrimSpace(m[1]); pos != "" {
			return pos
		}
	}
	return extractAnyPosition(raw, fallback)
}

// extractQuestionsPosition pulls the position from interview-question phrasing.
func extractQuestionsPosition(raw, fallback string) string {
	if m := questionsPositionRe.FindStringSubmatch(raw); m != nil {
		if pos := strings.TrimSpace(m[1]); pos != "" {
			return pos
		}
	}
	return extractAnyPosition(raw, fallback)
}

// extractAnyPosition is the loose fallback of the pattern family, used when
// the verb-specific pattern missed but the query still names a position.
func extractAnyPosition(raw, fallback string) string {
	if m := genericPositionRe.FindStringSubmatch(raw); m != nil {
		if pos := strings.TrimSpace(m[1]); pos != "" {
			return pos
		}
	}
	return fallback
}
