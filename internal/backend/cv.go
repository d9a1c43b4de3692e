package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CVAnalysis is the structured result of analyzing CV text. Every field is
// optional; the formatter omits whatever is absent.
type CVAnalysis struct {
	Summary              string       `json:"summary,omitempty"`
	TotalExperienceYears float64      `json:"total_experience_years,omitempty"`
	Skills               []string     `json:"skills,omitempty"`
	Education            []Education  `json:"education,omitempty"`
	Experience           []Experience `json:"experience,omitempty"`
}

// Education is one education entry on a CV.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
}

// Experience is one work-history entry on a CV.
type Experience struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// parseCVAnalysis extracts a CVAnalysis from a model reply. Models wrap JSON
// in fenced code blocks or prose more often than not, so the first balanced
// object in the text is what gets parsed.
func parseCVAnalysis(reply string) (*CVAnalysis, error) {
	raw := extractJSONObject(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object found in model reply")
	}
	var analysis CVAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse CV analysis: %w", err)
	}
	return &analysis, nil
}

// extractJSONObject returns the first balanced top-level JSON object in the
// text, or "" when none exists. Braces inside strings are skipped.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
