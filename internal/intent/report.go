package intent

import (
	"fmt"
	"strconv"
	"strings"

	"hiredesk/internal/backend"
)

// FormatCVReport renders a CV analysis as a Markdown report. Every section
// is optional and omitted independently when its field is absent.
func FormatCVReport(a *backend.CVAnalysis) string {
	sections := []string{"✅ **CV Analysis Complete!**"}

	if a.Summary != "" {
		sections = append(sections, "**Summary:**\n"+a.Summary)
	}

	if a.TotalExperienceYears > 0 {
		years := strconv.FormatFloat(a.TotalExperienceYears, 'f', -1, 64)
		sections = append(sections, fmt.Sprintf("**Total Experience:** %s years", years))
	}

	if len(a.Skills) > 0 {
		var sb strings.Builder
		sb.WriteString("**Skills:**")
		for _, skill := range a.Skills {
			sb.WriteString("\n- " + skill)
		}
		sections = append(sections, sb.String())
	}

	if len(a.Education) > 0 {
		var sb strings.Builder
		sb.WriteString("**Education:**")
		for _, edu := range a.Education {
			sb.WriteString("\n- " + formatEducation(edu))
		}
		sections = append(sections, sb.String())
	}

	if len(a.Experience) > 0 {
		var sb strings.Builder
		sb.WriteString("**Experience:**")
		for _, exp := range a.Experience {
			sb.WriteString("\n- " + formatExperience(exp))
		}
		sections = append(sections, sb.String())
	}

	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

func formatEducation(edu backend.Education) string {
	parts := make([]string, 0, 2)
	if edu.Degree != "" {
		parts = append(parts, edu.Degree)
	}
	if edu.Institution != "" {
		parts = append(parts, edu.Institution)
	}
	line := strings.Join(parts, ", ")
	if edu.EndYear > 0 {
		line = fmt.Sprintf("%s (%d)", line, edu.EndYear)
	}
	return line
}

func formatExperience(exp backend.Experience) string {
	line := exp.Title
	if exp.Company != "" {
		if line != "" {
			line += " at " + exp.Company
		} else {
			line = exp.Company
		}
	}
	if exp.Duration != "" {
		line = fmt.Sprintf("%s (%s)", line, exp.Duration)
	}
	return line
}
