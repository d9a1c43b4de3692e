package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hiredesk/internal/backend"
)

func TestFormatCVReport_SummaryOnly(t *testing.T) {
	report := FormatCVReport(&backend.CVAnalysis{Summary: "Seasoned Go engineer."})

	want := "✅ **CV Analysis Complete!**\n\n**Summary:**\nSeasoned Go engineer."
	assert.Equal(t, want, report)
}

func TestFormatCVReport_AllSections(t *testing.T) {
	report := FormatCVReport(&backend.CVAnalysis{
		Summary:              "Full-stack developer.",
		TotalExperienceYears: 7.5,
		Skills:               []string{"Go", "React"},
		Education: []backend.Education{
			{Degree: "BSc Computer Science", Institution: "TU Delft", EndYear: 2016},
		},
		Experience: []backend.Experience{
			{Title: "Engineer", Company: "Acme Corp", Duration: "2016-2020"},
		},
	})

	assert.Contains(t, report, "**Total Experience:** 7.5 years")
	assert.Contains(t, report, "**Skills:**\n- Go\n- React")
	assert.Contains(t, report, "- BSc Computer Science, TU Delft (2016)")
	assert.Contains(t, report, "- Engineer at Acme Corp (2016-2020)")

	// Sections keep a fixed order.
	assert.Less(t, strings.Index(report, "**Summary:**"), strings.Index(report, "**Total Experience:**"))
	assert.Less(t, strings.Index(report, "**Skills:**"), strings.Index(report, "**Education:**"))
	assert.Less(t, strings.Index(report, "**Education:**"), strings.Index(report, "**Experience:**"))
}

func TestFormatCVReport_OmitsAbsentSections(t *testing.T) {
	report := FormatCVReport(&backend.CVAnalysis{
		Skills: []string{"Kubernetes"},
	})

	assert.NotContains(t, report, "**Summary:**")
	assert.NotContains(t, report, "**Total Experience:**")
	assert.NotContains(t, report, "**Education:**")
	assert.NotContains(t, report, "**Experience:**")
	assert.Contains(t, report, "- Kubernetes")
}

func TestFormatCVReport_WholeYearsRenderWithoutDecimals(t *testing.T) {
	report := FormatCVReport(&backend.CVAnalysis{TotalExperienceYears: 5})
	assert.Contains(t, report, "**Total Experience:** 5 years")
}

func TestFormatCVReport_PartialEntries(t *testing.T) {
	report := FormatCVReport(&backend.CVAnalysis{
		Education:  []backend.Education{{Institution: "MIT"}},
		Experience: []backend.Experience{{Company: "Globex"}},
	})
	assert.Contains(t, report, "- MIT")
	assert.Contains(t, report, "- Globex")
}
