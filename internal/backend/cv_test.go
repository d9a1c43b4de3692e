package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"summary":"ok"}`,
			want: `{"summary":"ok"}`,
		},
		{
			name: "fenced code block",
			text: "```json\n{\"summary\":\"ok\"}\n```",
			want: `{"summary":"ok"}`,
		},
		{
			name: "surrounded by prose",
			text: `Here is the analysis: {"skills":["Go"]} hope that helps!`,
			want: `{"skills":["Go"]}`,
		},
		{
			name: "nested objects",
			text: `{"education":[{"degree":"BSc","end_year":2016}]}`,
			want: `{"education":[{"degree":"BSc","end_year":2016}]}`,
		},
		{
			name: "braces inside strings",
			text: `{"summary":"uses {braces} and \"quotes\" freely"}`,
			want: `{"summary":"uses {braces} and \"quotes\" freely"}`,
		},
		{
			name: "no object",
			text: "sorry, I cannot help with that",
			want: "",
		},
		{
			name: "unbalanced",
			text: `{"summary":"never closed`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.text))
		})
	}
}

func TestParseCVAnalysis(t *testing.T) {
	reply := "Sure! ```json\n" + `{
		"summary": "Strong backend profile.",
		"total_experience_years": 6.5,
		"skills": ["Go", "PostgreSQL"],
		"education": [{"degree": "MSc", "institution": "ETH", "end_year": 2018}],
		"experience": [{"title": "Engineer", "company": "Acme", "duration": "4 years"}]
	}` + "\n```"

	analysis, err := parseCVAnalysis(reply)
	require.NoError(t, err)
	assert.Equal(t, "Strong backend profile.", analysis.Summary)
	assert.Equal(t, 6.5, analysis.TotalExperienceYears)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, analysis.Skills)
	require.Len(t, analysis.Education, 1)
	assert.Equal(t, 2018, analysis.Education[0].EndYear)
	require.Len(t, analysis.Experience, 1)
	assert.Equal(t, "Engineer", analysis.Experience[0].Title)
}

func TestParseCVAnalysis_PartialFields(t *testing.T) {
	analysis, err := parseCVAnalysis(`{"skills":["Rust"]}`)
	require.NoError(t, err)
	assert.Empty(t, analysis.Summary)
	assert.Zero(t, analysis.TotalExperienceYears)
	assert.Equal(t, []string{"Rust"}, analysis.Skills)
}

func TestParseCVAnalysis_NoJSON(t *testing.T) {
	_, err := parseCVAnalysis("I could not process this CV.")
	assert.Error(t, err)
}

func TestParseCVAnalysis_MalformedJSON(t *testing.T) {
	_, err := parseCVAnalysis(`{"skills": [}`)
	assert.Error(t, err)
}
