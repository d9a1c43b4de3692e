package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hiredesk/internal/entity"
	"hiredesk/internal/palette"
)

func TestBuildQuery(t *testing.T) {
	cand := entity.Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee", Position: "Backend Engineer"}
	comp := entity.Company{ID: "k1", Name: "Acme Corp", Industry: "Fintech"}

	tests := []struct {
		name      string
		commandID string
		ent       entity.Entity
		want      string
	}{
		{"email candidate", palette.CmdGenerateEmail, cand, "draft an email for Jane Lee"},
		{"email company", palette.CmdGenerateEmail, comp, "draft an email for Acme Corp"},
		{"suggestions", palette.CmdGenerateSuggestions, cand, "provide suggestions for working with Jane Lee"},
		{"feedback", palette.CmdCandidateFeedback, cand, "provide feedback for candidate Jane Lee"},
		{"questions candidate", palette.CmdInterviewQuestions, cand, "interview questions for Jane Lee for Backend Engineer position"},
		{"questions company", palette.CmdInterviewQuestions, comp, "interview questions for a role at Acme Corp"},
		{"job description company", palette.CmdJobDescription, comp, "job description for a role at Acme Corp in the Fintech industry"},
		{"job description candidate", palette.CmdJobDescription, cand, "job description for a role similar to Jane Lee's position (Backend Engineer)"},
		{"open chat", palette.CmdOpenChat, comp, "tell me about Acme Corp"},
		{"unknown id", "some_future_command", cand, "help with some future command for Jane Lee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.commandID, tt.ent))
		})
	}
}
