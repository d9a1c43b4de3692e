package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredesk/internal/entity"
)

// fakeClient captures the prompt and returns a canned reply.
type fakeClient struct {
	system string
	prompt string
	reply  string
	err    error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	return f.reply, f.err
}

func TestService_AnalyzeCV(t *testing.T) {
	client := &fakeClient{reply: `{"summary":"Solid profile.","skills":["Go"]}`}
	svc := NewService(client)

	analysis, err := svc.AnalyzeCV(context.Background(), "Jane Lee, 6 years of Go")
	require.NoError(t, err)
	assert.Equal(t, "Solid profile.", analysis.Summary)

	assert.Contains(t, client.prompt, "Jane Lee, 6 years of Go")
	assert.Contains(t, client.prompt, "total_experience_years")
	assert.Contains(t, client.system, "recruitment CRM")
}

func TestService_GenerateEmail_Candidate(t *testing.T) {
	client := &fakeClient{reply: "email"}
	svc := NewService(client)

	_, err := svc.GenerateEmail(context.Background(), EmailRequest{
		Kind:    entity.KindCandidate,
		Name:    "Jane Lee",
		Detail:  "Backend Engineer",
		Purpose: "interview invitation",
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "candidate Jane Lee (Backend Engineer)")
	assert.Contains(t, client.prompt, "Purpose: interview invitation.")
	assert.Contains(t, client.prompt, "subject line")
}

func TestService_GenerateEmail_Company(t *testing.T) {
	client := &fakeClient{reply: "email"}
	svc := NewService(client)

	_, err := svc.GenerateEmail(context.Background(), EmailRequest{
		Kind:    entity.KindCompany,
		Name:    "Acme Corp",
		Detail:  "Fintech",
		Purpose: "new role briefing",
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Acme Corp, a company contact in the Fintech industry")
}

func TestService_InterviewQuestions(t *testing.T) {
	client := &fakeClient{reply: "questions"}
	svc := NewService(client)

	_, err := svc.InterviewQuestions(context.Background(), QuestionsRequest{
		Position: "Backend Engineer",
		Company:  "Acme Corp",
		Context:  "Candidate: Jane Lee",
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Backend Engineer position at Acme Corp")
	assert.Contains(t, client.prompt, "Context: Candidate: Jane Lee")
}

func TestService_JobDescription(t *testing.T) {
	client := &fakeClient{reply: "jd"}
	svc := NewService(client)

	_, err := svc.JobDescription(context.Background(), JobRequest{
		Position: "Data Scientist",
		Company:  "Northwind Labs",
		Industry: "Biotech",
		Skills:   []string{"Python", "SQL"},
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Data Scientist position at Northwind Labs (Biotech industry)")
	assert.Contains(t, client.prompt, "Required skills: Python, SQL.")
}

func TestService_GeneralQuery_PrependsContext(t *testing.T) {
	client := &fakeClient{reply: "answer"}
	svc := NewService(client)

	_, err := svc.GeneralQuery(context.Background(), "what next?", "Context: Candidate - Jane Lee")
	require.NoError(t, err)
	assert.Equal(t, "Context: Candidate - Jane Lee\n\nwhat next?", client.prompt)

	_, err = svc.GeneralQuery(context.Background(), "what next?", "")
	require.NoError(t, err)
	assert.Equal(t, "what next?", client.prompt)
}
