package backend

import (
	"context"
	"fmt"
	"strings"

	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

const systemPrompt = `You are the AI assistant inside a recruitment CRM.
You help recruiters with candidate CVs, outreach emails, interview questions,
and job descriptions. Answer in Markdown. Be concise and professional.`

// EmailRequest describes an outreach email to generate.
type EmailRequest struct {
	Kind    entity.Kind // recipient side: candidate or company contact
	Name    string
	Detail  string // candidate position or company industry
	Purpose string
	Context string
}

// QuestionsRequest describes interview questions to generate.
type QuestionsRequest struct {
	Position string
	Company  string // optional
	Context  string // optional
}

// JobRequest describes a job description to generate.
type JobRequest struct {
	Position string
	Company  string
	Industry string   // optional
	Skills   []string // optional
}

// Service implements the backend AI capabilities over a provider Client.
type Service struct {
	client Client
}

// NewService wraps a provider client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// AnalyzeCV extracts structured data from raw CV text.
func (s *Service) AnalyzeCV(ctx context.Context, text string) (*CVAnalysis, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.AnalyzeCV")
	defer timer.Stop()

	prompt := fmt.Sprintf(`Analyze the following CV text and respond with ONLY a JSON object
(no prose, no code fences required) using this schema; omit any field you
cannot determine:

{
  "summary": "two-sentence assessment",
  "total_experience_years": 0,
  "skills": ["..."],
  "education": [{"degree": "...", "institution": "...", "end_year": 2020}],
  "experience": [{"title": "...", "company": "...", "duration": "..."}]
}

CV text:
%s`, text)

	reply, err := s.client.CompleteWithSystem(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return parseCVAnalysis(reply)
}

// GenerateEmail drafts an outreach email for a candidate or company contact.
func (s *Service) GenerateEmail(ctx context.Context, req EmailRequest) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.GenerateEmail")
	defer timer.Stop()

	var sb strings.Builder
	switch req.Kind {
	case entity.KindCompany:
		fmt.Fprintf(&sb, "Draft a professional email to %s, a company contact", req.Name)
		if req.Detail != "" {
			fmt.Fprintf(&sb, " in the %s industry", req.Detail)
		}
	default:
		fmt.Fprintf(&sb, "Draft a professional email to candidate %s", req.Name)
		if req.Detail != "" {
			fmt.Fprintf(&sb, " (%s)", req.Detail)
		}
	}
	fmt.Fprintf(&sb, ".\nPurpose: %s.", req.Purpose)
	if req.Context != "" {
		fmt.Fprintf(&sb, "\nAdditional context: %s", req.Context)
	}
	sb.WriteString("\nInclude a subject line. Keep it under 150 words.")

	return s.client.CompleteWithSystem(ctx, systemPrompt, sb.String())
}

// InterviewQuestions generates interview questions for a position.
func (s *Service) InterviewQuestions(ctx context.Context, req QuestionsRequest) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.InterviewQuestions")
	defer timer.Stop()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate 8 interview questions for a %s position", req.Position)
	if req.Company != "" {
		fmt.Fprintf(&sb, " at %s", req.Company)
	}
	sb.WriteString(". Mix technical and behavioral questions, hardest last.")
	if req.Context != "" {
		fmt.Fprintf(&sb, "\nContext: %s", req.Context)
	}

	return s.client.CompleteWithSystem(ctx, systemPrompt, sb.String())
}

// JobDescription generates a job description.
func (s *Service) JobDescription(ctx context.Context, req JobRequest) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.JobDescription")
	defer timer.Stop()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a job description for a %s position at %s", req.Position, req.Company)
	if req.Industry != "" {
		fmt.Fprintf(&sb, " (%s industry)", req.Industry)
	}
	sb.WriteString(". Sections: About the Role, Responsibilities, Requirements, Benefits.")
	if len(req.Skills) > 0 {
		fmt.Fprintf(&sb, "\nRequired skills: %s.", strings.Join(req.Skills, ", "))
	}

	return s.client.CompleteWithSystem(ctx, systemPrompt, sb.String())
}

// CandidateFeedback generates structured feedback on a candidate.
func (s *Service) CandidateFeedback(ctx context.Context, c entity.Candidate) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.CandidateFeedback")
	defer timer.Stop()

	prompt := fmt.Sprintf(`Provide structured recruiter feedback for candidate %s applying for the
%s position. Cover strengths to probe, risks to verify, and suggested next
steps in the pipeline.`, c.DisplayName(), c.Position)

	return s.client.CompleteWithSystem(ctx, systemPrompt, prompt)
}

// GeneralQuery answers a free-text question, optionally with entity context.
func (s *Service) GeneralQuery(ctx context.Context, query, context string) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "Service.GeneralQuery")
	defer timer.Stop()

	prompt := query
	if context != "" {
		prompt = fmt.Sprintf("%s\n\n%s", context, query)
	}
	return s.client.CompleteWithSystem(ctx, systemPrompt, prompt)
}
