// Package intent routes free-text chat queries, plus optional selected-entity
// context, to one of the backend AI capabilities. Routing is an explicit
// ordered list of (predicate, handler) pairs evaluated in a fixed sequence;
// the first match wins, so precedence is part of the contract: a query that
// mentions both "analyze cv" and "job description" is a CV analysis.
package intent

import (
	"context"
	"fmt"
	"strings"

	"hiredesk/internal/backend"
	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

// Capabilities is the backend surface the router dispatches to.
// Implemented by backend.Service; tests substitute a recording fake.
type Capabilities interface {
	AnalyzeCV(ctx context.Context, text string) (*backend.CVAnalysis, error)
	GenerateEmail(ctx context.Context, req backend.EmailRequest) (string, error)
	InterviewQuestions(ctx context.Context, req backend.QuestionsRequest) (string, error)
	JobDescription(ctx context.Context, req backend.JobRequest) (string, error)
	CandidateFeedback(ctx context.Context, c entity.Candidate) (string, error)
	GeneralQuery(ctx context.Context, query, context string) (string, error)
}

// Response is the routed answer plus the entity it pertained to, if any.
type Response struct {
	Content string
	Entity  entity.Entity
}

// query bundles the raw input with its lowercased form and ambient context.
type query struct {
	raw      string
	lower    string
	selected entity.Entity
}

// route is one (predicate, handler) pair in the dispatch order.
type route struct {
	name   string
	match  func(q query) bool
	handle func(ctx context.Context, q query) (Response, error)
}

// Router dispatches queries over its fixed route order.
type Router struct {
	caps   Capabilities
	routes []route
}

// NewRouter builds a router over the given capabilities.
func NewRouter(caps Capabilities) *Router {
	r := &Router{caps: caps}
	r.routes = []route{
		{name: "cv_analysis", match: matchCVAnalysis, handle: r.handleCVAnalysis},
		{name: "candidate_context", match: matchSelectedKind(entity.KindCandidate), handle: r.handleCandidate},
		{name: "company_context", match: matchSelectedKind(entity.KindCompany), handle: r.handleCompany},
		{name: "generic_job_description", match: matchContainsAny("job description", "draft a job description"), handle: r.handleGenericJobDescription},
		{name: "generic_interview_questions", match: matchContainsAny("interview questions", "create interview questions"), handle: r.handleGenericQuestions},
		{name: "general_fallback", match: func(query) bool { return true }, handle: r.handleFallback},
	}
	return r
}

// Respond routes the input through the first matching route.
func (r *Router) Respond(ctx context.Context, input string, selected entity.Entity) (Response, error) {
	q := query{
		raw:      strings.TrimSpace(input),
		lower:    strings.ToLower(strings.TrimSpace(input)),
		selected: selected,
	}

	for _, rt := range r.routes {
		if !rt.match(q) {
			continue
		}
		logging.Routing("route=%s selected=%v input=%q", rt.name, selected != nil, truncateForLog(q.raw, 80))
		return rt.handle(ctx, q)
	}
	// Unreachable: the fallback route matches everything.
	return Response{}, fmt.Errorf("no route matched input")
}

// =============================================================================
// PREDICATES
// =============================================================================

func matchCVAnalysis(q query) bool {
	return strings.HasPrefix(q.lower, "analyze cv") || strings.HasPrefix(q.lower, "/analyze_cv")
}

func matchSelectedKind(kind entity.Kind) func(query) bool {
	return func(q query) bool {
		return q.selected != nil && q.selected.EntityKind() == kind
	}
}

func matchContainsAny(substrings ...string) func(query) bool {
	return func(q query) bool {
		for _, s := range substrings {
			if strings.Contains(q.lower, s) {
				return true
			}
		}
		return false
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (r *Router) handleCVAnalysis(ctx context.Context, q query) (Response, error) {
	text := stripCVPrefix(q.raw)
	if text == "" {
		return Response{Content: "Please paste the CV text after `analyze cv`. " +
			"Example: `analyze cv John Smith, 5 years of React experience, BSc Computer Science...`"}, nil
	}

	analysis, err := r.caps.AnalyzeCV(ctx, text)
	if err != nil {
		return Response{}, err
	}
	return Response{Content: FormatCVReport(analysis)}, nil
}

func (r *Router) handleCandidate(ctx context.Context, q query) (Response, error) {
	cand, ok := q.selected.(entity.Candidate)
	if !ok {
		return Response{}, fmt.Errorf("candidate route reached with %T selection", q.selected)
	}
	name := cand.DisplayName()

	switch {
	case strings.Contains(q.lower, "email"):
		content, err := r.caps.GenerateEmail(ctx, backend.EmailRequest{
			Kind:    entity.KindCandidate,
			Name:    name,
			Detail:  cand.Position,
			Purpose: extractEmailPurpose(q.raw),
		})
		return Response{Content: content, Entity: cand}, err

	case strings.Contains(q.lower, "interview questions"):
		content, err := r.caps.InterviewQuestions(ctx, backend.QuestionsRequest{
			Position: cand.Position,
			Context:  fmt.Sprintf("Candidate: %s", name),
		})
		return Response{Content: content, Entity: cand}, err

	case strings.Contains(q.lower, "feedback"):
		content, err := r.caps.CandidateFeedback(ctx, cand)
		return Response{Content: content, Entity: cand}, err

	default:
		content, err := r.caps.GeneralQuery(ctx, q.raw,
			fmt.Sprintf("Context: Candidate - %s, Position: %s", name, cand.Position))
		return Response{Content: content, Entity: cand}, err
	}
}

func (r *Router) handleCompany(ctx context.Context, q query) (Response, error) {
	comp, ok := q.selected.(entity.Company)
	if !ok {
		return Response{}, fmt.Errorf("company route reached with %T selection", q.selected)
	}

	switch {
	case strings.Contains(q.lower, "email"):
		content, err := r.caps.GenerateEmail(ctx, backend.EmailRequest{
			Kind:    entity.KindCompany,
			Name:    comp.Name,
			Detail:  comp.Industry,
			Purpose: extractEmailPurpose(q.raw),
		})
		return Response{Content: content, Entity: comp}, err

	case strings.Contains(q.lower, "job description"):
		content, err := r.caps.JobDescription(ctx, backend.JobRequest{
			Position: extractJobPosition(q.raw, "a suitable role"),
			Company:  comp.Name,
			Industry: comp.Industry,
		})
		return Response{Content: content, Entity: comp}, err

	case strings.Contains(q.lower, "interview questions"):
		content, err := r.caps.InterviewQuestions(ctx, backend.QuestionsRequest{
			Position: extractQuestionsPosition(q.raw, "a role"),
			Company:  comp.Name,
		})
		return Response{Content: content, Entity: comp}, err

	default:
		content, err := r.caps.GeneralQuery(ctx, q.raw,
			fmt.Sprintf("Context: Company - %s, Industry: %s", comp.Name, comp.Industry))
		return Response{Content: content, Entity: comp}, err
	}
}

func (r *Router) handleGenericJobDescription(ctx context.Context, q query) (Response, error) {
	content, err := r.caps.JobDescription(ctx, backend.JobRequest{
		Position: extractJobPosition(q.raw, "a generic role"),
		Company:  "your company",
	})
	return Response{Content: content}, err
}

func (r *Router) handleGenericQuestions(ctx context.Context, q query) (Response, error) {
	content, err := r.caps.InterviewQuestions(ctx, backend.QuestionsRequest{
		Position: extractQuestionsPosition(q.raw, "a generic role"),
	})
	return Response{Content: content}, err
}

func (r *Router) handleFallback(ctx context.Context, q query) (Response, error) {
	content, err := r.caps.GeneralQuery(ctx, q.raw, "")
	return Response{Content: content}, err
}

// stripCVPrefix removes the "analyze cv" / "/analyze_cv" prefix, preserving
// the original casing of the remaining CV text.
func stripCVPrefix(raw string) string {
	lower := strings.ToLower(raw)
	for _, prefix := range []string{"/analyze_cv", "analyze cv"} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(raw[len(prefix):])
		}
	}
	return strings.TrimSpace(raw)
}

func truncateForLog(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
