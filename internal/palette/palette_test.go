package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredesk/internal/entity"
)

func commandIDs(cmds []Command) []string {
	ids := make([]string, len(cmds))
	for i, c := range cmds {
		ids[i] = c.ID
	}
	return ids
}

func TestBuildCommands_NoSelection(t *testing.T) {
	cmds := BuildCommands(nil)

	want := []string{
		CmdSearchCandidate,
		CmdSearchCompany,
		CmdAnalyzeCV,
		CmdJobDescription,
		CmdInterviewQuestions,
	}
	if diff := cmp.Diff(want, commandIDs(cmds)); diff != "" {
		t.Fatalf("command ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCommands_CandidateSelected(t *testing.T) {
	cand := entity.Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee", Position: "Backend Engineer"}
	cmds := BuildCommands(cand)

	want := []string{
		CmdCandidateFeedback,
		CmdInterviewQuestions,
		CmdGenerateEmail,
		CmdGenerateSuggestions,
		CmdOpenChat,
		CmdSearchCandidate,
		CmdSearchCompany,
	}
	if diff := cmp.Diff(want, commandIDs(cmds)); diff != "" {
		t.Fatalf("command ids mismatch (-want +got):\n%s", diff)
	}

	// Labels embed the selection so the list must be rebuilt per open.
	assert.Contains(t, cmds[0].Label, "Jane Lee")
	assert.Equal(t, "Switch candidate", cmds[5].Label)
}

func TestBuildCommands_CompanySelected(t *testing.T) {
	comp := entity.Company{ID: "k1", Name: "Acme Corp", Industry: "Fintech"}
	cmds := BuildCommands(comp)

	want := []string{
		CmdJobDescription,
		CmdInterviewQuestions,
		CmdGenerateEmail,
		CmdGenerateSuggestions,
		CmdOpenChat,
		CmdSearchCandidate,
		CmdSearchCompany,
	}
	if diff := cmp.Diff(want, commandIDs(cmds)); diff != "" {
		t.Fatalf("command ids mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, cmds[0].Label, "Acme Corp")
}

// Context-free generators carry prefill templates and no entity requirement,
// so running one never touches the selection.
func TestBuildCommands_ContextFreeGeneratorsArePrefill(t *testing.T) {
	for _, sel := range []entity.Entity{nil, entity.Candidate{ID: "c1", FirstName: "Jane"}} {
		for _, c := range BuildCommands(sel) {
			if c.Action != ActionPrefill {
				continue
			}
			assert.Equal(t, RequiresNone, c.Requires, "prefill command %s must not require an entity", c.ID)
			assert.NotEmpty(t, c.Prefill, "prefill command %s needs a template", c.ID)
		}
	}

	base := BuildCommands(nil)
	byID := map[string]Command{}
	for _, c := range base {
		byID[c.ID] = c
	}
	assert.Equal(t, ActionPrefill, byID[CmdAnalyzeCV].Action)
	assert.Equal(t, "analyze cv ", byID[CmdAnalyzeCV].Prefill)
	assert.Equal(t, ActionPrefill, byID[CmdJobDescription].Action)
	assert.Equal(t, ActionPrefill, byID[CmdInterviewQuestions].Action)
}

func TestMachine_OpenRebuildsCommands(t *testing.T) {
	m := NewMachine()
	m.Open(nil)
	require.True(t, m.IsOpen())
	noSelection := len(m.Commands())

	m.Close()
	m.Open(entity.Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee"})
	withSelection := len(m.Commands())

	assert.Greater(t, withSelection, noSelection)
	assert.Equal(t, StepInitial, m.Step())
}

func TestMachine_EscapeFromSearchReturnsToInitial(t *testing.T) {
	m := NewMachine()
	m.Open(nil)
	m.EnterSearch(StepSearchCandidate)
	m.SetTerm("jane")

	closed := m.Escape()
	assert.False(t, closed)
	assert.Equal(t, StepInitial, m.Step())
	assert.Empty(t, m.Term())
	assert.True(t, m.IsOpen())

	closed = m.Escape()
	assert.True(t, closed)
	assert.False(t, m.IsOpen())
}

func TestMachine_MoveWrapsAndIgnoresEmptyList(t *testing.T) {
	m := NewMachine()
	m.Open(nil)

	m.Move(-1, 5)
	assert.Equal(t, 4, m.Index(5))

	m.Move(1, 5)
	assert.Equal(t, 0, m.Index(5))

	// An empty list leaves the cursor alone.
	m.Move(1, 0)
	assert.Equal(t, 0, m.Index(5))
}

func TestMachine_IndexClampsWhenFilterNarrows(t *testing.T) {
	m := NewMachine()
	m.Open(nil)
	m.Move(1, 10)
	m.Move(1, 10)
	m.Move(1, 10)
	assert.Equal(t, 3, m.Index(10))

	// The visible list shrank under the cursor.
	assert.Equal(t, 1, m.Index(2))
	assert.Equal(t, 0, m.Index(0))
}

func TestMachine_SetTermResetsIndex(t *testing.T) {
	m := NewMachine()
	m.Open(nil)
	m.EnterSearch(StepSearchCandidate)
	m.Move(1, 4)
	require.Equal(t, 1, m.Index(4))

	m.SetTerm("ja")
	assert.Equal(t, 0, m.Index(4))
}

func TestFilterCandidates(t *testing.T) {
	candidates := []entity.Candidate{
		{ID: "1", FirstName: "Jane", LastName: "Lee", Position: "Backend Engineer", Email: "jane.lee@example.com"},
		{ID: "2", FirstName: "Marcus", LastName: "Okafor", Position: "Frontend Developer", Email: "marcus@example.com"},
	}

	assert.Len(t, FilterCandidates(candidates, ""), 2)
	assert.Len(t, FilterCandidates(candidates, "JANE"), 1)
	assert.Len(t, FilterCandidates(candidates, "backend"), 1)
	assert.Len(t, FilterCandidates(candidates, "example.com"), 2)
	assert.Empty(t, FilterCandidates(candidates, "nobody"))
}

func TestFilterCompanies(t *testing.T) {
	companies := []entity.Company{
		{ID: "1", Name: "Acme Corp", Industry: "Fintech"},
		{ID: "2", Name: "Northwind Labs", Industry: "Biotech"},
	}

	assert.Len(t, FilterCompanies(companies, ""), 2)
	assert.Len(t, FilterCompanies(companies, "acme"), 1)
	assert.Len(t, FilterCompanies(companies, "tech"), 2)
	assert.Empty(t, FilterCompanies(companies, "retail"))
}

func TestSearchStepFor(t *testing.T) {
	assert.Equal(t, StepSearchCandidate, SearchStepFor(RequiresCandidate))
	assert.Equal(t, StepSearchCompany, SearchStepFor(RequiresCompany))
	// Either defaults to candidate search.
	assert.Equal(t, StepSearchCandidate, SearchStepFor(RequiresEither))
}
