package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextStore_SelectionLifecycle(t *testing.T) {
	s := NewContextStore()
	assert.Nil(t, s.Selected())

	cand := Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee", Position: "Backend Engineer"}
	s.SelectCandidate(cand)
	sel := s.Selected()
	assert.Equal(t, KindCandidate, sel.EntityKind())
	assert.Equal(t, "Jane Lee", sel.DisplayName())

	comp := Company{ID: "k1", Name: "Acme Corp", Industry: "Fintech"}
	s.SelectCompany(comp)
	sel = s.Selected()
	assert.Equal(t, KindCompany, sel.EntityKind())
	assert.Equal(t, "Acme Corp", sel.DisplayName())

	s.Clear()
	assert.Nil(t, s.Selected())
}

func TestContextStore_GenerationBumpsOnEveryMutation(t *testing.T) {
	s := NewContextStore()
	gen := s.Generation()

	s.SelectCandidate(Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee"})
	assert.Equal(t, gen+1, s.Generation())

	s.SelectCompany(Company{ID: "k1", Name: "Acme Corp"})
	assert.Equal(t, gen+2, s.Generation())

	s.Clear()
	assert.Equal(t, gen+3, s.Generation())

	// Reads never move the generation.
	_ = s.Selected()
	assert.Equal(t, gen+3, s.Generation())
}

func TestMatches(t *testing.T) {
	cand := Candidate{ID: "c1", FirstName: "Jane", LastName: "Lee"}
	comp := Company{ID: "k1", Name: "Acme Corp"}

	assert.True(t, Matches(cand, KindCandidate))
	assert.False(t, Matches(cand, KindCompany))
	assert.True(t, Matches(comp, KindCompany))
	assert.False(t, Matches(comp, KindCandidate))
	assert.False(t, Matches(nil, KindCandidate))
}
