// Package entity defines the Candidate/Company union that AI operations use
// as context, plus the ContextStore that holds the single current selection.
package entity

import "strings"

// Kind identifies the concrete variant of an Entity.
type Kind string

const (
	KindCandidate Kind = "candidate"
	KindCompany   Kind = "company"
)

// Entity is the tagged union of Candidate and Company. Dispatch is always on
// EntityKind(), never on field presence.
type Entity interface {
	EntityKind() Kind
	EntityID() string
	DisplayName() string
}

// Candidate is a person in the recruitment pipeline.
type Candidate struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	Email     string
}

func (c Candidate) EntityKind() Kind { return KindCandidate }
func (c Candidate) EntityID() string { return c.ID }

// DisplayName returns "First Last", tolerating a missing name part.
func (c Candidate) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Company is a client organization with open roles.
type Company struct {
	ID            string
	Name          string
	Industry      string
	ContactPerson string
}

func (c Company) EntityKind() Kind    { return KindCompany }
func (c Company) EntityID() string    { return c.ID }
func (c Company) DisplayName() string { return c.Name }

// Matches reports whether the entity satisfies a required kind.
// An empty required kind matches nothing; callers handle the no-requirement
// case before consulting the selection.
func Matches(e Entity, required Kind) bool {
	if e == nil {
		return false
	}
	return e.EntityKind() == required
}
