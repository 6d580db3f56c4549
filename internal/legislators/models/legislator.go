package models

import "errors"

// ErrMissingTermData is returned when historical roles are requested for a
// term the legislator has no record of.
var ErrMissingTermData = errors.New("no historical data for term")

// Legislator is the stored legislator document. Top-level Chamber, Party and
// District describe the current seat of an active legislator; Roles holds the
// current-term roles and OldRoles the historical ones keyed by term.
type Legislator struct {
	ID       string            `json:"leg_id"`
	State    string            `json:"state"`
	FullName string            `json:"full_name"`
	Active   bool              `json:"active"`
	Chamber  string            `json:"chamber,omitempty"`
	Party    string            `json:"party,omitempty"`
	District string            `json:"district,omitempty"`
	Roles    []Role            `json:"roles"`
	OldRoles map[string][]Role `json:"old_roles,omitempty"`
}

// DocumentID implements the document store key.
func (l Legislator) DocumentID() string { return l.ID }

// DisplayName is the name shown for the legislator.
func (l Legislator) DisplayName() string {
	return l.FullName
}

// CurrentTerm returns the term of the first current membership role.
func (l Legislator) CurrentTerm() string {
	for _, r := range l.Roles {
		if r.Type == RoleTypeMember {
			return r.Term
		}
	}
	return ""
}

// AsRole presents the legislator's top-level attributes as a membership role.
func (l Legislator) AsRole() Role {
	return Role{
		Term:     l.CurrentTerm(),
		Chamber:  l.Chamber,
		Type:     RoleTypeMember,
		State:    l.State,
		Party:    l.Party,
		District: l.District,
	}
}
