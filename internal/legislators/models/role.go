package models

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is one stretch of service: a chamber membership, a committee seat or
// any other position held during a term. Roles are read and grouped, never
// modified after they are recorded.
type Role struct {
	Term         string     `json:"term"`
	Chamber      string     `json:"chamber"`
	Type         string     `json:"type"`
	State        string     `json:"state,omitempty"`
	Party        string     `json:"party,omitempty"`
	District     string     `json:"district,omitempty"`
	Committee    string     `json:"committee,omitempty"`
	Subcommittee string     `json:"subcommittee,omitempty"`
	CommitteeID  string     `json:"committee_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// Role types that carry no display label of their own.
const (
	RoleTypeMember          = "member"
	RoleTypeCommitteeMember = "committee member"
)

// TypeSlug is the display bucket for the role's type: lower-cased, spaces
// replaced with underscores. "Committee Member" and "committee member" share
// a slug.
func (r Role) TypeSlug() string {
	return strings.ReplaceAll(strings.ToLower(r.Type), " ", "_")
}

// IsCommittee reports whether the role names a committee.
func (r Role) IsCommittee() bool {
	return r.Committee != ""
}

// CommitteeName joins committee and subcommittee as "Committee - Subcommittee".
func (r Role) CommitteeName() string {
	if r.Subcommittee != "" {
		return fmt.Sprintf("%s - %s", r.Committee, r.Subcommittee)
	}
	return r.Committee
}

// TypeDisplay is the title-cased type, or "" for plain memberships.
func (r Role) TypeDisplay() string {
	switch r.Type {
	case RoleTypeMember, RoleTypeCommitteeMember:
		return ""
	}
	return cases.Title(language.Und).String(r.Type)
}

// HasDateRange reports whether both start and end dates are recorded.
func (r Role) HasDateRange() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// Contains reports whether t falls strictly inside the role's date range.
// A role without both dates contains nothing.
func (r Role) Contains(t time.Time) bool {
	if !r.HasDateRange() {
		return false
	}
	return r.StartDate.Before(t) && t.Before(*r.EndDate)
}

