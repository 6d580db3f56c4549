package models

import "time"

// Committee is a stored committee document.
type Committee struct {
	ID           string `json:"_id"`
	State        string `json:"state"`
	Chamber      string `json:"chamber"`
	Committee    string `json:"committee"`
	Subcommittee string `json:"subcommittee,omitempty"`
	ParentID     string `json:"parent_id,omitempty"`
}

func (c Committee) DocumentID() string { return c.ID }

// Name joins committee and subcommittee as "Committee - Subcommittee".
func (c Committee) Name() string {
	if c.Subcommittee != "" {
		return c.Committee + " - " + c.Subcommittee
	}
	return c.Committee
}

// Vote is a recorded vote on a bill.
type Vote struct {
	ID      string    `json:"vote_id"`
	BillID  string    `json:"bill_id"`
	State   string    `json:"state"`
	Chamber string    `json:"chamber"`
	Date    time.Time `json:"date"`
	Motion  string    `json:"motion"`
	Passed  bool      `json:"passed"`
}

func (v Vote) DocumentID() string { return v.ID }

// Bill is a stored bill document. Term is the term the bill and its votes are
// scoped to.
type Bill struct {
	ID      string `json:"_id"`
	BillID  string `json:"bill_id"`
	State   string `json:"state"`
	Term    string `json:"_term"`
	Session string `json:"session"`
	Chamber string `json:"chamber"`
	Title   string `json:"title"`
}

func (b Bill) DocumentID() string { return b.ID }
