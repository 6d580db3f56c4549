package handler

import (
	"rollcall/internal/legislators/models"
	"rollcall/internal/legislators/roles"
	"rollcall/internal/legislators/service"
)

type LegislatorResponse struct {
	ID       string `json:"leg_id"`
	FullName string `json:"full_name"`
	State    string `json:"state"`
	Active   bool   `json:"active"`
	Chamber  string `json:"chamber,omitempty"`
	Party    string `json:"party,omitempty"`
	District string `json:"district,omitempty"`
	Title    string `json:"title,omitempty"`
}

type SessionsServedResponse struct {
	ID                string   `json:"leg_id"`
	SessionsServed    []string `json:"sessions_served"`
	OldSessionsServed []string `json:"old_sessions_served"`
}

type OldRolesResponse struct {
	ID    string         `json:"leg_id"`
	Terms []TermResponse `json:"terms"`
}

type TermResponse struct {
	Term      string            `json:"term"`
	StartYear int               `json:"start_year,omitempty"`
	EndYear   int               `json:"end_year,omitempty"`
	Chambers  []ChamberResponse `json:"chambers"`
}

type ChamberResponse struct {
	Chamber string         `json:"chamber"`
	Name    string         `json:"name,omitempty"`
	Types   []TypeResponse `json:"types"`
}

type TypeResponse struct {
	Type    string         `json:"type"`
	Display string         `json:"display,omitempty"`
	Roles   []RoleResponse `json:"roles"`
}

type RoleResponse struct {
	models.Role
	CommitteeName  string `json:"committee_name,omitempty"`
	CommitteeFound bool   `json:"committee_found"`
}

type VoteRoleResponse struct {
	LegislatorID string       `json:"leg_id"`
	VoteID       string       `json:"vote_id"`
	Outcome      string       `json:"outcome"`
	Term         string       `json:"term,omitempty"`
	Chamber      string       `json:"chamber,omitempty"`
	Candidates   int          `json:"candidates"`
	Role         *models.Role `json:"role"`
}

type TermSessionsResponse struct {
	Jurisdiction string   `json:"jurisdiction"`
	Term         string   `json:"term"`
	Sessions     []string `json:"sessions"`
}

func toLegislatorResponse(leg *roles.Legislator) LegislatorResponse {
	doc := leg.Document()
	return LegislatorResponse{
		ID:       doc.ID,
		FullName: doc.DisplayName(),
		State:    doc.State,
		Active:   doc.Active,
		Chamber:  doc.Chamber,
		Party:    doc.Party,
		District: doc.District,
		Title:    leg.Title(),
	}
}

func toOldRolesResponse(legID string, groups []service.TermGroup) OldRolesResponse {
	resp := OldRolesResponse{ID: legID, Terms: make([]TermResponse, 0, len(groups))}
	for _, g := range groups {
		tr := TermResponse{
			Term:      g.Term,
			StartYear: g.Data.StartYear,
			EndYear:   g.Data.EndYear,
			Chambers:  make([]ChamberResponse, 0, len(g.Chambers)),
		}
		for _, c := range g.Chambers {
			cr := ChamberResponse{Chamber: c.Chamber, Name: c.Name, Types: make([]TypeResponse, 0, len(c.Types))}
			for _, t := range c.Types {
				typ := TypeResponse{Type: t.Slug, Display: t.Display, Roles: make([]RoleResponse, 0, len(t.Roles))}
				for _, e := range t.Roles {
					rr := RoleResponse{Role: e.Role, CommitteeFound: e.CommitteeFound}
					if e.CommitteeFound {
						rr.CommitteeName = e.Committee.Name()
					}
					typ.Roles = append(typ.Roles, rr)
				}
				cr.Types = append(cr.Types, typ)
			}
			tr.Chambers = append(tr.Chambers, cr)
		}
		resp.Terms = append(resp.Terms, tr)
	}
	return resp
}

func toVoteRoleResponse(legID, voteID string, res roles.Resolution) VoteRoleResponse {
	return VoteRoleResponse{
		LegislatorID: legID,
		VoteID:       voteID,
		Outcome:      string(res.Outcome),
		Term:         res.Term,
		Chamber:      res.Chamber,
		Candidates:   res.Candidates,
		Role:         res.Role,
	}
}
