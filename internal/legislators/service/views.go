package service

import (
	"context"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rollcall/internal/legislators/models"
	"rollcall/internal/legislators/roles"
	"rollcall/internal/metadata"
)

// TermGroup is one term of a legislator's history, materialized for display.
type TermGroup struct {
	Term string
	// Data is the term definition; zero when the jurisdiction does not list
	// the term.
	Data     metadata.Term
	Chambers []ChamberGroup
}

type ChamberGroup struct {
	Chamber string
	Name    string
	Types   []TypeGroup
}

type TypeGroup struct {
	Slug    string
	Display string
	Roles   []RoleEntry
}

// RoleEntry is a historical role with its committee reference followed.
// CommitteeFound is false when the referenced committee no longer exists.
type RoleEntry struct {
	Role           models.Role
	Committee      roles.CommitteeRef
	CommitteeFound bool
}

// Sessions lists session display names for current and historical service.
type Sessions struct {
	Current []string
	Old     []string
}

// OldRoles groups a legislator's historical roles by term, chamber and type.
// Terms are ascending, chambers and type slugs sorted, and roles keep their
// stored order. Committee references are resolved with a single committee
// lookup for the whole history.
func (s *Service) OldRoles(ctx context.Context, legID string) ([]TermGroup, error) {
	leg, err := s.Legislator(ctx, legID)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "legislators.OldRoles", trace.WithAttributes(
		attribute.String("leg_id", legID),
	))
	defer span.End()

	groups := []TermGroup{}
	for term, chambers := range leg.OldRoles() {
		tg := TermGroup{Term: term}
		for _, chamber := range slices.Sorted(maps.Keys(chambers)) {
			byType := chambers[chamber]
			cg := ChamberGroup{Chamber: chamber}
			for _, slug := range slices.Sorted(maps.Keys(byType)) {
				group := byType[slug]
				if len(group) == 0 {
					continue
				}
				if cg.Name == "" {
					cg.Name, _ = group[0].ChamberName()
				}
				if d, ok := group[0].TermData(); ok {
					tg.Data = d
				}
				typ := TypeGroup{Slug: slug, Display: group[0].TypeDisplay()}
				for _, role := range group {
					entry, err := roleEntry(ctx, role)
					if err != nil {
						return nil, fail(span, translate(err, "committees"))
					}
					typ.Roles = append(typ.Roles, entry)
				}
				cg.Types = append(cg.Types, typ)
			}
			tg.Chambers = append(tg.Chambers, cg)
		}
		groups = append(groups, tg)
	}
	return groups, nil
}

func roleEntry(ctx context.Context, role roles.OldRole) (RoleEntry, error) {
	entry := RoleEntry{Role: role.Role}
	if !role.IsCommittee() && role.CommitteeID == "" {
		return entry, nil
	}
	ref, ok, err := role.CommitteeObject(ctx)
	if err != nil {
		return RoleEntry{}, err
	}
	entry.Committee = ref
	entry.CommitteeFound = ok
	return entry, nil
}

// SessionsServed returns the display names of the sessions a legislator
// served in, currently and historically.
func (s *Service) SessionsServed(ctx context.Context, legID string) (Sessions, error) {
	leg, err := s.Legislator(ctx, legID)
	if err != nil {
		return Sessions{}, err
	}
	return Sessions{
		Current: nonNil(leg.SessionsServed()),
		Old:     nonNil(leg.OldSessionsServed()),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
