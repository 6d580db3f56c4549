package roles

import (
	"iter"
	"maps"
	"slices"

	"rollcall/internal/legislators/models"
)

// ChamberRoles maps chamber to type slug to roles, in input order.
type ChamberRoles map[string]map[string][]OldRole

// GroupByTermChamberType lazily yields, per term, the term's roles grouped by
// chamber and then by type slug. Each term is grouped only when reached.
// Terms are yielded in ascending identifier order. Roles sharing a chamber are
// collected together wherever they appear in the input; within a group input
// order is kept. Every yielded role points back at owner.
func GroupByTermChamberType(owner *Legislator, rolesByTerm map[string][]models.Role) iter.Seq2[string, ChamberRoles] {
	return func(yield func(string, ChamberRoles) bool) {
		for _, term := range slices.Sorted(maps.Keys(rolesByTerm)) {
			if !yield(term, groupTerm(owner, rolesByTerm[term])) {
				return
			}
		}
	}
}

func groupTerm(owner *Legislator, roles []models.Role) ChamberRoles {
	grouped := make(ChamberRoles)
	for _, role := range roles {
		byType, ok := grouped[role.Chamber]
		if !ok {
			byType = make(map[string][]OldRole)
			grouped[role.Chamber] = byType
		}
		slug := role.TypeSlug()
		byType[slug] = append(byType[slug], NewOldRole(role, owner))
	}
	return grouped
}

// OldRoles groups the legislator's historical roles by term, chamber and type.
func (l *Legislator) OldRoles() iter.Seq2[string, ChamberRoles] {
	return GroupByTermChamberType(l, l.doc.OldRoles)
}
