package roles

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"rollcall/internal/legislators/models"
)

const committeeTableKey = "committee-table"

// committeeTable returns the committee documents referenced by committee_id
// across all historical roles, keyed by id. The table is fetched once per
// Legislator; concurrent first callers share one fetch. A failed fetch is not
// cached.
func (l *Legislator) committeeTable(ctx context.Context) (map[string]*models.Committee, error) {
	if table, ok := l.cachedCommitteeTable(); ok {
		return table, nil
	}
	v, err, _ := l.group.Do(committeeTableKey, func() (any, error) {
		if table, ok := l.cachedCommitteeTable(); ok {
			return table, nil
		}
		table, err := l.buildCommitteeTable(ctx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.committeesByID = table
		l.tableBuilt = true
		l.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]*models.Committee), nil
}

func (l *Legislator) cachedCommitteeTable() (map[string]*models.Committee, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.committeesByID, l.tableBuilt
}

func (l *Legislator) buildCommitteeTable(ctx context.Context) (map[string]*models.Committee, error) {
	ids := l.oldRoleCommitteeIDs()
	table := make(map[string]*models.Committee, len(ids))
	if len(ids) == 0 || l.committees == nil {
		return table, nil
	}
	start := time.Now()
	found, err := l.committees.FindByIDs(ctx, ids)
	l.metrics.ObserveLookupLatency("committees", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load committees for legislator %s: %w", l.doc.ID, err)
	}
	for _, c := range found {
		if c != nil {
			table[c.ID] = c
		}
	}
	l.metrics.IncrementCommitteeTableBuilds()
	l.logger.DebugContext(ctx, "committee table built",
		"leg_id", l.doc.ID,
		"requested", len(ids),
		"found", len(table),
	)
	return table, nil
}

// oldRoleCommitteeIDs is the sorted union of committee ids in old_roles.
func (l *Legislator) oldRoleCommitteeIDs() []string {
	set := make(map[string]struct{})
	for _, roles := range l.doc.OldRoles {
		for _, r := range roles {
			if r.CommitteeID != "" {
				set[r.CommitteeID] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
