package roles

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"rollcall/internal/legislators/models"
)

// Outcome names the path by which a role was resolved.
type Outcome string

const (
	// OutcomeActive: the legislator is active and their top-level record
	// stands in for a role.
	OutcomeActive Outcome = "active"
	// OutcomeSingleCandidate: exactly one historical role matched the chamber.
	// Its dates were not checked.
	OutcomeSingleCandidate Outcome = "single_candidate"
	// OutcomeDateRange: the first chamber match whose date range strictly
	// contains the event date.
	OutcomeDateRange Outcome = "date_range"
	// OutcomeUndetermined: no role could be selected. Not an error.
	OutcomeUndetermined Outcome = "undetermined"
)

// Resolution is the role in force for a legislator at an event.
type Resolution struct {
	// Role is nil when Outcome is OutcomeUndetermined.
	Role    *models.Role
	Outcome Outcome
	Term    string
	Chamber string
	// Candidates is the number of historical roles matching the chamber. It
	// separates "no chamber match" (0) from "no date match" (>1) when the
	// outcome is undetermined.
	Candidates int
}

// Found reports whether a role was selected.
func (r Resolution) Found() bool {
	return r.Role != nil
}

var errVoteRequired = errors.New("vote is required")

// Resolve selects the role leg held in chamber at time at, within term.
//
// Active legislators resolve to their own top-level record. Otherwise the
// term's historical roles are filtered by chamber: a single match is returned
// as is; with zero or several matches the first role whose start and end dates
// strictly enclose at is returned. When the legislator has no historical roles
// for term, the error wraps models.ErrMissingTermData.
func Resolve(leg *models.Legislator, term, chamber string, at time.Time) (Resolution, error) {
	if leg.Active {
		role := leg.AsRole()
		return Resolution{Role: &role, Outcome: OutcomeActive, Term: cmp.Or(term, role.Term), Chamber: role.Chamber}, nil
	}

	roles, ok := leg.OldRoles[term]
	if !ok {
		return Resolution{}, fmt.Errorf("legislator %s term %q: %w", leg.ID, term, models.ErrMissingTermData)
	}

	candidates := make([]models.Role, 0, len(roles))
	for _, r := range roles {
		if r.Chamber == chamber {
			candidates = append(candidates, r)
		}
	}

	res := Resolution{Outcome: OutcomeUndetermined, Term: term, Chamber: chamber, Candidates: len(candidates)}
	if len(candidates) == 1 {
		res.Role = &candidates[0]
		res.Outcome = OutcomeSingleCandidate
		return res, nil
	}
	for i := range candidates {
		if candidates[i].Contains(at) {
			res.Role = &candidates[i]
			res.Outcome = OutcomeDateRange
			return res, nil
		}
	}
	return res, nil
}

// VoteRole resolves the role the legislator held when vote was taken. The
// term comes from the vote's bill, the chamber and date from the vote itself.
// Active legislators short-circuit without a bill lookup.
//
// Results are memoized per vote id for the lifetime of the Legislator. Errors
// are not memoized.
func (l *Legislator) VoteRole(ctx context.Context, vote *models.Vote) (Resolution, error) {
	if vote == nil {
		return Resolution{}, errVoteRequired
	}
	if l.doc.Active {
		return Resolve(l.doc, "", vote.Chamber, vote.Date)
	}
	if vote.ID == "" {
		return l.resolveVote(ctx, vote)
	}
	if res, ok := l.memoizedVoteRole(vote.ID); ok {
		return res, nil
	}

	v, err, _ := l.group.Do("vote:"+vote.ID, func() (any, error) {
		if res, ok := l.memoizedVoteRole(vote.ID); ok {
			return res, nil
		}
		res, err := l.resolveVote(ctx, vote)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.voteRoles[vote.ID] = res
		l.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return Resolution{}, err
	}
	return v.(Resolution), nil
}

func (l *Legislator) memoizedVoteRole(voteID string) (Resolution, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res, ok := l.voteRoles[voteID]
	return res, ok
}

func (l *Legislator) resolveVote(ctx context.Context, vote *models.Vote) (Resolution, error) {
	if l.bills == nil {
		return Resolution{}, fmt.Errorf("resolve vote %s: no bill lookup configured", vote.ID)
	}
	start := time.Now()
	bill, err := l.bills.FindByID(ctx, vote.BillID)
	l.metrics.ObserveLookupLatency("bill", time.Since(start))
	if err != nil {
		return Resolution{}, fmt.Errorf("find bill %s for vote %s: %w", vote.BillID, vote.ID, err)
	}
	res, err := Resolve(l.doc, bill.Term, vote.Chamber, vote.Date)
	if err != nil {
		return Resolution{}, err
	}
	if !res.Found() {
		l.logger.WarnContext(ctx, "vote role undetermined",
			"leg_id", l.doc.ID,
			"vote_id", vote.ID,
			"term", res.Term,
			"chamber", res.Chamber,
			"candidates", res.Candidates,
		)
	}
	return res, nil
}
