package roles

import (
	"context"

	"rollcall/internal/legislators/models"
	"rollcall/internal/metadata"
)

// OldRole is a historical role paired with the legislator it belongs to, so
// display helpers can reach the jurisdiction metadata and committee table.
type OldRole struct {
	models.Role
	owner *Legislator
}

// NewOldRole pairs role with owner. owner may be nil; lookups then report
// absence.
func NewOldRole(role models.Role, owner *Legislator) OldRole {
	return OldRole{Role: role, owner: owner}
}

// Owner returns the legislator the role belongs to.
func (r OldRole) Owner() *Legislator {
	return r.owner
}

// ChamberName is "Joint" for joint roles and the jurisdiction's chamber name
// otherwise.
func (r OldRole) ChamberName() (string, bool) {
	if r.Chamber == metadata.JointChamber {
		return "Joint", true
	}
	if r.owner == nil {
		return "", false
	}
	return r.owner.index.ChamberName(r.Chamber)
}

// TermData returns the definition of the role's term.
func (r OldRole) TermData() (metadata.Term, bool) {
	if r.owner == nil {
		return metadata.Term{}, false
	}
	return r.owner.index.Term(r.Term)
}

// CommitteeObject returns the committee the role refers to. A role with a
// committee_id is looked up in the owner's committee table; ok is false when
// that committee no longer exists. A role without a committee_id is its own
// committee reference.
func (r OldRole) CommitteeObject(ctx context.Context) (CommitteeRef, bool, error) {
	if r.CommitteeID == "" {
		self := r
		return CommitteeRef{Role: &self}, true, nil
	}
	if r.owner == nil {
		return CommitteeRef{}, false, nil
	}
	table, err := r.owner.committeeTable(ctx)
	if err != nil {
		return CommitteeRef{}, false, err
	}
	c, ok := table[r.CommitteeID]
	if !ok {
		r.owner.logger.WarnContext(ctx, "committee referenced by role not found",
			"leg_id", r.owner.doc.ID,
			"committee_id", r.CommitteeID,
		)
		return CommitteeRef{}, false, nil
	}
	return CommitteeRef{Committee: c}, true, nil
}

// CommitteeRef is either a stored committee document or, when the role
// carries no committee_id, the role itself.
type CommitteeRef struct {
	Committee *models.Committee
	Role      *OldRole
}

// IsSelf reports whether the role stands in for its own committee.
func (c CommitteeRef) IsSelf() bool {
	return c.Committee == nil && c.Role != nil
}

// Name is the committee display name of whichever side is set.
func (c CommitteeRef) Name() string {
	switch {
	case c.Committee != nil:
		return c.Committee.Name()
	case c.Role != nil:
		return c.Role.CommitteeName()
	}
	return ""
}
