// Package roles resolves which role a legislator held at a point in time and
// groups historical roles for display.
//
// A Legislator wraps one stored legislator document together with its
// jurisdiction's term index and the collaborators needed to follow committee
// and bill references. It caches the committee back-reference table and vote
// role resolutions for its own lifetime; construct a new Legislator to observe
// fresh documents.
package roles

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"rollcall/internal/legislators/models"
	"rollcall/internal/metadata"
	"rollcall/internal/platform/metrics"
)

// CommitteeFinder fetches committee documents by id. Unknown ids are omitted
// from the result.
type CommitteeFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]*models.Committee, error)
}

// BillFinder fetches a bill document by id.
type BillFinder interface {
	FindByID(ctx context.Context, id string) (*models.Bill, error)
}

// Legislator is a legislator document bound to its lookups and caches.
type Legislator struct {
	doc        *models.Legislator
	index      *metadata.Index
	committees CommitteeFinder
	bills      BillFinder
	logger     *slog.Logger
	metrics    *metrics.Metrics

	group singleflight.Group

	mu             sync.Mutex
	committeesByID map[string]*models.Committee
	tableBuilt     bool
	voteRoles      map[string]Resolution
}

type Option func(l *Legislator)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Legislator) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Legislator) {
		l.metrics = m
	}
}

// New binds doc to its jurisdiction index and collaborators. committees and
// bills may be nil when the caller never follows committee ids or resolves
// votes.
func New(doc *models.Legislator, index *metadata.Index, committees CommitteeFinder, bills BillFinder, opts ...Option) *Legislator {
	l := &Legislator{
		doc:        doc,
		index:      index,
		committees: committees,
		bills:      bills,
		logger:     slog.New(slog.DiscardHandler),
		voteRoles:  make(map[string]Resolution),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Document returns the wrapped legislator document.
func (l *Legislator) Document() *models.Legislator {
	return l.doc
}

// Index returns the jurisdiction term index.
func (l *Legislator) Index() *metadata.Index {
	return l.index
}

// Title is the member title of the legislator's current chamber, or "".
func (l *Legislator) Title() string {
	if l.doc.Chamber == "" {
		return ""
	}
	title, _ := l.index.ChamberTitle(l.doc.Chamber)
	return title
}

// SessionsServed lists the display names of the sessions covered by the
// legislator's current membership roles. A role term that is itself a session
// identifier yields that session; otherwise every session of the term is
// listed. Unknown terms and sessions are skipped.
func (l *Legislator) SessionsServed() []string {
	var names []string
	for _, role := range l.doc.Roles {
		if role.Type != models.RoleTypeMember {
			continue
		}
		if name, ok := l.index.DisplayNameFor(role.Term); ok {
			names = append(names, name)
			continue
		}
		names = append(names, l.sessionNames(role.Term)...)
	}
	return names
}

// OldSessionsServed lists, sorted and without duplicates, the display names
// of every session of every term the legislator holds historical roles in.
func (l *Legislator) OldSessionsServed() []string {
	seen := make(map[string]struct{})
	for term, roles := range l.doc.OldRoles {
		if len(roles) == 0 {
			continue
		}
		for _, name := range l.sessionNames(term) {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (l *Legislator) sessionNames(term string) []string {
	ids, ok := l.index.SessionIDsFor(term)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := l.index.DisplayNameFor(id); ok {
			names = append(names, name)
		}
	}
	return names
}
