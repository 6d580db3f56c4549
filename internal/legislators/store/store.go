// Package store persists legislator, committee, vote and bill documents.
//
// Every collection is keyed by the document's own id and offers the two
// lookups the role resolver needs: one document by id, and many by an id set.
// Misses return errors wrapping sentinel.ErrNotFound; FindByIDs silently omits
// unknown ids.
package store

import (
	"context"

	"rollcall/internal/legislators/models"
)

// Collection names, shared by the Postgres table and fixture file names.
const (
	LegislatorsCollection = "legislators"
	CommitteesCollection  = "committees"
	VotesCollection       = "votes"
	BillsCollection       = "bills"
)

// Document is a stored record with its own id.
type Document interface {
	DocumentID() string
}

// Collection stores documents of one type.
type Collection[T Document] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	FindByIDs(ctx context.Context, ids []string) ([]*T, error)
	Save(ctx context.Context, doc *T) error
}

// Collections bundles the document collections the service reads.
type Collections struct {
	Legislators Collection[models.Legislator]
	Committees  Collection[models.Committee]
	Votes       Collection[models.Vote]
	Bills       Collection[models.Bill]
}
