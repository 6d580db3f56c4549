package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"rollcall/internal/legislators/models"
	"rollcall/pkg/platform/sentinel"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	body       JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

const (
	findByIDQuery  = `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	findByIDsQuery = `SELECT body FROM documents WHERE collection = $1 AND id = ANY($2) ORDER BY id`
	upsertQuery    = `
INSERT INTO documents (collection, id, body, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

// EnsureSchema creates the documents table when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}

// PostgresCollection stores documents of one type as JSONB rows in the shared
// documents table.
type PostgresCollection[T Document] struct {
	db         *sql.DB
	collection string
}

// NewPostgresCollection constructs a PostgreSQL-backed collection.
func NewPostgresCollection[T Document](db *sql.DB, collection string) *PostgresCollection[T] {
	return &PostgresCollection[T]{db: db, collection: collection}
}

// NewPostgres creates PostgreSQL-backed collections for every document type.
func NewPostgres(db *sql.DB) *Collections {
	return &Collections{
		Legislators: NewPostgresCollection[models.Legislator](db, LegislatorsCollection),
		Committees:  NewPostgresCollection[models.Committee](db, CommitteesCollection),
		Votes:       NewPostgresCollection[models.Vote](db, VotesCollection),
		Bills:       NewPostgresCollection[models.Bill](db, BillsCollection),
	}
}

func (c *PostgresCollection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var body []byte
	err := c.db.QueryRowContext(ctx, findByIDQuery, c.collection, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %s: %w", c.collection, id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find %s %s: %w", c.collection, id, err)
	}
	doc, err := c.decode(body)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindByIDs returns the stored documents among ids, ordered by id.
func (c *PostgresCollection[T]) FindByIDs(ctx context.Context, ids []string) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := c.db.QueryContext(ctx, findByIDsQuery, c.collection, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find %s by ids: %w", c.collection, err)
	}
	defer rows.Close()

	out := make([]*T, 0, len(ids))
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.collection, err)
		}
		doc, err := c.decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.collection, err)
	}
	return out, nil
}

func (c *PostgresCollection[T]) Save(ctx context.Context, doc *T) error {
	if doc == nil {
		return fmt.Errorf("%s document is required", c.collection)
	}
	id := (*doc).DocumentID()
	if id == "" {
		return fmt.Errorf("%s: document id is required", c.collection)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", c.collection, id, err)
	}
	if _, err := c.db.ExecContext(ctx, upsertQuery, c.collection, id, body); err != nil {
		return fmt.Errorf("save %s %s: %w", c.collection, id, err)
	}
	return nil
}

func (c *PostgresCollection[T]) decode(body []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.collection, err)
	}
	return &doc, nil
}
