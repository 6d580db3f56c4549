package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rollcall/internal/legislators/models"
)

const (
	createImportTable = `
CREATE TEMP TABLE documents_import (
	collection TEXT  NOT NULL,
	id         TEXT  NOT NULL,
	body       JSONB NOT NULL
) ON COMMIT DROP`
	mergeImportTable = `
INSERT INTO documents (collection, id, body, updated_at)
SELECT collection, id, body, now() FROM documents_import
ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

// Importer bulk-loads document dumps into the documents table. Rows are
// streamed with COPY into a temporary table and merged in one statement, so
// an import either lands completely or not at all.
type Importer struct {
	pool *pgxpool.Pool
}

func NewImporter(pool *pgxpool.Pool) *Importer {
	return &Importer{pool: pool}
}

// ImportDir imports every <collection>.json dump found in dir and returns the
// number of documents merged per collection.
func (i *Importer) ImportDir(ctx context.Context, dir string) (map[string]int64, error) {
	if _, err := i.pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure documents schema: %w", err)
	}
	counts := make(map[string]int64, 4)
	var err error
	if counts[LegislatorsCollection], err = importFixture[models.Legislator](ctx, i, dir, LegislatorsCollection); err != nil {
		return nil, err
	}
	if counts[CommitteesCollection], err = importFixture[models.Committee](ctx, i, dir, CommitteesCollection); err != nil {
		return nil, err
	}
	if counts[VotesCollection], err = importFixture[models.Vote](ctx, i, dir, VotesCollection); err != nil {
		return nil, err
	}
	if counts[BillsCollection], err = importFixture[models.Bill](ctx, i, dir, BillsCollection); err != nil {
		return nil, err
	}
	return counts, nil
}

func importFixture[T Document](ctx context.Context, i *Importer, dir, collection string) (int64, error) {
	docs, err := readFixture[T](dir, collection)
	if err != nil {
		return 0, err
	}
	return Import(ctx, i, collection, docs)
}

// Import merges docs into collection. A later document replaces an earlier
// one with the same id.
func Import[T Document](ctx context.Context, i *Importer, collection string, docs []T) (int64, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(docs))
	index := make(map[string]int, len(docs))
	for _, doc := range docs {
		id := doc.DocumentID()
		if id == "" {
			return 0, fmt.Errorf("import %s: document without id", collection)
		}
		body, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("import %s %s: encode: %w", collection, id, err)
		}
		row := []any{collection, id, body}
		if at, ok := index[id]; ok {
			rows[at] = row
			continue
		}
		index[id] = len(rows)
		rows = append(rows, row)
	}

	tx, err := i.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("import %s: begin: %w", collection, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, createImportTable); err != nil {
		return 0, fmt.Errorf("import %s: create staging table: %w", collection, err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"documents_import"}, []string{"collection", "id", "body"}, pgx.CopyFromRows(rows)); err != nil {
		return 0, fmt.Errorf("import %s: copy: %w", collection, err)
	}
	tag, err := tx.Exec(ctx, mergeImportTable)
	if err != nil {
		return 0, fmt.Errorf("import %s: merge: %w", collection, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("import %s: commit: %w", collection, err)
	}
	return tag.RowsAffected(), nil
}
