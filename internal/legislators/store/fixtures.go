package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadFixtures seeds cols from <dir>/<collection>.json files, each holding a
// JSON array of documents. Missing files are skipped.
func LoadFixtures(ctx context.Context, dir string, cols *Collections) error {
	if err := loadFixture(ctx, dir, LegislatorsCollection, cols.Legislators); err != nil {
		return err
	}
	if err := loadFixture(ctx, dir, CommitteesCollection, cols.Committees); err != nil {
		return err
	}
	if err := loadFixture(ctx, dir, VotesCollection, cols.Votes); err != nil {
		return err
	}
	return loadFixture(ctx, dir, BillsCollection, cols.Bills)
}

func loadFixture[T Document](ctx context.Context, dir, name string, col Collection[T]) error {
	docs, err := readFixture[T](dir, name)
	if err != nil {
		return err
	}
	for i := range docs {
		if err := col.Save(ctx, &docs[i]); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}

// readFixture decodes <dir>/<name>.json. A missing file yields no documents.
func readFixture[T Document](dir, name string) ([]T, error) {
	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var docs []T
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return docs, nil
}
