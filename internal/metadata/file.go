package metadata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rollcall/pkg/platform/sentinel"
)

// FileRegistry reads jurisdiction metadata from <dir>/<abbr>.yaml on every
// Get. Put a RedisCache in front of it for repeated lookups.
type FileRegistry struct {
	dir string
}

// NewFileRegistry creates a registry rooted at dir.
func NewFileRegistry(dir string) *FileRegistry {
	return &FileRegistry{dir: dir}
}

func (r *FileRegistry) Get(_ context.Context, abbr string) (*Metadata, error) {
	if abbr == "" || strings.ContainsAny(abbr, `/\.`) {
		return nil, fmt.Errorf("metadata %q: %w", abbr, sentinel.ErrNotFound)
	}
	path := filepath.Join(r.dir, abbr+".yaml")
	m, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("metadata %q: %w", abbr, sentinel.ErrNotFound)
		}
		return nil, err
	}
	if m.Abbreviation != abbr {
		return nil, fmt.Errorf("metadata file %s declares abbreviation %q, want %q", path, m.Abbreviation, abbr)
	}
	return m, nil
}

// LoadFile decodes one jurisdiction metadata YAML file.
func LoadFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return &m, nil
}
