// Package registry enumerates the skill folders on disk and turns them
// into skill records. The registry is read-only here; only the syncer
// replaces folders, and only those governed by the source manifest.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillbookhq/skillbook/internal/skill"
)

// Registry reads skill folders from a root directory.
type Registry struct {
	Root string
}

// New creates a registry over the given root directory.
func New(root string) *Registry {
	return &Registry{Root: root}
}

// Load extracts a summary record from every skill folder, in lexicographic
// folder order. Folders without a SKILL.md are ignored; a folder whose
// SKILL.md cannot be read is reported through report and skipped, never
// fatal. The returned error covers only the registry root itself.
func (r *Registry) Load(report func(id string, err error)) ([]skill.Record, error) {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", r.Root, err)
	}

	var records []skill.Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()

		path := filepath.Join(r.Root, id, skill.Filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if report != nil {
				report(id, err)
			}
			continue
		}

		records = append(records, skill.Parse(id, string(content)))
	}

	return records, nil
}

// LoadDetail extracts the detailed record for a single skill, with
// block-scalar descriptions fully expanded.
func (r *Registry) LoadDetail(id string) (skill.Record, error) {
	path := filepath.Join(r.Root, id, skill.Filename)
	content, err := os.ReadFile(path)
	if err != nil {
		return skill.Record{}, fmt.Errorf("failed to read skill %s: %w", id, err)
	}
	return skill.ParseDetail(id, string(content)), nil
}

// DocPath returns the path to a skill's SKILL.md under the registry root.
func (r *Registry) DocPath(id string) string {
	return filepath.Join(r.Root, id, skill.Filename)
}
