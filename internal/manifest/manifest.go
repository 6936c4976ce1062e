// Package manifest reads the sources.json file that declares, per skill
// identifier, the upstream repository a local skill folder mirrors.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Filename is the manifest file name inside the registry root.
const Filename = "sources.json"

// DefaultBranch is assumed when an entry declares no branch.
const DefaultBranch = "main"

// Entry declares the upstream source for one mirrored skill. The key in
// the manifest must equal the local folder name it governs. An empty Path
// mirrors the repository root.
type Entry struct {
	URL    string `json:"url"`
	Branch string `json:"branch,omitempty"`
	Path   string `json:"path,omitempty"`
}

// Load reads and parses a manifest, applying per-entry defaults. A missing
// or malformed file is a structural failure: the caller reports it once
// and skips synchronization for the run.
func Load(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for id, e := range entries {
		if e.Branch == "" {
			e.Branch = DefaultBranch
			entries[id] = e
		}
	}

	return entries, nil
}

// IDs returns the manifest identifiers in sorted order, for deterministic
// processing.
func IDs(entries map[string]Entry) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
