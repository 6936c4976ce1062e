// Package skill defines the skill record model and the SKILL.md metadata
// extraction. A skill is a folder in the registry holding a SKILL.md with
// optional front-matter (name, description) and optional Triggers/Effect
// sections. Extraction never fails: anything malformed or absent degrades
// to a default value.
package skill

const (
	// Filename is the standard filename for skill definitions
	Filename = "SKILL.md"

	// DirName is the standard directory name for the registry root
	DirName = "skills"

	// DescPlaceholder stands in for block-scalar descriptions in summary
	// views, where the multi-line value is not worth expanding
	DescPlaceholder = "See details."
)

// Record is the metadata extracted from one skill folder. It is built
// fresh on every extraction pass and never persisted.
type Record struct {
	// ID is the folder name, unique within the registry
	ID string

	// Name is the display name from front-matter, defaulting to ID
	Name string

	// Description is a single paragraph. In summary extraction a
	// block-scalar value becomes DescPlaceholder; in detail extraction
	// the continuation lines are joined into the real text.
	Description string

	// Triggers and Effects hold the dash-list items of their sections,
	// in document order. Empty when the section is absent or has no items.
	Triggers []string
	Effects  []string
}
