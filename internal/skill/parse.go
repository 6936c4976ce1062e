package skill

import "strings"

// delimiter marks the start and end of a front-matter block. Both lines
// must contain exactly the marker (surrounding whitespace ignored).
const delimiter = "---"

// sectionHeadings maps each extracted section to its accepted heading
// strings, compared case-insensitively. Adding a language variant is a
// data change here, not a code change.
var sectionHeadings = map[string][]string{
	"triggers": {"Triggers", "触发条件"},
	"effect":   {"Effect", "效果"},
}

// Parse extracts a summary Record from SKILL.md content. Block-scalar
// descriptions are replaced with DescPlaceholder; use ParseDetail when the
// full text matters. Parse never fails on malformed input.
func Parse(id, content string) Record {
	r := Record{ID: id, Name: id}

	fm, ok := frontmatter(content)
	if ok {
		for _, line := range strings.Split(fm, "\n") {
			if v, ok := keyValue(line, "name"); ok && v != "" {
				r.Name = v
			}
			if v, ok := keyValue(line, "description"); ok {
				if isBlockScalar(v) {
					r.Description = DescPlaceholder
				} else {
					r.Description = strings.Trim(v, `"'`)
				}
			}
		}
	}

	r.Triggers = sectionItems(content, "triggers")
	r.Effects = sectionItems(content, "effect")
	return r
}

// ParseDetail is Parse with block-scalar descriptions expanded: the
// indented continuation lines are collected, trimmed, and joined with
// single spaces.
func ParseDetail(id, content string) Record {
	r := Parse(id, content)

	fm, ok := frontmatter(content)
	if !ok {
		return r
	}

	lines := strings.Split(fm, "\n")
	for i, line := range lines {
		v, ok := keyValue(line, "description")
		if !ok {
			continue
		}
		if !isBlockScalar(v) {
			break // inline scalar, already handled by Parse
		}

		var parts []string
		for _, cont := range lines[i+1:] {
			if isKeyLine(cont) {
				break
			}
			if t := strings.TrimSpace(cont); t != "" {
				parts = append(parts, t)
			}
		}
		r.Description = strings.Join(parts, " ")
		break
	}

	return r
}

// frontmatter returns the text between the two delimiter lines at the very
// start of the document, or ok=false when the block is absent or unclosed.
func frontmatter(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}

// keyValue matches a column-zero "key: value" line for the given key and
// returns the trimmed value.
func keyValue(line, key string) (string, bool) {
	if !strings.HasPrefix(line, key+":") {
		return "", false
	}
	return strings.TrimSpace(line[len(key)+1:]), true
}

// isBlockScalar reports whether a front-matter value is a YAML literal or
// folded block indicator, deferring the real value to continuation lines.
func isBlockScalar(v string) bool {
	return v == "|" || v == ">"
}

// isKeyLine reports whether a line starts a new front-matter entry,
// terminating a block-scalar continuation.
func isKeyLine(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	return strings.Contains(line, ":")
}

// sectionItems collects the dash-list items under the named section. The
// section body runs from its "## " heading to the next heading of the same
// level or end of document; non-list lines are ignored.
func sectionItems(content, kind string) []string {
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if matchesHeading(line, kind) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var items []string
	for _, line := range lines[start:] {
		if strings.HasPrefix(line, "## ") {
			break
		}
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "-") {
			continue
		}
		if item := strings.TrimSpace(strings.TrimPrefix(t, "-")); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// matchesHeading reports whether a line is a level-2 heading for the given
// section kind, in any accepted language, case-insensitively. Trailing text
// after the heading word is tolerated.
func matchesHeading(line, kind string) bool {
	if !strings.HasPrefix(line, "## ") {
		return false
	}
	rest := strings.ToLower(strings.TrimSpace(line[3:]))
	for _, h := range sectionHeadings[kind] {
		if strings.HasPrefix(rest, strings.ToLower(h)) {
			return true
		}
	}
	return false
}
