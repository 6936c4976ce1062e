// Package catalog renders the categorized skill tables that get spliced
// into the README documents, in two language variants. The category
// mapping is plain data passed in by the caller, so it can be swapped per
// registry (or per test) without touching the renderer.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillbookhq/skillbook/internal/skill"
)

// Language selects a rendering variant.
type Language string

const (
	// LangZH is the primary variant with bilingual labels
	LangZH Language = "zh"
	// LangEN is the English-only variant
	LangEN Language = "en"
)

// Category pairs a bilingual label ("English / 中文") with the ordered
// skill identifiers it contains. The English variant renders only the part
// of the label before " / ".
type Category struct {
	Label  string   `yaml:"label"`
	Skills []string `yaml:"skills"`
}

// ConfigFilename is the optional per-registry category override file.
const ConfigFilename = "categories.yaml"

// LoadCategories reads a category mapping from a YAML file.
func LoadCategories(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cats, nil
}

// localization of the fixed table strings per variant
type locale struct {
	title  string
	header string
	other  string
}

var locales = map[Language]locale{
	LangZH: {
		title:  "## Skills 概览",
		header: "| Skill | 描述 (Description) | 触发条件 (Triggers) | 效果 (Effect) |",
		other:  "### Other / 其他",
	},
	LangEN: {
		title:  "## Skills Overview",
		header: "| Skill | Description | Triggers | Effect |",
		other:  "### Other",
	},
}

// Anchors returns the splice markers for a language variant: the section
// heading the rendered content starts with, and the literal next structural
// heading that bounds it in the destination document.
func Anchors(lang Language) (start, end string) {
	if lang == LangEN {
		return "## Skills Overview", "## Directory Structure"
	}
	return "## Skills 概览", "## 目录结构"
}

// Render produces the full catalog section for one language variant. The
// records must be in registry enumeration order; category order and the
// per-category skill order come from cats. Identifiers mapped to a category
// but absent from the registry are silently omitted; registry skills not in
// any category are appended under the "Other" table in enumeration order.
// Render is deterministic: unchanged inputs produce byte-identical output.
func Render(records []skill.Record, cats []Category, lang Language) string {
	loc := locales[lang]

	byID := make(map[string]skill.Record, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	var md strings.Builder
	md.WriteString(loc.title + "\n\n")

	emitted := make(map[string]bool)
	for _, cat := range cats {
		var present []skill.Record
		for _, id := range cat.Skills {
			if rec, ok := byID[id]; ok {
				present = append(present, rec)
				emitted[id] = true
			}
		}
		if len(present) == 0 {
			continue
		}
		writeTable(&md, "### "+categoryLabel(cat.Label, lang), loc.header, present)
	}

	var uncategorized []skill.Record
	for _, rec := range records {
		if !emitted[rec.ID] {
			uncategorized = append(uncategorized, rec)
		}
	}
	if len(uncategorized) > 0 {
		writeTable(&md, loc.other, loc.header, uncategorized)
	}

	return md.String()
}

// categoryLabel reduces a bilingual "English / 中文" label for the English
// variant; the primary variant keeps the label as declared.
func categoryLabel(label string, lang Language) string {
	if lang == LangEN {
		if en, _, found := strings.Cut(label, " / "); found {
			return en
		}
	}
	return label
}

func writeTable(md *strings.Builder, heading, header string, records []skill.Record) {
	md.WriteString(heading + "\n\n")
	md.WriteString(header + "\n")
	md.WriteString("|---|---|---|---|\n")
	for _, rec := range records {
		md.WriteString(row(rec) + "\n")
	}
	md.WriteString("\n")
}

// row renders one table row. The link label uses the identifier, not the
// display name, pointing at the folder's SKILL.md by convention.
func row(rec skill.Record) string {
	link := fmt.Sprintf("[`%s`](./%s/%s/%s)", rec.ID, skill.DirName, rec.ID, skill.Filename)
	desc := strings.ReplaceAll(rec.Description, "|", `\|`)
	return fmt.Sprintf("| %s | %s | %s | %s |", link, desc, cell(rec.Triggers), cell(rec.Effects))
}

// cell joins a multi-value column with the fixed separator, or renders a
// dash when empty.
func cell(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, "<br>")
}
