package skill

import (
	"reflect"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantDesc string
	}{
		{
			name: "scalar description",
			content: `---
name: react
description: Best practices for React apps
---
# Body`,
			wantName: "react",
			wantDesc: "Best practices for React apps",
		},
		{
			name: "quoted description stripped",
			content: `---
name: pdf
description: "Extract text from PDF files"
---`,
			wantName: "pdf",
			wantDesc: "Extract text from PDF files",
		},
		{
			name: "single-quoted description stripped",
			content: `---
description: 'Design database schemas'
---`,
			wantName: "my-skill",
			wantDesc: "Design database schemas",
		},
		{
			name: "literal block scalar becomes placeholder",
			content: `---
name: docx
description: |
  Work with Word documents.
  Handles tracked changes.
---`,
			wantName: "docx",
			wantDesc: DescPlaceholder,
		},
		{
			name: "folded block scalar becomes placeholder",
			content: `---
description: >
  A folded
  description.
---`,
			wantName: "my-skill",
			wantDesc: DescPlaceholder,
		},
		{
			name:     "no frontmatter defaults to folder name",
			content:  "# Just markdown\n\nNo metadata here.",
			wantName: "my-skill",
			wantDesc: "",
		},
		{
			name: "unclosed frontmatter treated as absent",
			content: `---
name: broken
description: never terminated`,
			wantName: "my-skill",
			wantDesc: "",
		},
		{
			name: "indented keys ignored",
			content: `---
meta:
  name: nested
  description: nested value
---`,
			wantName: "my-skill",
			wantDesc: "",
		},
		{
			name:     "empty document",
			content:  "",
			wantName: "my-skill",
			wantDesc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("my-skill", tt.content)
			if got.ID != "my-skill" {
				t.Errorf("ID = %q, want %q", got.ID, "my-skill")
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDesc string
	}{
		{
			name: "literal block joined with spaces",
			content: `---
name: docx
description: |
  Work with Word documents.
  Handles tracked changes.
tags: office
---`,
			wantDesc: "Work with Word documents. Handles tracked changes.",
		},
		{
			name: "folded block joined with spaces",
			content: `---
description: >
  Line one
  line two
---`,
			wantDesc: "Line one line two",
		},
		{
			name: "continuation stops at next key",
			content: `---
description: |
  Only this line.
name: after
---`,
			wantDesc: "Only this line.",
		},
		{
			name: "blank continuation lines dropped",
			content: `---
description: |
  First.

  Second.
---`,
			wantDesc: "First. Second.",
		},
		{
			name: "scalar unchanged by detail view",
			content: `---
description: A plain value
---`,
			wantDesc: "A plain value",
		},
		{
			name:     "no frontmatter",
			content:  "body only",
			wantDesc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDetail("my-skill", tt.content)
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestParseSections(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantTriggers []string
		wantEffects  []string
	}{
		{
			name: "english headings",
			content: `# Skill

## Triggers
- user asks about React
- component design questions

## Effect
- applies hook patterns
`,
			wantTriggers: []string{"user asks about React", "component design questions"},
			wantEffects:  []string{"applies hook patterns"},
		},
		{
			name: "chinese headings",
			content: `## 触发条件
- 用户提到前端
- 需要组件设计

## 效果
- 输出最佳实践
`,
			wantTriggers: []string{"用户提到前端", "需要组件设计"},
			wantEffects:  []string{"输出最佳实践"},
		},
		{
			name: "case insensitive with trailing text",
			content: `## TRIGGERS (when to use)
- anytime

## effect summary
- does the thing
`,
			wantTriggers: []string{"anytime"},
			wantEffects:  []string{"does the thing"},
		},
		{
			name: "body stops at next heading",
			content: `## Triggers
- first

## Notes
- not a trigger
`,
			wantTriggers: []string{"first"},
			wantEffects:  nil,
		},
		{
			name: "non-list lines ignored",
			content: `## Effect
This paragraph is skipped.
- kept
  - indented item kept too
`,
			wantTriggers: nil,
			wantEffects:  []string{"kept", "indented item kept too"},
		},
		{
			name: "heading with no items yields empty",
			content: `## Triggers

Nothing listed.
`,
			wantTriggers: nil,
			wantEffects:  nil,
		},
		{
			name:         "sections absent",
			content:      "# Only a title",
			wantTriggers: nil,
			wantEffects:  nil,
		},
		{
			name: "sections without frontmatter still parsed",
			content: `## Triggers
- standalone
`,
			wantTriggers: []string{"standalone"},
			wantEffects:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("s", tt.content)
			if !reflect.DeepEqual(got.Triggers, tt.wantTriggers) {
				t.Errorf("Triggers = %#v, want %#v", got.Triggers, tt.wantTriggers)
			}
			if !reflect.DeepEqual(got.Effects, tt.wantEffects) {
				t.Errorf("Effects = %#v, want %#v", got.Effects, tt.wantEffects)
			}
		})
	}
}
