package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSkill(t *testing.T, root, id, content string) {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEnumerationOrder(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "zeta", "---\ndescription: last\n---")
	writeSkill(t, root, "alpha", "---\ndescription: first\n---")
	writeSkill(t, root, "mid", "---\ndescription: middle\n---")

	reg := New(root)
	records, err := reg.Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("got %d records, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLoadSkipsFoldersWithoutDoc(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "real", "---\ndescription: ok\n---")
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}
	// A stray file at the root is not a skill folder
	if err := os.WriteFile(filepath.Join(root, "sources.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := New(root).Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "real" {
		t.Fatalf("got %#v, want single record for 'real'", records)
	}
}

func TestLoadMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).Load(nil)
	if err == nil {
		t.Fatal("expected error for missing registry root")
	}
}

func TestLoadReportsUnreadableSkill(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "good", "---\ndescription: fine\n---")

	// SKILL.md as a directory makes the read fail while the stat succeeds
	if err := os.MkdirAll(filepath.Join(root, "bad", "SKILL.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	var reported []string
	records, err := New(root).Load(func(id string, err error) {
		reported = append(reported, id)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "good" {
		t.Fatalf("got %#v, want single record for 'good'", records)
	}
	if len(reported) != 1 || reported[0] != "bad" {
		t.Fatalf("reported = %v, want [bad]", reported)
	}
}

func TestLoadDetail(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "docx", "---\nname: docx\ndescription: |\n  Line one.\n  Line two.\n---")

	rec, err := New(root).LoadDetail("docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Description != "Line one. Line two." {
		t.Errorf("Description = %q", rec.Description)
	}

	if _, err := New(root).LoadDetail("missing"); err == nil {
		t.Error("expected error for missing skill")
	}
}
