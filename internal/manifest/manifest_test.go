package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeManifest(t, `{
  "pdf": {"url": "https://github.com/anthropics/skills", "path": "document-skills/pdf"},
  "react": {"url": "https://github.com/vercel/skills", "branch": "canary"}
}`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := entries["pdf"]; got.Branch != DefaultBranch || got.Path != "document-skills/pdf" {
		t.Errorf("pdf entry = %#v", got)
	}
	if got := entries["react"]; got.Branch != "canary" || got.Path != "" {
		t.Errorf("react entry = %#v", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeManifest(t, `{"pdf": `)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), Filename)); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestIDsSorted(t *testing.T) {
	entries := map[string]Entry{"zeta": {}, "alpha": {}, "mid": {}}
	got := IDs(entries)
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
}
