package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/catalog"
	"github.com/skillbookhq/skillbook/internal/registry"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var readmeCmd = &cobra.Command{
	Use:     "readme",
	Aliases: []string{"regen"},
	Short:   "Regenerate the README skill tables",
	Long: `Rebuild the categorized skill tables and splice them into the
README documents, between the overview heading and the next section.
Each destination is updated independently; a missing anchor skips that
file and reports it.`,
	Run: runReadme,
}

var (
	readmePath   string
	readmeENPath string
)

func init() {
	readmeCmd.Flags().StringVar(&readmePath, "readme", "README.md", "Primary (bilingual) destination document")
	readmeCmd.Flags().StringVar(&readmeENPath, "readme-en", "README_EN.md", "English destination document")
}

func runReadme(cmd *cobra.Command, args []string) {
	records, err := registry.New(skillsDir).Load(reportSkill)
	if err != nil {
		exitWithError(err.Error())
	}

	cats := loadCategories()

	destinations := []struct {
		path string
		lang catalog.Language
	}{
		{readmePath, catalog.LangZH},
		{readmeENPath, catalog.LangEN},
	}

	failed := 0
	for _, dest := range destinations {
		if err := spliceInto(dest.path, catalog.Render(records, cats, dest.lang), dest.lang); err != nil {
			fmt.Println(ui.WarningLine(err.Error()))
			failed++
			continue
		}
		fmt.Println(ui.SuccessLine("updated " + dest.path))
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// spliceInto replaces the catalog span of one destination document.
func spliceInto(path, content string, lang catalog.Language) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	start, end := catalog.Anchors(lang)
	updated, found := catalog.Splice(string(doc), start, end, content)
	if !found {
		return fmt.Errorf("could not find section %q to replace in %s", start, path)
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// loadCategories returns the category mapping for the registry: the
// optional categories.yaml in the registry root, falling back to the
// built-in table. A malformed override is reported and the built-in
// table used instead.
func loadCategories() []catalog.Category {
	path := filepath.Join(skillsDir, catalog.ConfigFilename)
	if _, err := os.Stat(path); err != nil {
		return catalog.DefaultCategories
	}

	cats, err := catalog.LoadCategories(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.WarningLine(fmt.Sprintf("%v; using built-in categories", err)))
		return catalog.DefaultCategories
	}
	return cats
}
