package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/manifest"
	"github.com/skillbookhq/skillbook/internal/syncer"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"update"},
	Short:   "Mirror skills from their upstream sources",
	Long: `Refresh every skill governed by sources.json: shallow-clone the
declared branch (falling back once to the repository's default branch),
then replace the local folder with the declared subpath's content.

Entries are independent; a failing entry is reported and the rest still
run. The command exits non-zero when any entry failed.`,
	Run: runSync,
}

func runSync(cmd *cobra.Command, args []string) {
	manifestPath := filepath.Join(skillsDir, manifest.Filename)

	entries, err := manifest.Load(manifestPath)
	if err != nil {
		// Structural failure: report once, skip the whole run
		fmt.Println(ui.WarningLine(err.Error()))
		return
	}

	fmt.Printf("Found %d skills with upstream sources.\n", len(entries))

	s := syncer.New(skillsDir)
	var updated, skipped, failed int

	for _, id := range manifest.IDs(entries) {
		e := entries[id]
		if e.URL == "" {
			skipped++
			continue
		}

		fmt.Printf("Updating %s from %s...\n", ui.Highlight.Render(id), e.URL)

		res := s.SyncOne(cmd.Context(), id, e)
		switch {
		case res.Err != nil:
			fmt.Println(ui.ErrorLine(res.Err.Error()))
			failed++
		case res.UsedFallback:
			fmt.Println(ui.SuccessLine(fmt.Sprintf("updated %s (default branch; %q was unavailable)", id, e.Branch)))
			updated++
		default:
			fmt.Println(ui.SuccessLine("updated " + id))
			updated++
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Println(ui.Warning.Render(fmt.Sprintf("%d updated, %d failed.", updated, failed)))
		os.Exit(1)
	}
	fmt.Println(ui.Success.Render(fmt.Sprintf("%d updated.", updated)))
}
