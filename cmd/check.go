package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/ghclient"
	"github.com/skillbookhq/skillbook/internal/manifest"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify manifest entries against GitHub",
	Long: `Check every sources.json entry without touching the registry:
the repository must be reachable, the declared branch must exist (sync
silently falls back to the default branch when it does not), and the
declared subpath must be present on that branch.

Non-GitHub URLs cannot be verified and are reported as skipped.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	manifestPath := filepath.Join(skillsDir, manifest.Filename)

	entries, err := manifest.Load(manifestPath)
	if err != nil {
		fmt.Println(ui.WarningLine(err.Error()))
		return
	}

	gh := ghclient.New()
	if !gh.IsAuthenticated() {
		fmt.Println(ui.Dim.Render("Using unauthenticated GitHub API (60 requests/hour)."))
	}

	ctx := cmd.Context()
	var ok, skipped, failed int

	for _, id := range manifest.IDs(entries) {
		e := entries[id]
		if e.URL == "" {
			skipped++
			continue
		}

		fmt.Printf("%s %s\n", ui.Highlight.Render(id), ui.Muted.Render(e.URL))

		owner, repo, err := ghclient.ParseRepoURL(e.URL)
		if err != nil {
			fmt.Println(ui.WarningLine("not a GitHub URL, cannot verify"))
			skipped++
			continue
		}

		defaultBranch, err := gh.DefaultBranch(ctx, owner, repo)
		if err != nil {
			fmt.Println(ui.ErrorLine(fmt.Sprintf("repository unreachable: %v", err)))
			failed++
			continue
		}

		ref := e.Branch
		problem := false

		branchOK, err := gh.BranchExists(ctx, owner, repo, e.Branch)
		if err != nil {
			fmt.Println(ui.ErrorLine(fmt.Sprintf("branch check failed: %v", err)))
			failed++
			continue
		}
		if !branchOK {
			// sync would clone the default branch here without telling anyone
			fmt.Println(ui.WarningLine(fmt.Sprintf("branch %q missing; sync will fall back to %q", e.Branch, defaultBranch)))
			ref = defaultBranch
			problem = true
		}

		pathOK, err := gh.PathExists(ctx, owner, repo, e.Path, ref)
		if err != nil {
			fmt.Println(ui.ErrorLine(fmt.Sprintf("path check failed: %v", err)))
			failed++
			continue
		}
		if !pathOK {
			fmt.Println(ui.ErrorLine(fmt.Sprintf("path %q not found on %q", e.Path, ref)))
			problem = true
		}

		if problem {
			failed++
			continue
		}
		fmt.Println(ui.SuccessLine("ok"))
		ok++
	}

	fmt.Println()
	fmt.Printf("%d ok, %d skipped, %d problems.\n", ok, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
