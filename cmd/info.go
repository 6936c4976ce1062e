package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/registry"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:     "info <id>",
	Aliases: []string{"show"},
	Short:   "Show one skill in detail",
	Long: `Show a skill's full metadata: display name, complete description
(block-scalar descriptions are expanded), triggers and effects.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	id := args[0]

	reg := registry.New(skillsDir)
	rec, err := reg.LoadDetail(id)
	if err != nil {
		exitWithError(fmt.Sprintf("skill '%s' not found in %s", id, skillsDir))
	}

	fmt.Println(ui.Title.Render(rec.ID))
	if rec.Name != rec.ID {
		fmt.Println(ui.Muted.Render(rec.Name))
	}
	fmt.Println()

	if rec.Description != "" {
		fmt.Println(rec.Description)
		fmt.Println()
	}

	printItems("Triggers", rec.Triggers)
	printItems("Effect", rec.Effects)

	fmt.Printf("  Path: %s\n", reg.DocPath(rec.ID))
}

func printItems(heading string, items []string) {
	fmt.Println(ui.Subtitle.Render(heading))
	if len(items) == 0 {
		fmt.Println(ui.Dim.Render("  -"))
	}
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}
