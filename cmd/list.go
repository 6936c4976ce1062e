package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/registry"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the skills in the registry",
	Long:    `Display every skill folder with its one-line description.`,
	Run:     runList,
}

var listWide bool

func init() {
	listCmd.Flags().BoolVar(&listWide, "wide", false, "Do not truncate descriptions")
}

const (
	listIDWidth   = 35
	listDescWidth = 60
	listLineWidth = 100
)

func runList(cmd *cobra.Command, args []string) {
	records, err := registry.New(skillsDir).Load(reportSkill)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println(ui.Title.Render(fmt.Sprintf("%-*s | %s", listIDWidth, "SKILL ID", "DESCRIPTION")))
	fmt.Println(ui.Divider(listLineWidth))

	for _, rec := range records {
		desc := rec.Description
		if !listWide {
			desc = ui.Truncate(desc, listDescWidth)
		}
		fmt.Printf("%-*s | %s\n", listIDWidth, rec.ID, desc)
	}

	fmt.Println(ui.Divider(listLineWidth))
	fmt.Println(ui.Highlight.Render(fmt.Sprintf("Total: %d skills", len(records))))
}
