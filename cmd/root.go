package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillbookhq/skillbook/internal/skill"
	"github.com/skillbookhq/skillbook/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

// skillsDir is the registry root, shared by every subcommand.
var skillsDir string

var rootCmd = &cobra.Command{
	Use:   "skillbook",
	Short: "Skill registry maintenance toolkit",
	Long: `Maintains a directory-based registry of agent skills.

List skills, regenerate the README catalog tables, and mirror skills
whose canonical source lives in an upstream repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&skillsDir, "skills-dir", skill.DirName, "Path to the skills registry")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skillbook %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}

// reportSkill prints a non-fatal per-skill problem to stderr.
func reportSkill(id string, err error) {
	fmt.Fprintln(os.Stderr, ui.WarningLine(fmt.Sprintf("skipping %s: %v", id, err)))
}
