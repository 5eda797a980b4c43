package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autocase/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the project report",
	Long: `Render a project report: triage summary, the prioritized case table,
and the functionality inventory. Use --raw to get plain markdown for pasting
into a wiki or pull request.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("raw", false, "Print plain markdown without terminal rendering")
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	md := ui.ProjectReport(project)
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(md))
	return nil
}
