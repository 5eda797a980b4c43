package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autocase/internal/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain <case-id>",
	Short: "Show the score breakdown for a test case",
	Long: `Show how each sub-score of a test case was derived from its inputs, and
how the total maps to the recommendation.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().Bool("raw", false, "Print the plain breakdown without markdown rendering")
}

func runExplain(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	tc, ok := project.FindTestCase(args[0])
	if !ok {
		return fmt.Errorf("test case %q not found", args[0])
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprintln(cmd.OutOrStdout(), tc.Explain())
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(ui.CaseDetail(tc)))
	return nil
}
