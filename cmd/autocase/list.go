package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"autocase/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List test cases ordered by total score",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output as JSON")
	listCmd.Flags().Bool("color", false, "Render the colored table")
	listCmd.Flags().String("recommendation", "", "Only show cases with this recommendation")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	cases := ui.SortByTotal(project.TestCases)
	if filter, _ := cmd.Flags().GetString("recommendation"); filter != "" {
		filtered := cases[:0]
		for _, tc := range cases {
			if string(tc.Recommendation) == filter {
				filtered = append(filtered, tc)
			}
		}
		cases = filtered
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), cases)
	}

	if len(cases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No test cases. Add one with 'autocase add' or import a diagram.")
		return nil
	}

	if colored, _ := cmd.Flags().GetBool("color"); colored {
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderTable(cases))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tRISK\tVALUE\tEFFORT\tHIST\tLEGAL\tTOTAL\tRECOMMENDATION")
	for _, tc := range cases {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			tc.ID, tc.TestName, tc.ChangeType,
			tc.Scores.Risk, tc.Scores.Value, tc.Scores.EffortOrEase(),
			tc.Scores.History, tc.Scores.Legal, tc.Scores.Total,
			tc.Recommendation)
	}
	return w.Flush()
}
