package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <application>",
	Short: "List the stored diagram versions of an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	versions, err := store.DiagramVersions(args[0])
	if err != nil {
		return fmt.Errorf("failed to read diagram history: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), versions)
	}

	if len(versions) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No stored versions for %q\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATED\tIMPORTED\tSIZE")
	for _, v := range versions {
		fmt.Fprintf(w, "%s\t%s\t%d bytes\n",
			v.Generated.Format(time.RFC3339),
			v.CreatedAt.Format(time.RFC3339),
			len(v.Payload))
	}
	return w.Flush()
}
