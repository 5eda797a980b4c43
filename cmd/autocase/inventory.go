package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"autocase/internal/generate"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List the existing-functionality inventory",
	Long: `List the inventory of previously-tested functionality. With --from the
inventory is extended from a diagram file without importing the diagram into
the version history.`,
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
	inventoryCmd.Flags().Bool("json", false, "Output as JSON")
	inventoryCmd.Flags().String("from", "", "Extend the inventory from a diagram file")
}

func runInventory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		dg, err := parseDiagramFile(from)
		if err != nil {
			return err
		}
		added := project.AddFunctionality(generate.ExistingFromDiagram(dg)...)
		if err := store.SaveProject(project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inventoried %d state(s) from %s\n", added, dg.ApplicationName)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), project.ExistingFunctionality)
	}

	if len(project.ExistingFunctionality) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Inventory is empty. Import a diagram or use --from.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tIMPLEMENTATION\tSTATUS\tSOURCE\tLAST TESTED")
	for _, f := range project.ExistingFunctionality {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Name, f.Implementation, f.Status, f.Source, f.LastTested)
	}
	return w.Flush()
}
