package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autocase/internal/db"
	"autocase/internal/diagram"
)

var diffCmd = &cobra.Command{
	Use:   "diff [old.json new.json]",
	Short: "Diff two state-diagram versions",
	Long: `Diff two state-diagram snapshots. With two files they are ordered by
their generated timestamps; with --app the two most recent stored versions
are compared.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("app", "", "Diff the two latest stored versions of this application")
	diffCmd.Flags().Bool("json", false, "Output the diff as JSON")
}

func runDiff(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")

	var older, newer *diagram.StateDiagram
	var err error
	switch {
	case app != "" && len(args) == 0:
		older, newer, err = storedPair(app)
	case app == "" && len(args) == 2:
		older, newer, err = filePair(args[0], args[1])
	default:
		return fmt.Errorf("pass two diagram files, or --app to compare stored versions")
	}
	if err != nil {
		return err
	}

	d := diagram.Diff(older, newer)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), d)
	}

	printDiff(cmd, d)
	return nil
}

func filePair(pathA, pathB string) (older, newer *diagram.StateDiagram, err error) {
	a, err := parseDiagramFile(pathA)
	if err != nil {
		return nil, nil, err
	}
	b, err := parseDiagramFile(pathB)
	if err != nil {
		return nil, nil, err
	}
	older, newer = orderByGenerated(a, b)
	return older, newer, nil
}

func storedPair(app string) (older, newer *diagram.StateDiagram, err error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	current, previous, err := db.LatestTwo(store, app)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read diagram history: %w", err)
	}
	if current == nil || previous == nil {
		return nil, nil, fmt.Errorf("application %q needs at least two stored versions to diff", app)
	}

	newer, err = diagram.Parse(current.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("stored diagram version is unreadable: %w", err)
	}
	older, err = diagram.Parse(previous.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("stored diagram version is unreadable: %w", err)
	}
	return older, newer, nil
}

func parseDiagramFile(path string) (*diagram.StateDiagram, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram file: %w", err)
	}
	return diagram.Parse(payload)
}

func printDiff(cmd *cobra.Command, d diagram.StateDiff) {
	out := cmd.OutOrStdout()

	for _, id := range d.Added {
		fmt.Fprintf(out, "+ %s\n", id)
	}
	for _, id := range d.Removed {
		fmt.Fprintf(out, "- %s\n", id)
	}
	for _, mod := range d.Modified {
		fmt.Fprintf(out, "~ %s\n", mod.StateID)
		c := mod.Changes
		if c.Implementation != nil {
			fmt.Fprintf(out, "    implementation: %s → %s\n", c.Implementation.Old, c.Implementation.New)
		}
		for _, a := range c.ActionsAdded {
			fmt.Fprintf(out, "    action added: %s\n", a)
		}
		for _, a := range c.ActionsRemoved {
			fmt.Fprintf(out, "    action removed: %s\n", a)
		}
		for action, target := range c.TransitionsAdded {
			fmt.Fprintf(out, "    transition added: %s → %s\n", action, target)
		}
		for _, a := range c.TransitionsRemoved {
			fmt.Fprintf(out, "    transition removed: %s\n", a)
		}
		if c.LastModified != nil {
			fmt.Fprintf(out, "    last modified: %s → %s\n", c.LastModified.Old, c.LastModified.New)
		}
	}
	fmt.Fprintf(out, "%d added, %d removed, %d modified, %d unchanged\n",
		len(d.Added), len(d.Removed), len(d.Modified), len(d.Unchanged))
}
