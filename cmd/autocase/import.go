package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autocase/internal/db"
	"autocase/internal/diagram"
	"autocase/internal/generate"
	"autocase/internal/notify"
)

var importCmd = &cobra.Command{
	Use:   "import <diagram.json>",
	Short: "Import a state-diagram version and generate draft test cases",
	Long: `Import a state-diagram snapshot: validate it, store it in the version
history, diff it against the previous version, and generate one scored draft
test case per added or modified state. Every state is also recorded in the
existing-functionality inventory.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("force", false, "Import even when validation finds errors")
	importCmd.Flags().Bool("no-generate", false, "Store the version without generating draft cases")
}

func runImport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read diagram file: %w", err)
	}

	dg, err := diagram.Parse(payload)
	if err != nil {
		return err
	}

	result := diagram.Validate(dg)
	for _, issue := range result.Issues {
		appMetrics.ValidationIssues.WithLabelValues(string(issue.Level)).Inc()
		fmt.Fprintf(out, "%s: %s\n", issue.Level, issue.Message)
	}
	if !result.Valid {
		if force, _ := cmd.Flags().GetBool("force"); !force {
			return fmt.Errorf("diagram has %d validation error(s); use --force to import anyway", len(result.Errors()))
		}
		fmt.Fprintln(out, "Importing despite validation errors (--force)")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	// The newest stored version becomes the diff baseline.
	previous, err := latestDiagram(store, dg.ApplicationName)
	if err != nil {
		return err
	}

	if err := store.SaveDiagram(dg.ApplicationName, dg.GeneratedAt(), payload); err != nil {
		return fmt.Errorf("failed to store diagram version: %w", err)
	}
	appMetrics.DiagramsImported.Inc()
	fmt.Fprintf(out, "Imported %s version generated %s\n", dg.ApplicationName, dg.Metadata.Generated)

	if skip, _ := cmd.Flags().GetBool("no-generate"); skip {
		return nil
	}

	if previous == nil {
		// First version: every state is new.
		previous = &diagram.StateDiagram{States: map[string]diagram.State{}}
	}
	older, newer := orderByGenerated(previous, dg)
	d := diagram.Diff(older, newer)

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	cases := generate.FromDiff(d, newer)
	for _, tc := range cases {
		project.AddTestCase(tc)
		appMetrics.TestCasesGenerated.WithLabelValues(string(tc.ChangeType)).Inc()
		appMetrics.ScoresComputed.Inc()
	}
	added := project.AddFunctionality(generate.ExistingFromDiagram(newer)...)

	if err := store.SaveProject(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	fmt.Fprintf(out, "Generated %d draft case(s), inventoried %d state(s)\n", len(cases), added)
	for _, tc := range cases {
		fmt.Fprintf(out, "  %s\n", tc.Summary())
	}

	notifier(func(format string, a ...interface{}) {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
	}).Send(context.Background(), notify.EventImport,
		fmt.Sprintf("Imported %s: %d draft case(s) generated", dg.ApplicationName, len(cases)))

	return nil
}

// latestDiagram reparses the newest stored version, nil when none exists.
func latestDiagram(store db.Store, app string) (*diagram.StateDiagram, error) {
	current, _, err := db.LatestTwo(store, app)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram history: %w", err)
	}
	if current == nil {
		return nil, nil
	}
	dg, err := diagram.Parse(current.Payload)
	if err != nil {
		return nil, fmt.Errorf("stored diagram version is unreadable: %w", err)
	}
	return dg, nil
}

// orderByGenerated puts two snapshots in chronological order; ties keep the
// given order.
func orderByGenerated(a, b *diagram.StateDiagram) (older, newer *diagram.StateDiagram) {
	if b.GeneratedAt().Before(a.GeneratedAt()) {
		return b, a
	}
	return a, b
}
