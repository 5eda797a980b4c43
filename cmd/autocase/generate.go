package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autocase/internal/diagram"
	"autocase/internal/generate"
	"autocase/internal/notify"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate draft test cases from the latest stored diagram versions",
	Long: `Regenerate draft test cases from the diff between the two most recent
stored versions of an application, without importing anything new. Useful
after clearing drafts or tuning the project by hand.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("app", "", "Application name (required)")
	generateCmd.MarkFlagRequired("app")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	app, _ := cmd.Flags().GetString("app")

	older, newer, err := storedPair(app)
	if err != nil {
		// A single stored version still generates: everything is new.
		single, serr := singleStored(app)
		if serr != nil || single == nil {
			return err
		}
		older = &diagram.StateDiagram{States: map[string]diagram.State{}}
		newer = single
	}

	d := diagram.Diff(older, newer)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

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

	if err := store.SaveProject(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	fmt.Fprintf(out, "Generated %d draft case(s)\n", len(cases))
	for _, tc := range cases {
		fmt.Fprintf(out, "  %s\n", tc.Summary())
	}

	notifier(func(format string, a ...interface{}) {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
	}).Send(context.Background(), notify.EventGenerate,
		fmt.Sprintf("Generated %d draft case(s) for %s", len(cases), app))

	return nil
}

// singleStored returns the only stored version, nil if there are none.
func singleStored(app string) (*diagram.StateDiagram, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return latestDiagram(store, app)
}
