package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"autocase/internal/generate"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [file.json]",
	Short: "Add a test case from an external scenario document",
	Long: `Add a test case from an externally-authored scenario document, read
from a file or from stdin. Producers disagree on field names, so the common
alias spellings (scenarioTitle/title/name, jiraTicket/ticket, ...) are all
accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	var payload []byte
	var err error
	if len(args) == 1 {
		payload, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read scenario file: %w", err)
		}
	} else {
		payload, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read scenario from stdin: %w", err)
		}
	}

	s, err := generate.ParseScenario(payload)
	if err != nil {
		return err
	}

	tc := s.TestCase()
	appMetrics.ScoresComputed.Inc()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}
	id := project.AddTestCase(tc)
	if err := store.SaveProject(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", id, tc.Summary())
	return nil
}
