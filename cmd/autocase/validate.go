package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autocase/internal/diagram"
)

var validateCmd = &cobra.Command{
	Use:   "validate <diagram.json>",
	Short: "Validate a state-diagram file",
	Long: `Validate a state-diagram snapshot without importing it. Errors (broken
state shapes, transitions to unknown states) make the diagram invalid;
warnings (dead ends, unreachable states) are advisory. Exits non-zero when
the diagram is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Output the validation result as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
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
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := printJSON(out, result); err != nil {
			return err
		}
	} else {
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "%s: %s\n", issue.Level, issue.Message)
		}
		if result.Valid {
			fmt.Fprintf(out, "%s is valid (%d warning(s))\n", dg.ApplicationName, len(result.Issues))
		} else {
			fmt.Fprintf(out, "%s is invalid (%d error(s))\n", dg.ApplicationName, len(result.Errors()))
		}
	}

	if !result.Valid {
		exit(1)
	}
	return nil
}
