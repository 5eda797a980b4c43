package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every test case in the project",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	if len(project.TestCases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Project has no test cases.")
		return nil
	}

	if force, _ := cmd.Flags().GetBool("force"); !force {
		confirmed := false
		err := askOneFunc(&survey.Confirm{
			Message: fmt.Sprintf("Delete all %d test case(s) in %q?", len(project.TestCases), project.ProjectName),
			Default: false,
		}, &confirmed)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
			return nil
		}
	}

	count := len(project.TestCases)
	project.ClearTestCases()
	if err := store.SaveProject(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d test case(s)\n", count)
	return nil
}
