package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"autocase/internal/ui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive triage board for test cases",
	Long: `View the project's test cases on an interactive three-column board:
automate, maybe, don't automate. Select a case to see its score breakdown.`,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintln(cmd.OutOrStdout(), "No test cases. Add one with 'autocase add' or import a diagram.")
		return nil
	}

	// Test hook: skip the TUI if requested
	if os.Getenv("AUTOCASE_TEST_SKIP_TUI") == "1" {
		board := ui.NewBoardModel(project.TestCases)
		updated, _ := board.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
		fmt.Fprint(cmd.OutOrStdout(), updated.(ui.BoardModel).View())
		return nil
	}

	p := tea.NewProgram(ui.NewBoardModel(project.TestCases), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	finalModel, ok := m.(ui.BoardModel)
	if !ok {
		return fmt.Errorf("failed to get board model")
	}

	if finalModel.SelectedCase != nil {
		tc, found := project.FindTestCase(finalModel.SelectedCase.ID)
		if !found {
			return fmt.Errorf("test case %q not found", finalModel.SelectedCase.ID)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(ui.CaseDetail(tc)))
	}
	return nil
}
