package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autocase/internal/model"
	"autocase/internal/scoring"
	"autocase/internal/validation"
)

var setCmd = &cobra.Command{
	Use:   "set <case-id>",
	Short: "Update fields of a test case",
	Long: `Update one or more fields of a test case. Scores and the recommendation
are recomputed in the same update; only the flags you pass are changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().String("name", "", "Test case name")
	setCmd.Flags().String("type", "", "Change type")
	setCmd.Flags().Int("frequency", 0, "User frequency 1-5")
	setCmd.Flags().Int("impact", 0, "Business impact 1-5")
	setCmd.Flags().Int("areas", 0, "Affected areas")
	setCmd.Flags().Bool("legal", false, "Legally or contractually required")
	setCmd.Flags().Int("easy", 0, "Ease of automation 1-5")
	setCmd.Flags().Int("quick", 0, "Speed of automation 1-5")
	setCmd.Flags().String("implementation", "", "Implementation type for legacy ease scoring")
	setCmd.Flags().String("notes", "", "Free-form notes")
	setCmd.Flags().String("ticket", "", "Tracking ticket reference")
}

func runSet(cmd *cobra.Command, args []string) error {
	patch, err := patchFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := loadProject(store)
	if err != nil {
		return err
	}

	existing, ok := project.FindTestCase(args[0])
	if !ok {
		return fmt.Errorf("test case %q not found", args[0])
	}

	// Validate against the post-patch values so a partial update cannot
	// push a case out of range.
	preview := *existing
	preview.Apply(patch)
	v := validation.NewValidator()
	v.Required(preview.TestName, "testName")
	v.TestCaseInputs(preview.UserFrequency, preview.BusinessImpact, preview.AffectedAreas, preview.EasyToAutomate, preview.QuickToAutomate)
	if err := v.Err(); err != nil {
		return err
	}

	tc, err := project.UpdateTestCase(args[0], patch)
	if err != nil {
		return err
	}
	appMetrics.ScoresComputed.Inc()

	if err := store.SaveProject(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", tc.ID, tc.Summary())
	return nil
}

// patchFromFlags converts only the flags the user actually passed.
func patchFromFlags(cmd *cobra.Command) (model.Patch, error) {
	var patch model.Patch

	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		patch.TestName = &v
	}
	if cmd.Flags().Changed("type") {
		raw, _ := cmd.Flags().GetString("type")
		ct, err := scoring.ParseChangeType(raw)
		if err != nil {
			return patch, err
		}
		patch.ChangeType = &ct
	}
	if cmd.Flags().Changed("frequency") {
		v, _ := cmd.Flags().GetInt("frequency")
		patch.UserFrequency = &v
	}
	if cmd.Flags().Changed("impact") {
		v, _ := cmd.Flags().GetInt("impact")
		patch.BusinessImpact = &v
	}
	if cmd.Flags().Changed("areas") {
		v, _ := cmd.Flags().GetInt("areas")
		patch.AffectedAreas = &v
	}
	if cmd.Flags().Changed("legal") {
		v, _ := cmd.Flags().GetBool("legal")
		patch.IsLegal = &v
	}
	if cmd.Flags().Changed("easy") {
		v, _ := cmd.Flags().GetInt("easy")
		patch.EasyToAutomate = &v
	}
	if cmd.Flags().Changed("quick") {
		v, _ := cmd.Flags().GetInt("quick")
		patch.QuickToAutomate = &v
	}
	if cmd.Flags().Changed("implementation") {
		raw, _ := cmd.Flags().GetString("implementation")
		impl, err := scoring.ParseImplementationType(raw)
		if err != nil {
			return patch, err
		}
		patch.Implementation = &impl
	}
	if cmd.Flags().Changed("notes") {
		v, _ := cmd.Flags().GetString("notes")
		patch.Notes = &v
	}
	if cmd.Flags().Changed("ticket") {
		v, _ := cmd.Flags().GetString("ticket")
		patch.Ticket = &v
	}
	return patch, nil
}
