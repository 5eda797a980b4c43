package main

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"autocase/internal/model"
	"autocase/internal/scoring"
	"autocase/internal/validation"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a test case to the project",
	Long: `Add a test case and score it for automation worthiness. With --name the
case is created from flags; without it an interactive wizard asks for each
field.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("name", "", "Test case name")
	addCmd.Flags().String("type", "modified-behavior", "Change type (new, modified-behavior, modified-ui, unchanged)")
	addCmd.Flags().Int("frequency", 3, "User frequency 1-5")
	addCmd.Flags().Int("impact", 3, "Business impact 1-5")
	addCmd.Flags().Int("areas", 1, "Affected areas (capped at 5 for scoring)")
	addCmd.Flags().Bool("legal", false, "Legally or contractually required")
	addCmd.Flags().Int("easy", 0, "Ease of automation 1-5")
	addCmd.Flags().Int("quick", 0, "Speed of automation 1-5")
	addCmd.Flags().String("implementation", "", "Implementation type for legacy ease scoring (loop-same, loop-different, custom, mix)")
	addCmd.Flags().String("notes", "", "Free-form notes")
	addCmd.Flags().String("ticket", "", "Tracking ticket reference")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	var tc model.TestCase
	var err error
	if name == "" {
		tc, err = addWizard()
	} else {
		tc, err = addFromFlags(cmd, name)
	}
	if err != nil {
		return err
	}

	v := validation.NewValidator()
	v.Required(tc.TestName, "testName")
	v.TestCaseInputs(tc.UserFrequency, tc.BusinessImpact, tc.AffectedAreas, tc.EasyToAutomate, tc.QuickToAutomate)
	if err := v.Err(); err != nil {
		return err
	}

	tc.Source = model.SourceManual
	tc.Recompute()
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

func addFromFlags(cmd *cobra.Command, name string) (model.TestCase, error) {
	rawType, _ := cmd.Flags().GetString("type")
	changeType, err := scoring.ParseChangeType(rawType)
	if err != nil {
		return model.TestCase{}, err
	}

	var impl scoring.ImplementationType
	if rawImpl, _ := cmd.Flags().GetString("implementation"); rawImpl != "" {
		impl, err = scoring.ParseImplementationType(rawImpl)
		if err != nil {
			return model.TestCase{}, err
		}
	}

	frequency, _ := cmd.Flags().GetInt("frequency")
	impact, _ := cmd.Flags().GetInt("impact")
	areas, _ := cmd.Flags().GetInt("areas")
	legal, _ := cmd.Flags().GetBool("legal")
	easy, _ := cmd.Flags().GetInt("easy")
	quick, _ := cmd.Flags().GetInt("quick")
	notes, _ := cmd.Flags().GetString("notes")
	ticket, _ := cmd.Flags().GetString("ticket")

	return model.TestCase{
		TestName:        name,
		ChangeType:      changeType,
		UserFrequency:   frequency,
		BusinessImpact:  impact,
		AffectedAreas:   areas,
		IsLegal:         legal,
		EasyToAutomate:  easy,
		QuickToAutomate: quick,
		Implementation:  impl,
		Notes:           notes,
		Ticket:          ticket,
	}, nil
}

// addWizard walks the rubric interactively.
func addWizard() (model.TestCase, error) {
	var tc model.TestCase

	if err := askOneFunc(&survey.Input{Message: "Test case name:"}, &tc.TestName); err != nil {
		return tc, err
	}

	var rawType string
	err := askOneFunc(&survey.Select{
		Message: "Change type:",
		Options: []string{"new", "modified-behavior", "modified-ui", "unchanged"},
		Default: "modified-behavior",
	}, &rawType)
	if err != nil {
		return tc, err
	}
	tc.ChangeType = scoring.ChangeType(rawType)

	if tc.UserFrequency, err = askScale("How often do users hit this? (1=rarely, 5=constantly)"); err != nil {
		return tc, err
	}
	if tc.BusinessImpact, err = askScale("Business impact of a failure? (1=trivial, 5=critical)"); err != nil {
		return tc, err
	}
	if tc.AffectedAreas, err = askScale("How many areas does it touch? (1-5)"); err != nil {
		return tc, err
	}
	if err = askOneFunc(&survey.Confirm{Message: "Legally or contractually required?"}, &tc.IsLegal); err != nil {
		return tc, err
	}

	knowFactors := false
	if err = askOneFunc(&survey.Confirm{
		Message: "Do you know how easy and quick this is to automate?",
		Default: true,
	}, &knowFactors); err != nil {
		return tc, err
	}

	if knowFactors {
		if tc.EasyToAutomate, err = askScale("Ease of automation? (1=hard, 5=easy)"); err != nil {
			return tc, err
		}
		if tc.QuickToAutomate, err = askScale("Speed of automation? (1=slow, 5=quick)"); err != nil {
			return tc, err
		}
	} else {
		var rawImpl string
		err = askOneFunc(&survey.Select{
			Message: "Implementation type:",
			Options: []string{"loop-same", "loop-different", "custom", "mix"},
			Default: "custom",
		}, &rawImpl)
		if err != nil {
			return tc, err
		}
		tc.Implementation = scoring.ImplementationType(rawImpl)
	}

	return tc, nil
}

func askScale(message string) (int, error) {
	var raw string
	err := askOneFunc(&survey.Select{
		Message: message,
		Options: []string{"1", "2", "3", "4", "5"},
		Default: "3",
	}, &raw)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
