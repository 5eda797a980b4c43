// Package generate turns diagram diffs into draft test cases and
// functionality-inventory entries.
package generate

import (
	"fmt"
	"sort"
	"strings"

	"autocase/internal/diagram"
	"autocase/internal/model"
	"autocase/internal/scoring"
)

// Generator defaults for fields the diagram cannot answer.
const (
	defaultFrequency = 3
	defaultImpact    = 3
)

// FromDiff produces one draft test case per added or modified state, each
// fully scored. Unchanged and removed states generate nothing.
func FromDiff(d diagram.StateDiff, dg *diagram.StateDiagram) []model.TestCase {
	var cases []model.TestCase

	for _, id := range d.Added {
		tc := draftCase(id, dg)
		tc.ChangeType = scoring.ChangeNew
		tc.Notes = fmt.Sprintf("New state: %s", id)
		tc.Recompute()
		cases = append(cases, tc)
	}

	for _, mod := range d.Modified {
		tc := draftCase(mod.StateID, dg)
		tc.ChangeType = diagram.DetectChangeType(mod)
		tc.Notes = describeChanges(mod.Changes)
		tc.Recompute()
		cases = append(cases, tc)
	}

	return cases
}

// draftCase fills the generator defaults for one state.
func draftCase(id string, dg *diagram.StateDiagram) model.TestCase {
	state := dg.States[id]

	name := state.Description
	if name == "" {
		name = id
	}

	easy, quick := automationFactors(state.Implementation)
	return model.TestCase{
		ID:              model.NewCaseID(),
		TestName:        name,
		UserFrequency:   defaultFrequency,
		BusinessImpact:  defaultImpact,
		AffectedAreas:   AffectedAreas(id, dg),
		IsLegal:         false,
		EasyToAutomate:  easy,
		QuickToAutomate: quick,
		Source:          model.SourceStateDiagram,
		StateID:         id,
	}
}

// automationFactors maps a state's legacy implementation string to the
// easy/quick pair used for draft scoring. Unknown implementations get the
// neutral (3,3).
func automationFactors(implementation string) (easy, quick int) {
	impl, err := scoring.ParseImplementationType(implementation)
	if err != nil {
		return 3, 3
	}
	switch impl {
	case scoring.ImplLoopSame:
		return 5, 5
	case scoring.ImplLoopDifferent:
		return 3, 5
	case scoring.ImplCustom:
		return 1, 5
	case scoring.ImplMix:
		return 2, 5
	}
	return 3, 3
}

// AffectedAreas counts a state's graph connectivity (outgoing transitions
// plus incoming transitions from every other state), capped at 5. A state
// missing from the diagram defaults to 1, never 0.
func AffectedAreas(stateID string, dg *diagram.StateDiagram) int {
	state, ok := dg.States[stateID]
	if !ok {
		return 1
	}

	areas := len(state.Transitions)
	for otherID, other := range dg.States {
		if otherID == stateID {
			continue
		}
		for _, target := range other.Transitions {
			if target == stateID {
				areas++
			}
		}
	}

	if areas > 5 {
		return 5
	}
	if areas < 1 {
		return 1
	}
	return areas
}

// describeChanges joins the structured changes into the draft's notes.
func describeChanges(c diagram.StateChanges) string {
	var parts []string
	if c.Implementation != nil {
		parts = append(parts, fmt.Sprintf("Implementation changed: %s → %s", c.Implementation.Old, c.Implementation.New))
	}
	if len(c.ActionsAdded) > 0 {
		parts = append(parts, "Actions added: "+strings.Join(c.ActionsAdded, ", "))
	}
	if len(c.ActionsRemoved) > 0 {
		parts = append(parts, "Actions removed: "+strings.Join(c.ActionsRemoved, ", "))
	}
	if len(c.TransitionsAdded) > 0 {
		var pairs []string
		for _, action := range sortedActionKeys(c.TransitionsAdded) {
			pairs = append(pairs, fmt.Sprintf("%s → %s", action, c.TransitionsAdded[action]))
		}
		parts = append(parts, "Transitions added: "+strings.Join(pairs, ", "))
	}
	if len(c.TransitionsRemoved) > 0 {
		parts = append(parts, "Transitions removed: "+strings.Join(c.TransitionsRemoved, ", "))
	}
	if c.LastModified != nil {
		parts = append(parts, fmt.Sprintf("Last modified: %s → %s", c.LastModified.Old, c.LastModified.New))
	}
	return strings.Join(parts, "; ")
}

// ExistingFromDiagram emits one inventory entry per state.
func ExistingFromDiagram(dg *diagram.StateDiagram) []model.ExistingFunctionality {
	var entries []model.ExistingFunctionality
	for _, id := range dg.StateOrder {
		state := dg.States[id]

		name := state.Description
		if name == "" {
			name = id
		}
		implementation := state.Implementation
		if implementation == "" {
			implementation = "custom"
		}

		entries = append(entries, model.ExistingFunctionality{
			Name:           name,
			Implementation: implementation,
			Status:         model.StatusStable,
			Source:         model.SourceStateDiagram,
			LastTested:     state.LastModified,
			StateID:        id,
		})
	}
	return entries
}

func sortedActionKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
