package diagram

import (
	"sort"

	"autocase/internal/scoring"
)

// FieldChange records an old/new pair for a scalar field.
type FieldChange struct {
	Old string `json:"old,omitempty"`
	New string `json:"new,omitempty"`
}

// StateChanges records only the fields that actually differ between two
// versions of a state; an absent field is guaranteed unchanged.
type StateChanges struct {
	Implementation     *FieldChange      `json:"implementation,omitempty"`
	LastModified       *FieldChange      `json:"lastModified,omitempty"`
	ActionsAdded       []string          `json:"actionsAdded,omitempty"`
	ActionsRemoved     []string          `json:"actionsRemoved,omitempty"`
	TransitionsAdded   map[string]string `json:"transitionsAdded,omitempty"`
	TransitionsRemoved []string          `json:"transitionsRemoved,omitempty"`
}

// Empty reports whether no field differed.
func (c StateChanges) Empty() bool {
	return c.Implementation == nil &&
		c.LastModified == nil &&
		len(c.ActionsAdded) == 0 &&
		len(c.ActionsRemoved) == 0 &&
		len(c.TransitionsAdded) == 0 &&
		len(c.TransitionsRemoved) == 0
}

// functionalSurfaceChanged reports whether any action or transition changed.
func (c StateChanges) functionalSurfaceChanged() bool {
	return len(c.ActionsAdded) > 0 ||
		len(c.ActionsRemoved) > 0 ||
		len(c.TransitionsAdded) > 0 ||
		len(c.TransitionsRemoved) > 0
}

// StateModification pairs a surviving state with its field-level changes.
type StateModification struct {
	StateID string       `json:"stateId"`
	Changes StateChanges `json:"changes"`
}

// StateDiff is the structured difference between two snapshots. The four
// sets are mutually exclusive and together cover every state id from both
// snapshots exactly once.
type StateDiff struct {
	Added     []string            `json:"added"`
	Removed   []string            `json:"removed"`
	Modified  []StateModification `json:"modified"`
	Unchanged []string            `json:"unchanged"`
}

// Diff compares two snapshots the caller has already ordered chronologically
// by metadata.generated; the differ does not infer direction.
func Diff(previous, current *StateDiagram) StateDiff {
	var d StateDiff

	for _, id := range current.StateOrder {
		currState := current.States[id]
		prevState, existed := previous.States[id]
		if !existed {
			d.Added = append(d.Added, id)
			continue
		}
		changes := detectStateChanges(prevState, currState)
		if changes.Empty() {
			d.Unchanged = append(d.Unchanged, id)
		} else {
			d.Modified = append(d.Modified, StateModification{StateID: id, Changes: changes})
		}
	}

	for _, id := range previous.StateOrder {
		if _, exists := current.States[id]; !exists {
			d.Removed = append(d.Removed, id)
		}
	}

	return d
}

// detectStateChanges runs the field-level comparison for a state present in
// both snapshots.
func detectStateChanges(prev, curr State) StateChanges {
	var c StateChanges

	if prev.LastModified != curr.LastModified {
		c.LastModified = &FieldChange{Old: prev.LastModified, New: curr.LastModified}
	}
	if prev.Implementation != curr.Implementation {
		c.Implementation = &FieldChange{Old: prev.Implementation, New: curr.Implementation}
	}

	// Plain set difference over action names, no ordering sensitivity.
	prevActions := stringSet(prev.Actions)
	currActions := stringSet(curr.Actions)
	for _, a := range curr.Actions {
		if !prevActions[a] {
			c.ActionsAdded = append(c.ActionsAdded, a)
		}
	}
	for _, a := range prev.Actions {
		if !currActions[a] {
			c.ActionsRemoved = append(c.ActionsRemoved, a)
		}
	}

	// A transition counts as added both when the action is new and when an
	// existing action was re-pointed at a different target.
	for _, action := range sortedKeys(curr.Transitions) {
		target := curr.Transitions[action]
		if prevTarget, ok := prev.Transitions[action]; !ok || prevTarget != target {
			if c.TransitionsAdded == nil {
				c.TransitionsAdded = map[string]string{}
			}
			c.TransitionsAdded[action] = target
		}
	}
	for _, action := range sortedKeys(prev.Transitions) {
		if _, ok := curr.Transitions[action]; !ok {
			c.TransitionsRemoved = append(c.TransitionsRemoved, action)
		}
	}

	return c
}

// DetectChangeType classifies a modification into the test-case change
// vocabulary: functional surface changes always imply behavior risk, while
// implementation-only or timestamp-only changes imply UI-only risk. Anything
// else defaults to behavior risk.
func DetectChangeType(mod StateModification) scoring.ChangeType {
	switch {
	case mod.Changes.functionalSurfaceChanged():
		return scoring.ChangeModifiedBehavior
	case mod.Changes.Implementation != nil:
		return scoring.ChangeModifiedUI
	case mod.Changes.LastModified != nil:
		return scoring.ChangeModifiedUI
	default:
		return scoring.ChangeModifiedBehavior
	}
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
