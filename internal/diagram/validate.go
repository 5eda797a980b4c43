package diagram

import (
	"fmt"
	"strings"
)

// Level distinguishes structural corruption from advisory lint findings.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Issue is one validator finding. Field names the offending state when the
// finding is state-specific.
type Issue struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ValidationResult reports every finding for one snapshot. Valid is false
// only when an error-level issue is present; warnings are advisory.
type ValidationResult struct {
	Valid  bool    `json:"isValid"`
	Issues []Issue `json:"warnings"`
}

// Errors returns only the error-level issues.
func (r ValidationResult) Errors() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Level == LevelError {
			out = append(out, is)
		}
	}
	return out
}

// entryPointCandidates are conventional start-state names, checked in order.
var entryPointCandidates = []string{"initial", "start", "home"}

// Validate runs the structural and reachability checks on one snapshot. It
// never fails for data-shape issues inside a well-formed diagram; everything
// is reported through the issue list. Cycles are valid and never flagged.
func Validate(d *StateDiagram) ValidationResult {
	var issues []Issue

	if len(d.States) == 0 {
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Message: "diagram contains no states",
		})
		return ValidationResult{Valid: true, Issues: issues}
	}

	hasIncoming := make(map[string]bool, len(d.States))

	for _, id := range d.StateOrder {
		state := d.States[id]

		if state.Actions == nil {
			issues = append(issues, Issue{
				Level:   LevelError,
				Message: fmt.Sprintf("state %q is missing a valid actions list", id),
				Field:   id,
			})
		}
		if state.Transitions == nil {
			issues = append(issues, Issue{
				Level:   LevelError,
				Message: fmt.Sprintf("state %q is missing a valid transitions map", id),
				Field:   id,
			})
			continue
		}

		if len(state.Transitions) == 0 {
			issues = append(issues, Issue{
				Level:   LevelWarning,
				Message: fmt.Sprintf("state %q is a dead end (no outgoing transitions)", id),
				Field:   id,
			})
		}
		for _, action := range sortedKeys(state.Transitions) {
			target := state.Transitions[action]
			if _, known := d.States[target]; !known {
				issues = append(issues, Issue{
					Level:   LevelError,
					Message: fmt.Sprintf("state %q has an invalid transition %q → %q (unknown state)", id, action, target),
					Field:   id,
				})
				continue
			}
			hasIncoming[target] = true
		}
	}

	entry := entryPoint(d)
	for _, id := range d.StateOrder {
		if id == entry || hasIncoming[id] {
			continue
		}
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Message: fmt.Sprintf("state %q has no incoming transitions and may be unreachable", id),
			Field:   id,
		})
	}

	valid := true
	for _, is := range issues {
		if is.Level == LevelError {
			valid = false
			break
		}
	}
	return ValidationResult{Valid: valid, Issues: issues}
}

// entryPoint picks the conventional entry state: the first of
// initial/start/home (case-insensitive) that exists, else the first state in
// document order.
func entryPoint(d *StateDiagram) string {
	for _, candidate := range entryPointCandidates {
		for _, id := range d.StateOrder {
			if strings.EqualFold(id, candidate) {
				return id
			}
		}
	}
	if len(d.StateOrder) > 0 {
		return d.StateOrder[0]
	}
	return ""
}
