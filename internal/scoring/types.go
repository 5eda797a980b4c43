package scoring

import (
	"fmt"
	"strings"
)

// ChangeType categorizes what happened to the functionality a test case covers.
type ChangeType string

const (
	ChangeNew              ChangeType = "new"
	ChangeModifiedBehavior ChangeType = "modified-behavior"
	ChangeModifiedUI       ChangeType = "modified-ui"
	ChangeUnchanged        ChangeType = "unchanged"
)

// ParseChangeType normalizes a raw change-type string (case- and
// separator-insensitive) into the canonical vocabulary.
func ParseChangeType(raw string) (ChangeType, error) {
	switch normalizeToken(raw) {
	case "new":
		return ChangeNew, nil
	case "modified-behavior", "behavior":
		return ChangeModifiedBehavior, nil
	case "modified-ui", "ui":
		return ChangeModifiedUI, nil
	case "unchanged":
		return ChangeUnchanged, nil
	}
	return "", fmt.Errorf("unknown change type %q", raw)
}

// ImplementationType describes how a test would be implemented. The canonical
// vocabulary is the loop-same/loop-different/custom/mix set; older artifacts
// use the standard-components/new-pattern/custom-implementation/hybrid names.
type ImplementationType string

const (
	ImplLoopSame      ImplementationType = "loop-same"
	ImplLoopDifferent ImplementationType = "loop-different"
	ImplCustom        ImplementationType = "custom"
	ImplMix           ImplementationType = "mix"
)

// ParseImplementationType normalizes a raw implementation string, accepting
// both the canonical names and the legacy aliases.
func ParseImplementationType(raw string) (ImplementationType, error) {
	switch normalizeToken(raw) {
	case "loop-same", "standard-components":
		return ImplLoopSame, nil
	case "loop-different", "new-pattern":
		return ImplLoopDifferent, nil
	case "custom", "custom-implementation":
		return ImplCustom, nil
	case "mix", "hybrid":
		return ImplMix, nil
	}
	return "", fmt.Errorf("unknown implementation type %q", raw)
}

// Recommendation is the three-way bucketing of the total score.
type Recommendation string

const (
	Automate     Recommendation = "AUTOMATE"
	Maybe        Recommendation = "MAYBE"
	DontAutomate Recommendation = "DONT_AUTOMATE"
)

// Scores holds the five sub-scores and their sum for one test case.
// Exactly one of Effort and Ease is set: Effort when the per-factor
// easy/quick inputs were available, Ease (the legacy name) when the score was
// derived from an implementation type. Callers interpret the raw sum; it is
// never clamped, so the legal bonus can push Total past 100.
type Scores struct {
	Risk    int  `json:"risk"`
	Value   int  `json:"value"`
	Effort  *int `json:"effort,omitempty"`
	Ease    *int `json:"ease,omitempty"`
	History int  `json:"history"`
	Legal   int  `json:"legal"`
	Total   int  `json:"total"`
}

// EffortOrEase returns whichever of the two effort fields is present.
func (s Scores) EffortOrEase() int {
	if s.Effort != nil {
		return *s.Effort
	}
	if s.Ease != nil {
		return *s.Ease
	}
	return 0
}

// EffortInput is the effort side of the rubric, normalized once at the
// boundary: Easy/Quick when both are known, otherwise the legacy
// implementation-type path.
type EffortInput struct {
	Easy           int
	Quick          int
	Implementation ImplementationType
}

// HasFactors reports whether the per-factor easy/quick path applies.
func (e EffortInput) HasFactors() bool {
	return e.Easy > 0 && e.Quick > 0
}

// Inputs collects every attribute the calculator reads. All numeric fields
// are assumed pre-validated to their documented ranges; the calculator does
// not clamp or reject.
type Inputs struct {
	ChangeType     ChangeType
	UserFrequency  int
	BusinessImpact int
	AffectedAreas  int
	IsLegal        bool
	Effort         EffortInput
}

func normalizeToken(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
