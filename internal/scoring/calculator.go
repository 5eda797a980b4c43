package scoring

import (
	"fmt"
	"strings"
)

// RiskScore is frequency × impact. Both inputs are 1–5, so the range is 1–25.
func RiskScore(frequency, impact int) int {
	return frequency * impact
}

// distinctness is how much new information a test for this change type
// provides.
func distinctness(ct ChangeType) int {
	switch ct {
	case ChangeUnchanged:
		return 0
	case ChangeModifiedUI:
		return 2
	case ChangeModifiedBehavior:
		return 4
	case ChangeNew:
		return 5
	}
	return 0
}

// induction is how likely a failure is to trigger a team response. Brand-new
// functionality has no historical signal, so its urgency scales with business
// impact; the other change types have fixed urgency.
func induction(ct ChangeType, businessImpact int) int {
	switch ct {
	case ChangeUnchanged:
		return 1
	case ChangeModifiedUI:
		return 2
	case ChangeModifiedBehavior:
		return 5
	case ChangeNew:
		return businessImpact
	}
	return 1
}

// ValueScore is distinctness × induction-to-action for the change type.
// Range 0–25.
func ValueScore(ct ChangeType, businessImpact int) int {
	return distinctness(ct) * induction(ct, businessImpact)
}

// EffortScore is easy × quick, both 1–5, range 1–25.
func EffortScore(easy, quick int) int {
	return easy * quick
}

// implementationRisk maps an implementation type to a fixed 1–5 factor.
func implementationRisk(impl ImplementationType) int {
	switch impl {
	case ImplLoopSame:
		return 5
	case ImplLoopDifferent:
		return 3
	case ImplCustom:
		return 1
	case ImplMix:
		return 2
	}
	return 0
}

// LegacyEaseScore is the backward-compatible effort path for saved data that
// predates the easy/quick factors. The implementation risk is multiplied by 5
// so both paths share the 0–25 scale.
func LegacyEaseScore(impl ImplementationType) int {
	return implementationRisk(impl) * 5
}

// HistoryScore caps the influence of highly connected features at 5.
func HistoryScore(affectedAreas int) int {
	if affectedAreas > 5 {
		return 5
	}
	return affectedAreas
}

// LegalScore is a binary compliance override.
func LegalScore(isLegal bool) int {
	if isLegal {
		return 20
	}
	return 0
}

// TotalScore sums the five sub-scores, falling back to the legacy ease field
// when effort is absent. The sum is returned raw; callers interpret it.
func TotalScore(s Scores) int {
	return s.Risk + s.Value + s.EffortOrEase() + s.History + s.Legal
}

// Recommend buckets a total score: ≥67 automate, 34–66 maybe, <34 don't.
func Recommend(total int) Recommendation {
	switch {
	case total >= 67:
		return Automate
	case total >= 34:
		return Maybe
	default:
		return DontAutomate
	}
}

// Compute derives all five sub-scores, the total, and nothing else, in one
// pass. Recomputing with unchanged inputs is idempotent.
func Compute(in Inputs) Scores {
	s := Scores{
		Risk:    RiskScore(in.UserFrequency, in.BusinessImpact),
		Value:   ValueScore(in.ChangeType, in.BusinessImpact),
		History: HistoryScore(in.AffectedAreas),
		Legal:   LegalScore(in.IsLegal),
	}
	if in.Effort.HasFactors() {
		effort := EffortScore(in.Effort.Easy, in.Effort.Quick)
		s.Effort = &effort
	} else {
		ease := LegacyEaseScore(in.Effort.Implementation)
		s.Ease = &ease
	}
	s.Total = TotalScore(s)
	return s
}

// Explain reproduces each formula with the actual numbers substituted. The
// breakdown reflects whichever effort path was used; it is for audit display,
// never for computation.
func Explain(in Inputs) string {
	s := Compute(in)

	var b strings.Builder
	fmt.Fprintf(&b, "Risk: frequency %d × impact %d = %d\n",
		in.UserFrequency, in.BusinessImpact, s.Risk)
	fmt.Fprintf(&b, "Value: distinctness %d × induction %d = %d (%s)\n",
		distinctness(in.ChangeType), induction(in.ChangeType, in.BusinessImpact), s.Value, in.ChangeType)
	if s.Effort != nil {
		fmt.Fprintf(&b, "Effort: easy %d × quick %d = %d\n",
			in.Effort.Easy, in.Effort.Quick, *s.Effort)
	} else {
		fmt.Fprintf(&b, "Ease (legacy): %s → %d × 5 = %d\n",
			in.Effort.Implementation, implementationRisk(in.Effort.Implementation), *s.Ease)
	}
	fmt.Fprintf(&b, "History: min(%d, 5) = %d\n", in.AffectedAreas, s.History)
	if in.IsLegal {
		fmt.Fprintf(&b, "Legal: compliance-relevant, +%d\n", s.Legal)
	} else {
		fmt.Fprintf(&b, "Legal: not compliance-relevant, +0\n")
	}
	fmt.Fprintf(&b, "Total: %d + %d + %d + %d + %d = %d → %s\n",
		s.Risk, s.Value, s.EffortOrEase(), s.History, s.Legal, s.Total, Recommend(s.Total))
	return b.String()
}
