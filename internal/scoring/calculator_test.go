package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskScore(t *testing.T) {
	for freq := 1; freq <= 5; freq++ {
		for impact := 1; impact <= 5; impact++ {
			assert.Equal(t, freq*impact, RiskScore(freq, impact))
		}
	}
}

func TestValueScore(t *testing.T) {
	tests := []struct {
		name   string
		ct     ChangeType
		impact int
		want   int
	}{
		{"unchanged is worthless", ChangeUnchanged, 5, 0},
		{"ui change", ChangeModifiedUI, 3, 4},
		{"behavior change", ChangeModifiedBehavior, 1, 20},
		{"new scales with impact", ChangeNew, 3, 15},
		{"new at max impact", ChangeNew, 5, 25},
		{"new at min impact", ChangeNew, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueScore(tt.ct, tt.impact))
		})
	}
}

func TestEffortScoreCalibration(t *testing.T) {
	// Calibration examples from the rubric.
	assert.Equal(t, 25, EffortScore(5, 5))
	assert.Equal(t, 1, EffortScore(1, 1))
}

func TestLegacyEaseScoreScale(t *testing.T) {
	// Both effort paths share the 0–25 scale.
	for _, impl := range []ImplementationType{ImplLoopSame, ImplLoopDifferent, ImplCustom, ImplMix} {
		got := LegacyEaseScore(impl)
		assert.GreaterOrEqual(t, got, 5, "impl %s", impl)
		assert.LessOrEqual(t, got, 25, "impl %s", impl)
	}
	assert.Equal(t, 25, LegacyEaseScore(ImplLoopSame))
	assert.Equal(t, 15, LegacyEaseScore(ImplLoopDifferent))
	assert.Equal(t, 5, LegacyEaseScore(ImplCustom))
	assert.Equal(t, 10, LegacyEaseScore(ImplMix))
}

func TestHistoryScoreCap(t *testing.T) {
	assert.Equal(t, 1, HistoryScore(1))
	assert.Equal(t, 5, HistoryScore(5))
	assert.Equal(t, 5, HistoryScore(6))
	assert.Equal(t, 5, HistoryScore(100))
}

func TestLegalScore(t *testing.T) {
	assert.Equal(t, 20, LegalScore(true))
	assert.Equal(t, 0, LegalScore(false))
}

func TestRecommendBoundaries(t *testing.T) {
	// The trichotomy must never leave a gap or overlap.
	assert.Equal(t, DontAutomate, Recommend(0))
	assert.Equal(t, DontAutomate, Recommend(33))
	assert.Equal(t, Maybe, Recommend(34))
	assert.Equal(t, Maybe, Recommend(66))
	assert.Equal(t, Automate, Recommend(67))
	assert.Equal(t, Automate, Recommend(100))
	assert.Equal(t, Automate, Recommend(120))

	for total := 0; total <= 120; total++ {
		r := Recommend(total)
		switch {
		case total >= 67:
			assert.Equal(t, Automate, r, "total %d", total)
		case total >= 34:
			assert.Equal(t, Maybe, r, "total %d", total)
		default:
			assert.Equal(t, DontAutomate, r, "total %d", total)
		}
	}
}

func TestComputeTotalIsExactSum(t *testing.T) {
	in := Inputs{
		ChangeType:     ChangeModifiedBehavior,
		UserFrequency:  4,
		BusinessImpact: 3,
		AffectedAreas:  7,
		IsLegal:        true,
		Effort:         EffortInput{Easy: 5, Quick: 4},
	}
	s := Compute(in)
	require.NotNil(t, s.Effort)
	assert.Nil(t, s.Ease)
	assert.Equal(t, 12, s.Risk)
	assert.Equal(t, 20, s.Value)
	assert.Equal(t, 20, *s.Effort)
	assert.Equal(t, 5, s.History)
	assert.Equal(t, 20, s.Legal)
	assert.Equal(t, s.Risk+s.Value+*s.Effort+s.History+s.Legal, s.Total)
	assert.Equal(t, 77, s.Total)
	assert.Equal(t, Automate, Recommend(s.Total))
}

func TestComputeLegacyPath(t *testing.T) {
	in := Inputs{
		ChangeType:     ChangeUnchanged,
		UserFrequency:  2,
		BusinessImpact: 2,
		AffectedAreas:  1,
		Effort:         EffortInput{Implementation: ImplCustom},
	}
	s := Compute(in)
	require.NotNil(t, s.Ease)
	assert.Nil(t, s.Effort)
	assert.Equal(t, 5, *s.Ease)
	assert.Equal(t, 4+0+5+1+0, s.Total)
	assert.Equal(t, DontAutomate, Recommend(s.Total))
}

func TestComputeIsIdempotent(t *testing.T) {
	in := Inputs{
		ChangeType:     ChangeNew,
		UserFrequency:  3,
		BusinessImpact: 3,
		AffectedAreas:  2,
		Effort:         EffortInput{Easy: 3, Quick: 3},
	}
	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)
}

func TestExplainReflectsEffortPath(t *testing.T) {
	factors := Inputs{
		ChangeType:     ChangeNew,
		UserFrequency:  3,
		BusinessImpact: 4,
		AffectedAreas:  2,
		Effort:         EffortInput{Easy: 5, Quick: 5},
	}
	out := Explain(factors)
	assert.Contains(t, out, "Risk: frequency 3 × impact 4 = 12")
	assert.Contains(t, out, "Value: distinctness 5 × induction 4 = 20 (new)")
	assert.Contains(t, out, "Effort: easy 5 × quick 5 = 25")
	assert.NotContains(t, out, "legacy")

	legacy := factors
	legacy.Effort = EffortInput{Implementation: ImplMix}
	out = Explain(legacy)
	assert.Contains(t, out, "Ease (legacy): mix → 2 × 5 = 10")
	assert.NotContains(t, out, "Effort: easy")

	// The final line reproduces the sum and the bucket.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], "Total:")
	assert.Contains(t, lines[len(lines)-1], "→")
}

func TestParseChangeType(t *testing.T) {
	tests := []struct {
		raw  string
		want ChangeType
	}{
		{"new", ChangeNew},
		{"NEW", ChangeNew},
		{"modified-behavior", ChangeModifiedBehavior},
		{"Modified_Behavior", ChangeModifiedBehavior},
		{"MODIFIED BEHAVIOR", ChangeModifiedBehavior},
		{"modified-ui", ChangeModifiedUI},
		{"unchanged", ChangeUnchanged},
	}
	for _, tt := range tests {
		got, err := ParseChangeType(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseChangeType("renamed")
	assert.Error(t, err)
}

func TestParseImplementationType(t *testing.T) {
	tests := []struct {
		raw  string
		want ImplementationType
	}{
		{"loop-same", ImplLoopSame},
		{"standard-components", ImplLoopSame},
		{"Standard Components", ImplLoopSame},
		{"loop-different", ImplLoopDifferent},
		{"new-pattern", ImplLoopDifferent},
		{"custom", ImplCustom},
		{"custom-implementation", ImplCustom},
		{"mix", ImplMix},
		{"hybrid", ImplMix},
	}
	for _, tt := range tests {
		got, err := ParseImplementationType(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseImplementationType("bespoke")
	assert.Error(t, err)
}
