package generate

import (
	"testing"

	"autocase/internal/model"
	"autocase/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarioCanonicalKeys(t *testing.T) {
	s, err := ParseScenario([]byte(`{
		"scenarioId": "SC-42",
		"scenarioTitle": "Checkout with voucher",
		"jiraTicket": "SHOP-1234",
		"detectedCodeChange": "Modified_Behavior",
		"detectedImplementation": "Standard Components",
		"context": "Regression suite candidate"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "SC-42", s.ScenarioID)
	assert.Equal(t, "Checkout with voucher", s.Title)
	assert.Equal(t, "SHOP-1234", s.Ticket)
	assert.Equal(t, scoring.ChangeModifiedBehavior, s.ChangeType)
	assert.Equal(t, scoring.ImplLoopSame, s.Implementation)
	assert.Equal(t, "Regression suite candidate", s.Context)
}

func TestParseScenarioAlternateKeys(t *testing.T) {
	s, err := ParseScenario([]byte(`{
		"id": "77",
		"name": "Password reset",
		"ticket": "SHOP-9",
		"changeType": "new",
		"implementation": "hybrid"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "77", s.ScenarioID)
	assert.Equal(t, "Password reset", s.Title)
	assert.Equal(t, "SHOP-9", s.Ticket)
	assert.Equal(t, scoring.ChangeNew, s.ChangeType)
	assert.Equal(t, scoring.ImplMix, s.Implementation)
}

func TestParseScenarioErrors(t *testing.T) {
	_, err := ParseScenario([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseScenario([]byte(`{"changeType": "new"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, err = ParseScenario([]byte(`{"title": "x", "changeType": "renamed"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "change type")

	_, err = ParseScenario([]byte(`{"title": "x", "implementation": "bespoke"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "implementation")
}

func TestScenarioDefaultsChangeType(t *testing.T) {
	s, err := ParseScenario([]byte(`{"title": "Untagged scenario"}`))
	require.NoError(t, err)
	assert.Equal(t, scoring.ChangeModifiedBehavior, s.ChangeType)
}

func TestScenarioTestCaseMapping(t *testing.T) {
	s := &Scenario{
		ScenarioID:     "SC-1",
		Title:          "Bulk import",
		Ticket:         "SHOP-2",
		ChangeType:     scoring.ChangeNew,
		Implementation: scoring.ImplLoopDifferent,
		Context:        "nightly batch",
	}
	tc := s.TestCase()

	assert.NotEmpty(t, tc.ID)
	assert.Equal(t, "Bulk import", tc.TestName)
	assert.Equal(t, model.SourceExternal, tc.Source)
	assert.Equal(t, "SC-1", tc.ExternalScenarioID)
	assert.Equal(t, "SHOP-2", tc.Ticket)
	assert.Equal(t, 3, tc.EasyToAutomate)
	assert.Equal(t, 5, tc.QuickToAutomate)
	assert.Equal(t, "nightly batch", tc.Notes)
	assert.Equal(t, scoring.Recommend(tc.Scores.Total), tc.Recommendation)
	assert.NotZero(t, tc.Scores.Total)
}
