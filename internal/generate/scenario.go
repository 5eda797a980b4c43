package generate

import (
	"encoding/json"
	"fmt"

	"autocase/internal/model"
	"autocase/internal/scoring"
)

// Scenario is an externally-authored test scenario pasted into the tool.
// Producers disagree on field names, so parsing accepts the known aliases.
type Scenario struct {
	ScenarioID     string
	Title          string
	Ticket         string
	ChangeType     scoring.ChangeType
	Implementation scoring.ImplementationType
	Context        string
}

// ParseScenario decodes an external scenario document, remapping the
// alternate key spellings and normalizing the change-type and implementation
// vocabularies (case- and separator-insensitive, legacy aliases included).
func ParseScenario(data []byte) (*Scenario, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scenario is not valid JSON: %w", err)
	}

	s := &Scenario{}
	s.ScenarioID = firstString(raw, "scenarioId", "id")
	s.Title = firstString(raw, "scenarioTitle", "title", "name")
	s.Ticket = firstString(raw, "jiraTicket", "ticket")
	s.Context = firstString(raw, "context")

	if s.Title == "" {
		return nil, fmt.Errorf("scenario is missing a title (scenarioTitle/title/name)")
	}

	if rawChange := firstString(raw, "detectedCodeChange", "changeType"); rawChange != "" {
		ct, err := scoring.ParseChangeType(rawChange)
		if err != nil {
			return nil, fmt.Errorf("scenario has an invalid change type: %w", err)
		}
		s.ChangeType = ct
	} else {
		s.ChangeType = scoring.ChangeModifiedBehavior
	}

	if rawImpl := firstString(raw, "detectedImplementation", "implementation"); rawImpl != "" {
		impl, err := scoring.ParseImplementationType(rawImpl)
		if err != nil {
			return nil, fmt.Errorf("scenario has an invalid implementation type: %w", err)
		}
		s.Implementation = impl
	}

	return s, nil
}

// TestCase maps the scenario onto a draft case with the generator defaults.
func (s *Scenario) TestCase() model.TestCase {
	easy, quick := automationFactors(string(s.Implementation))

	notes := s.Context
	tc := model.TestCase{
		ID:                 model.NewCaseID(),
		TestName:           s.Title,
		ChangeType:         s.ChangeType,
		UserFrequency:      defaultFrequency,
		BusinessImpact:     defaultImpact,
		AffectedAreas:      1,
		EasyToAutomate:     easy,
		QuickToAutomate:    quick,
		Implementation:     s.Implementation,
		Notes:              notes,
		Source:             model.SourceExternal,
		ExternalScenarioID: s.ScenarioID,
		Ticket:             s.Ticket,
	}
	tc.Recompute()
	return tc
}

func firstString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err == nil && s != "" {
				return s
			}
		}
	}
	return ""
}
