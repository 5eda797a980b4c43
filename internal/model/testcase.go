// Package model holds the persisted entities of a prioritization project and
// the mutators that keep their derived scores consistent.
package model

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"autocase/internal/scoring"
)

// Source records where an entity came from.
type Source string

const (
	SourceManual       Source = "manual"
	SourceStateDiagram Source = "state-diagram"
	SourceExternal     Source = "external"
)

// TestCase is one row of the prioritization table. The Scores and
// Recommendation fields are derived: every mutation of a scoring input must
// go through Recompute (Apply does this) so they never drift from the inputs.
type TestCase struct {
	ID       string `json:"id"`
	TestName string `json:"testName"`

	ChangeType      scoring.ChangeType         `json:"changeType"`
	UserFrequency   int                        `json:"userFrequency"`
	BusinessImpact  int                        `json:"businessImpact"`
	AffectedAreas   int                        `json:"affectedAreas"`
	IsLegal         bool                       `json:"isLegal"`
	EasyToAutomate  int                        `json:"easyToAutomate,omitempty"`
	QuickToAutomate int                        `json:"quickToAutomate,omitempty"`
	Implementation  scoring.ImplementationType `json:"implementationType,omitempty"`

	Notes              string `json:"notes,omitempty"`
	Source             Source `json:"source,omitempty"`
	StateID            string `json:"stateId,omitempty"`
	ExternalScenarioID string `json:"externalScenarioId,omitempty"`
	Ticket             string `json:"ticket,omitempty"`

	Scores         scoring.Scores         `json:"scores"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}

var caseCounter atomic.Int64

// NewCaseID returns an opaque unique id.
func NewCaseID() string {
	n := caseCounter.Add(1)
	return "tc-" + strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatInt(n, 10)
}

// Inputs assembles the calculator inputs from the current fields.
func (tc *TestCase) Inputs() scoring.Inputs {
	return scoring.Inputs{
		ChangeType:     tc.ChangeType,
		UserFrequency:  tc.UserFrequency,
		BusinessImpact: tc.BusinessImpact,
		AffectedAreas:  tc.AffectedAreas,
		IsLegal:        tc.IsLegal,
		Effort: scoring.EffortInput{
			Easy:           tc.EasyToAutomate,
			Quick:          tc.QuickToAutomate,
			Implementation: tc.Implementation,
		},
	}
}

// Recompute atomically refreshes all five sub-scores, the total, and the
// recommendation from the current inputs.
func (tc *TestCase) Recompute() {
	tc.Scores = scoring.Compute(tc.Inputs())
	tc.Recommendation = scoring.Recommend(tc.Scores.Total)
}

// Explain returns the audit breakdown for the case's current inputs.
func (tc *TestCase) Explain() string {
	return scoring.Explain(tc.Inputs())
}

// Patch is a partial update of a test case's editable fields; nil fields are
// left untouched.
type Patch struct {
	TestName        *string
	ChangeType      *scoring.ChangeType
	UserFrequency   *int
	BusinessImpact  *int
	AffectedAreas   *int
	IsLegal         *bool
	EasyToAutomate  *int
	QuickToAutomate *int
	Implementation  *scoring.ImplementationType
	Notes           *string
	Ticket          *string
}

// Apply sets the patched fields and recomputes scores in the same update.
func (tc *TestCase) Apply(p Patch) {
	if p.TestName != nil {
		tc.TestName = *p.TestName
	}
	if p.ChangeType != nil {
		tc.ChangeType = *p.ChangeType
	}
	if p.UserFrequency != nil {
		tc.UserFrequency = *p.UserFrequency
	}
	if p.BusinessImpact != nil {
		tc.BusinessImpact = *p.BusinessImpact
	}
	if p.AffectedAreas != nil {
		tc.AffectedAreas = *p.AffectedAreas
	}
	if p.IsLegal != nil {
		tc.IsLegal = *p.IsLegal
	}
	if p.EasyToAutomate != nil {
		tc.EasyToAutomate = *p.EasyToAutomate
	}
	if p.QuickToAutomate != nil {
		tc.QuickToAutomate = *p.QuickToAutomate
	}
	if p.Implementation != nil {
		tc.Implementation = *p.Implementation
	}
	if p.Notes != nil {
		tc.Notes = *p.Notes
	}
	if p.Ticket != nil {
		tc.Ticket = *p.Ticket
	}
	tc.Recompute()
}

// Summary is a one-line human description used in lists and notifications.
func (tc *TestCase) Summary() string {
	return fmt.Sprintf("%s [%s] total=%d %s", tc.TestName, tc.ChangeType, tc.Scores.Total, tc.Recommendation)
}
