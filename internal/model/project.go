package model

import (
	"fmt"
	"time"
)

// Project is the persisted application-state document: it exclusively owns
// its test cases and functionality inventory. It is passed explicitly and
// mutated through its methods; there is no ambient singleton.
type Project struct {
	Version               string                  `json:"version"`
	ProjectName           string                  `json:"projectName"`
	Created               time.Time               `json:"created"`
	LastModified          time.Time               `json:"lastModified"`
	ExistingFunctionality []ExistingFunctionality `json:"existingFunctionality"`
	TestCases             []TestCase              `json:"testCases"`
	Metadata              map[string]any          `json:"metadata,omitempty"`
}

// NewProject creates an empty project document.
func NewProject(name string) *Project {
	now := time.Now().UTC()
	return &Project{
		Version:               "1.0",
		ProjectName:           name,
		Created:               now,
		LastModified:          now,
		ExistingFunctionality: []ExistingFunctionality{},
		TestCases:             []TestCase{},
	}
}

func (p *Project) touch() {
	p.LastModified = time.Now().UTC()
}

// AddTestCase appends a case, assigning an id if it has none, and returns
// the stored id.
func (p *Project) AddTestCase(tc TestCase) string {
	if tc.ID == "" {
		tc.ID = NewCaseID()
	}
	p.TestCases = append(p.TestCases, tc)
	p.touch()
	return tc.ID
}

// FindTestCase returns a pointer into the project's case list.
func (p *Project) FindTestCase(id string) (*TestCase, bool) {
	for i := range p.TestCases {
		if p.TestCases[i].ID == id {
			return &p.TestCases[i], true
		}
	}
	return nil, false
}

// UpdateTestCase applies a partial patch; scores are recomputed in the same
// update, never separately.
func (p *Project) UpdateTestCase(id string, patch Patch) (*TestCase, error) {
	tc, ok := p.FindTestCase(id)
	if !ok {
		return nil, fmt.Errorf("test case %q not found", id)
	}
	tc.Apply(patch)
	p.touch()
	return tc, nil
}

// RemoveTestCase deletes a case by id.
func (p *Project) RemoveTestCase(id string) error {
	for i := range p.TestCases {
		if p.TestCases[i].ID == id {
			p.TestCases = append(p.TestCases[:i], p.TestCases[i+1:]...)
			p.touch()
			return nil
		}
	}
	return fmt.Errorf("test case %q not found", id)
}

// ClearTestCases drops every case in the project.
func (p *Project) ClearTestCases() {
	p.TestCases = []TestCase{}
	p.touch()
}

// AddFunctionality appends inventory entries, skipping entries whose
// state back-reference is already inventoried.
func (p *Project) AddFunctionality(entries ...ExistingFunctionality) int {
	known := make(map[string]bool, len(p.ExistingFunctionality))
	for _, f := range p.ExistingFunctionality {
		if f.StateID != "" {
			known[f.StateID] = true
		}
	}

	added := 0
	for _, f := range entries {
		if f.StateID != "" && known[f.StateID] {
			continue
		}
		p.ExistingFunctionality = append(p.ExistingFunctionality, f)
		if f.StateID != "" {
			known[f.StateID] = true
		}
		added++
	}
	if added > 0 {
		p.touch()
	}
	return added
}
