package model

// Status describes the health of an inventoried capability.
type Status string

const (
	StatusStable     Status = "stable"
	StatusUnstable   Status = "unstable"
	StatusDeprecated Status = "deprecated"
)

// ExistingFunctionality is one inventory entry for a previously-tested
// capability. StateID is a weak back-reference to the diagram state it was
// generated from: lookup only, never ownership.
type ExistingFunctionality struct {
	Name           string `json:"name"`
	Implementation string `json:"implementationType,omitempty"`
	Status         Status `json:"status"`
	Source         Source `json:"source"`
	LastTested     string `json:"lastTested,omitempty"`
	StateID        string `json:"stateId,omitempty"`
}
