// Package diagram parses, validates, and diffs versioned state-diagram
// snapshots: directed graphs of named states with action→state transitions.
package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// State is one node in the diagram. Actions and Transitions are nil when the
// source JSON omitted them or gave them the wrong type; the validator reports
// that, the parser does not.
type State struct {
	Description    string            `json:"description,omitempty"`
	Actions        []string          `json:"actions"`
	Transitions    map[string]string `json:"transitions"`
	Implementation string            `json:"implementation,omitempty"`
	LastModified   string            `json:"lastModified,omitempty"`
	ChangeNotes    string            `json:"changeNotes,omitempty"`
}

// Metadata carries the snapshot's provenance. Generated is the version's
// identity and sort key.
type Metadata struct {
	Generated string `json:"generated"`
}

// StateDiagram is one versioned snapshot of an application's behavior.
// StateOrder preserves the document order of the states object, which the
// validator's entry-point fallback depends on.
type StateDiagram struct {
	Version         string           `json:"version"`
	ApplicationName string           `json:"applicationName"`
	States          map[string]State `json:"states"`
	Metadata        Metadata         `json:"metadata"`
	StateOrder      []string         `json:"-"`
}

// GeneratedAt parses the metadata timestamp, zero time if unparseable.
func (d *StateDiagram) GeneratedAt() time.Time {
	t, err := time.Parse(time.RFC3339, d.Metadata.Generated)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Parse decodes a state-diagram JSON document. It fails fast with a
// descriptive error when the text is not JSON or a required top-level field
// is missing or mistyped; per-state shape problems are left for Validate.
func Parse(data []byte) (*StateDiagram, error) {
	var raw struct {
		Version         json.RawMessage `json:"version"`
		ApplicationName json.RawMessage `json:"applicationName"`
		States          json.RawMessage `json:"states"`
		Metadata        json.RawMessage `json:"metadata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("state diagram is not valid JSON: %w", err)
	}

	d := &StateDiagram{Version: "1.0", States: map[string]State{}}

	if raw.ApplicationName == nil {
		return nil, fmt.Errorf("state diagram is missing required field %q", "applicationName")
	}
	if err := json.Unmarshal(raw.ApplicationName, &d.ApplicationName); err != nil || d.ApplicationName == "" {
		return nil, fmt.Errorf("field %q must be a non-empty string", "applicationName")
	}

	if raw.Version != nil {
		if err := json.Unmarshal(raw.Version, &d.Version); err != nil {
			return nil, fmt.Errorf("field %q must be a string", "version")
		}
	}

	if raw.States == nil {
		return nil, fmt.Errorf("state diagram is missing required field %q", "states")
	}
	if err := parseStates(raw.States, d); err != nil {
		return nil, err
	}

	if raw.Metadata != nil {
		var meta struct {
			Generated string `json:"generated"`
		}
		if err := json.Unmarshal(raw.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("field %q must be an object: %w", "metadata", err)
		}
		d.Metadata.Generated = meta.Generated
	}
	if d.Metadata.Generated == "" {
		d.Metadata.Generated = time.Now().UTC().Format(time.RFC3339)
	}

	return d, nil
}

// parseStates walks the states object token by token so the document key
// order survives into StateOrder.
func parseStates(raw json.RawMessage, d *StateDiagram) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("field %q must be an object: %w", "states", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("field %q must be an object, got %v", "states", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read state id: %w", err)
		}
		id := keyTok.(string)

		var stateRaw json.RawMessage
		if err := dec.Decode(&stateRaw); err != nil {
			return fmt.Errorf("failed to read state %q: %w", id, err)
		}

		d.States[id] = parseState(stateRaw)
		d.StateOrder = append(d.StateOrder, id)
	}
	return nil
}

// parseState decodes a single state leniently: a wrong-typed actions or
// transitions field becomes nil rather than a parse failure, so the validator
// can flag it as a structural error instead of blocking the whole document.
func parseState(raw json.RawMessage) State {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return State{}
	}

	var s State
	if v, ok := fields["description"]; ok {
		json.Unmarshal(v, &s.Description)
	}
	if v, ok := fields["actions"]; ok && !isJSONNull(v) {
		var actions []string
		if err := json.Unmarshal(v, &actions); err == nil {
			if actions == nil {
				actions = []string{}
			}
			s.Actions = actions
		}
	}
	if v, ok := fields["transitions"]; ok && !isJSONNull(v) {
		var transitions map[string]string
		if err := json.Unmarshal(v, &transitions); err == nil {
			if transitions == nil {
				transitions = map[string]string{}
			}
			s.Transitions = transitions
		}
	}
	if v, ok := fields["implementation"]; ok {
		json.Unmarshal(v, &s.Implementation)
	}
	if v, ok := fields["lastModified"]; ok {
		json.Unmarshal(v, &s.LastModified)
	}
	if v, ok := fields["changeNotes"]; ok {
		json.Unmarshal(v, &s.ChangeNotes)
	}
	return s
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
